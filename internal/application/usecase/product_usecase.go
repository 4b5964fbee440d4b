package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nicolasct/ventapos-api/internal/application/dto"
	"github.com/nicolasct/ventapos-api/internal/application/notification"
	"github.com/nicolasct/ventapos-api/internal/domain"
	"github.com/nicolasct/ventapos-api/internal/domain/entity"
	"github.com/nicolasct/ventapos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. El stock nunca puede
// quedar negativo: las entradas negativas se rechazan, no se recortan.
// Una edición manual que deja el stock en cero levanta la alerta global;
// una reposición por encima de cero la limpia.
type ProductUseCase struct {
	repo    repository.ProductRepository
	notifUC *notification.UseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, notifUC *notification.UseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, notifUC: notifUC}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Nombre == "" || in.Precio.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Precio:    in.Precio,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros de nombre, precio y stock.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Update actualiza nombre, precio y/o stock. Si la edición deja el stock en
// cero, levanta la alerta global (motivo "edicion"); si lo sube por encima
// de cero, limpia la alerta viva del producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	prevStock := product.Stock
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Nombre = *in.Nombre
	}
	if in.Precio != nil {
		if in.Precio.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Precio = *in.Precio
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}

	if prevStock > 0 && product.Stock == 0 {
		if _, err := uc.notifUC.RaiseStockZero(product.ID, product.Nombre, entity.MotivoEdicion); err != nil {
			return nil, err
		}
	}
	if prevStock == 0 && product.Stock > 0 {
		if err := uc.notifUC.ClearByProduct(product.ID); err != nil {
			return nil, err
		}
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. La alerta de stock cero que quede
// huérfana pasa a ser eliminable (el producto ya no existe).
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Precio:    p.Precio,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
