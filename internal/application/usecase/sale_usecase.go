package usecase

import (
	"github.com/nicolasct/ventapos-api/internal/application/dto"
	"github.com/nicolasct/ventapos-api/internal/domain"
	"github.com/nicolasct/ventapos-api/internal/domain/entity"
	"github.com/nicolasct/ventapos-api/internal/domain/repository"
)

// SaleUseCase consultas del historial de ventas (las ventas se crean solo
// desde el flujo de checkout; aquí únicamente se leen).
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// GetByID obtiene una venta con sus líneas.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List lista todas las ventas con filtros de fecha y total (vista admin).
func (uc *SaleUseCase) List(filter repository.SaleFilter) (*dto.SaleListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return toSaleList(list, filter), nil
}

// ListByUser historial personal del comprador, resuelto vía las referencias
// guardadas en su registro.
func (uc *SaleUseCase) ListByUser(userID string, filter repository.SaleFilter) (*dto.SaleListResponse, error) {
	list, err := uc.repo.ListByUser(userID, filter)
	if err != nil {
		return nil, err
	}
	return toSaleList(list, filter), nil
}

func toSaleList(list []*entity.Sale, filter repository.SaleFilter) *dto.SaleListResponse {
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	lineas := make([]dto.SaleLineResponse, 0, len(s.Lineas))
	for _, l := range s.Lineas {
		lineas = append(lineas, dto.SaleLineResponse{
			ProductoID: l.ProductoID,
			Nombre:     l.Nombre,
			Precio:     l.Precio,
			Cantidad:   l.Cantidad,
		})
	}
	return &dto.SaleResponse{
		ID:         s.ID,
		UserID:     s.UserID,
		MetodoPago: s.MetodoPago,
		Productos:  lineas,
		Total:      s.Total,
		Fecha:      s.Fecha,
	}
}
