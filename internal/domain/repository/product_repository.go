package repository

import (
	"github.com/shopspring/decimal"

	"github.com/nicolasct/ventapos-api/internal/domain/entity"
)

// ProductFilter filtros del listado de productos (búsqueda por nombre,
// rango de precio y comparación de stock, como en la vista de compras y
// la administración de stock).
type ProductFilter struct {
	Nombre       string           // substring, case-insensitive
	PrecioMin    *decimal.Decimal
	PrecioMax    *decimal.Decimal
	Stock        *int
	StockOp      string // "gte" | "lte" | "eq" (aplica si Stock != nil)
	SoloConStock bool   // solo productos con stock > 0 (vista de compras)
	Limit        int
	Offset       int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y DecrementStock solo tienen sentido dentro de una transacción
// (repositorio atado a la tx vía TxRunner).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementStock descuenta cantidad solo si stock >= cantidad (condición en
	// el servidor, nunca chequeo-luego-escritura en el cliente). Devuelve el
	// stock resultante; ErrInsufficientStock si la condición falla,
	// ErrNotFound si el producto no existe.
	DecrementStock(id string, cantidad int) (int, error)
	Delete(id string) error
}
