package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto desde la administración de stock.
type CreateProductRequest struct {
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
	Stock  int             `json:"stock"`
}

// UpdateProductRequest actualización parcial (precio y/o stock, como la
// edición en línea de la tabla de stock).
type UpdateProductRequest struct {
	Nombre *string          `json:"nombre,omitempty"`
	Precio *decimal.Decimal `json:"precio,omitempty"`
	Stock  *int             `json:"stock,omitempty"`
}

// ProductResponse producto expuesto por la API.
type ProductResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListRequest filtros del listado (query params).
type ProductListRequest struct {
	Nombre       string `query:"nombre"`
	PrecioMin    string `query:"precio_min"`
	PrecioMax    string `query:"precio_max"`
	Stock        string `query:"stock"`
	StockOp      string `query:"stock_op"` // gte | lte | eq
	SoloConStock bool   `query:"con_stock"`
	PageRequest
}

// ProductListResponse listado paginado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
