package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineResponse línea de una venta (snapshot al momento de comprar).
type SaleLineResponse struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int             `json:"cantidad"`
}

// SaleResponse una venta del historial.
type SaleResponse struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	MetodoPago string             `json:"metodo_pago"`
	Productos  []SaleLineResponse `json:"productos"`
	Total      decimal.Decimal    `json:"total"`
	Fecha      time.Time          `json:"fecha"`
}

// SaleListRequest filtros del historial (query params, fechas YYYY-MM-DD).
type SaleListRequest struct {
	FechaInicio string `query:"fecha_inicio"`
	FechaFin    string `query:"fecha_fin"`
	TotalMin    string `query:"total_min"`
	TotalMax    string `query:"total_max"`
	PageRequest
}

// SaleListResponse historial paginado.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
