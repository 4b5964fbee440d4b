package dto

import (
	"github.com/shopspring/decimal"
)

// ReportRangeRequest rango de fechas para reportes (YYYY-MM-DD; por defecto últimos 30 días).
type ReportRangeRequest struct {
	FechaInicio string `query:"fecha_inicio"`
	FechaFin    string `query:"fecha_fin"`
}

// SalesSummaryResponse resumen del período para el dashboard.
type SalesSummaryResponse struct {
	Ventas         int64           `json:"ventas"`
	Ingresos       decimal.Decimal `json:"ingresos"`
	TicketPromedio decimal.Decimal `json:"ticket_promedio"`
}

// DailySalesResponse punto de la serie diaria.
type DailySalesResponse struct {
	Dia      string          `json:"dia"` // YYYY-MM-DD
	Ventas   int64           `json:"ventas"`
	Ingresos decimal.Decimal `json:"ingresos"`
}

// TopProductResponse producto destacado del período.
type TopProductResponse struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Unidades   int64           `json:"unidades"`
	Ingresos   decimal.Decimal `json:"ingresos"`
}
