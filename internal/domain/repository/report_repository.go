package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary totales globales de un período.
type SalesSummary struct {
	Ventas         int64
	Ingresos       decimal.Decimal
	TicketPromedio decimal.Decimal
}

// DailySales ventas agregadas por día (serie para el dashboard).
type DailySales struct {
	Dia      time.Time
	Ventas   int64
	Ingresos decimal.Decimal
}

// TopProduct producto con más unidades vendidas / ingresos en el período.
type TopProduct struct {
	ProductoID string
	Nombre     string
	Unidades   int64
	Ingresos   decimal.Decimal
}

// ReportRepository consultas agregadas de solo lectura para reportes y dashboard.
// La capa de presentación dibuja las gráficas; este puerto solo entrega los datos.
type ReportRepository interface {
	GetSummary(ctx context.Context, desde, hasta time.Time) (SalesSummary, error)
	GetSalesByDay(ctx context.Context, desde, hasta time.Time) ([]DailySales, error)
	GetTopProducts(ctx context.Context, desde, hasta time.Time, limit int) ([]TopProduct, error)
}
