package usecase

import (
	"context"
	"time"

	"github.com/nicolasct/ventapos-api/internal/application/dto"
	"github.com/nicolasct/ventapos-api/internal/domain/repository"
)

// ReportUseCase datos agregados para reportes y dashboard. Solo entrega
// números; las gráficas y el export son responsabilidad de la presentación.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// GetSummary resumen del período: cantidad de ventas, ingresos y ticket promedio.
func (uc *ReportUseCase) GetSummary(ctx context.Context, desde, hasta time.Time) (*dto.SalesSummaryResponse, error) {
	s, err := uc.repo.GetSummary(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	return &dto.SalesSummaryResponse{
		Ventas:         s.Ventas,
		Ingresos:       s.Ingresos,
		TicketPromedio: s.TicketPromedio,
	}, nil
}

// GetSalesByDay serie diaria de ventas e ingresos.
func (uc *ReportUseCase) GetSalesByDay(ctx context.Context, desde, hasta time.Time) ([]dto.DailySalesResponse, error) {
	rows, err := uc.repo.GetSalesByDay(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailySalesResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailySalesResponse{
			Dia:      r.Dia.Format("2006-01-02"),
			Ventas:   r.Ventas,
			Ingresos: r.Ingresos,
		})
	}
	return out, nil
}

// GetTopProducts productos con más unidades vendidas en el período.
func (uc *ReportUseCase) GetTopProducts(ctx context.Context, desde, hasta time.Time, limit int) ([]dto.TopProductResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := uc.repo.GetTopProducts(ctx, desde, hasta, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductResponse{
			ProductoID: r.ProductoID,
			Nombre:     r.Nombre,
			Unidades:   r.Unidades,
			Ingresos:   r.Ingresos,
		})
	}
	return out, nil
}
