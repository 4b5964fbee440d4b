package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nicolasct/ventapos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de ventas.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSummary agrega número de ventas, ingresos totales y ticket promedio del rango.
func (r *ReportRepo) GetSummary(ctx context.Context, desde, hasta time.Time) (repository.SalesSummary, error) {
	const query = `
	SELECT
	    COUNT(*)                        AS ventas,
	    COALESCE(SUM(total), 0)         AS ingresos,
	    COALESCE(AVG(total), 0)         AS ticket_promedio
	FROM ventas
	WHERE fecha BETWEEN $1 AND $2`

	var s repository.SalesSummary
	err := r.pool.QueryRow(ctx, query, desde, hasta).Scan(&s.Ventas, &s.Ingresos, &s.TicketPromedio)
	if err != nil {
		return repository.SalesSummary{}, fmt.Errorf("reports.GetSummary: %w", err)
	}
	return s, nil
}

// GetSalesByDay agrupa ventas e ingresos por día calendario dentro del rango.
func (r *ReportRepo) GetSalesByDay(ctx context.Context, desde, hasta time.Time) ([]repository.DailySales, error) {
	const query = `
	SELECT
	    date_trunc('day', fecha)        AS dia,
	    COUNT(*)                        AS ventas,
	    COALESCE(SUM(total), 0)         AS ingresos
	FROM ventas
	WHERE fecha BETWEEN $1 AND $2
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.pool.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("reports.GetSalesByDay: %w", err)
	}
	defer rows.Close()

	var results []repository.DailySales
	for rows.Next() {
		var row repository.DailySales
		if err := rows.Scan(&row.Dia, &row.Ventas, &row.Ingresos); err != nil {
			return nil, fmt.Errorf("reports.GetSalesByDay scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProducts lista los productos más vendidos por unidades dentro del rango.
func (r *ReportRepo) GetTopProducts(ctx context.Context, desde, hasta time.Time, limit int) ([]repository.TopProduct, error) {
	const query = `
	SELECT
	    l.producto_id,
	    l.nombre,
	    SUM(l.cantidad)                          AS unidades,
	    SUM(l.precio * l.cantidad)               AS ingresos
	FROM venta_lineas l
	JOIN ventas v ON v.id = l.venta_id
	WHERE v.fecha BETWEEN $1 AND $2
	GROUP BY l.producto_id, l.nombre
	ORDER BY unidades DESC, ingresos DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, desde, hasta, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProduct
	for rows.Next() {
		var row repository.TopProduct
		if err := rows.Scan(&row.ProductoID, &row.Nombre, &row.Unidades, &row.Ingresos); err != nil {
			return nil, fmt.Errorf("reports.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
