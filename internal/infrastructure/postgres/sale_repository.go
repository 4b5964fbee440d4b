package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nicolasct/ventapos-api/internal/domain"
	"github.com/nicolasct/ventapos-api/internal/domain/entity"
	"github.com/nicolasct/ventapos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta y sus líneas.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO ventas (id, user_id, metodo_pago, total, fecha)
		VALUES ($1, $2, $3, $4, $5)`,
		sale.ID, sale.UserID, sale.MetodoPago, sale.Total, sale.Fecha,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	for i, l := range sale.Lineas {
		_, err := r.q.Exec(ctx, `
			INSERT INTO venta_lineas (venta_id, posicion, producto_id, nombre, precio, cantidad)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			sale.ID, i, l.ProductoID, l.Nombre, l.Precio, l.Cantidad,
		)
		if err != nil {
			return fmt.Errorf("insert venta linea: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	ctx := context.Background()
	var s entity.Sale
	err := r.q.QueryRow(ctx, `
		SELECT id, user_id, metodo_pago, total, fecha
		FROM ventas WHERE id = $1`, id).Scan(
		&s.ID, &s.UserID, &s.MetodoPago, &s.Total, &s.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	lineas, err := r.loadLines(ctx, []string{s.ID})
	if err != nil {
		return nil, err
	}
	s.Lineas = lineas[s.ID]
	return &s, nil
}

// AppendUserSale registra la referencia venta-usuario para el historial de compras.
// Ignora duplicados: registrar dos veces la misma venta no es un error.
func (r *SaleRepo) AppendUserSale(userID, saleID string) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO user_ventas (user_id, venta_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, venta_id) DO NOTHING`,
		userID, saleID,
	)
	if err != nil {
		return fmt.Errorf("append user venta: %w", err)
	}
	return nil
}

// List lista ventas aplicando filtros de fecha y total, más recientes primero.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	return r.list(filter, "")
}

// ListByUser lista las ventas referenciadas por un usuario, más recientes primero.
func (r *SaleRepo) ListByUser(userID string, filter repository.SaleFilter) ([]*entity.Sale, error) {
	return r.list(filter, userID)
}

func (r *SaleRepo) list(filter repository.SaleFilter, userID string) ([]*entity.Sale, error) {
	ctx := context.Background()
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	query := `SELECT v.id, v.user_id, v.metodo_pago, v.total, v.fecha FROM ventas v`
	if userID != "" {
		query += ` JOIN user_ventas uv ON uv.venta_id = v.id`
		conds = append(conds, "uv.user_id = "+arg(userID))
	}
	if filter.Desde != nil {
		conds = append(conds, "v.fecha >= "+arg(*filter.Desde))
	}
	if filter.Hasta != nil {
		conds = append(conds, "v.fecha <= "+arg(*filter.Hasta))
	}
	if filter.TotalMin != nil {
		conds = append(conds, "v.total >= "+arg(*filter.TotalMin))
	}
	if filter.TotalMax != nil {
		conds = append(conds, "v.total <= "+arg(*filter.TotalMax))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY v.fecha DESC"
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	var ids []string
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.UserID, &s.MetodoPago, &s.Total, &s.Fecha); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	lineas, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.Lineas = lineas[s.ID]
	}
	return list, nil
}

// loadLines carga las líneas de un conjunto de ventas en una sola consulta.
func (r *SaleRepo) loadLines(ctx context.Context, ids []string) (map[string][]entity.SaleLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT venta_id, producto_id, nombre, precio, cantidad
		FROM venta_lineas
		WHERE venta_id = ANY($1)
		ORDER BY venta_id, posicion`, ids)
	if err != nil {
		return nil, fmt.Errorf("load venta lineas: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.SaleLine, len(ids))
	for rows.Next() {
		var ventaID string
		var l entity.SaleLine
		if err := rows.Scan(&ventaID, &l.ProductoID, &l.Nombre, &l.Precio, &l.Cantidad); err != nil {
			return nil, fmt.Errorf("scan venta linea: %w", err)
		}
		out[ventaID] = append(out[ventaID], l)
	}
	return out, rows.Err()
}
