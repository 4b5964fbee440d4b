package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nicolasct/ventapos-api/internal/domain"
	"github.com/nicolasct/ventapos-api/internal/domain/entity"
	"github.com/nicolasct/ventapos-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL (usable con pool o tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// UpsertStockAlert inserta la alerta si no existe otra para el mismo producto.
// El índice único sobre producto_id garantiza la idempotencia incluso con
// escrituras concurrentes. Devuelve true si la alerta se insertó.
func (r *NotificationRepo) UpsertStockAlert(alert *entity.StockAlert) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `
		INSERT INTO alertas_stock (id, producto_id, nombre, motivo, fecha)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (producto_id) DO NOTHING`,
		alert.ID, alert.ProductoID, alert.Nombre, alert.Motivo, alert.Fecha,
	)
	if err != nil {
		return false, fmt.Errorf("upsert alerta stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// GetStockAlertByID obtiene una alerta global por ID.
func (r *NotificationRepo) GetStockAlertByID(id string) (*entity.StockAlert, error) {
	var a entity.StockAlert
	err := r.q.QueryRow(context.Background(), `
		SELECT id, producto_id, nombre, motivo, fecha
		FROM alertas_stock WHERE id = $1`, id).Scan(
		&a.ID, &a.ProductoID, &a.Nombre, &a.Motivo, &a.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alerta stock: %w", err)
	}
	return &a, nil
}

// GetStockAlertByProduct obtiene la alerta activa de un producto, si existe.
func (r *NotificationRepo) GetStockAlertByProduct(productoID string) (*entity.StockAlert, error) {
	var a entity.StockAlert
	err := r.q.QueryRow(context.Background(), `
		SELECT id, producto_id, nombre, motivo, fecha
		FROM alertas_stock WHERE producto_id = $1`, productoID).Scan(
		&a.ID, &a.ProductoID, &a.Nombre, &a.Motivo, &a.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alerta stock por producto: %w", err)
	}
	return &a, nil
}

// ListStockAlerts lista todas las alertas globales, más recientes primero.
func (r *NotificationRepo) ListStockAlerts() ([]*entity.StockAlert, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, producto_id, nombre, motivo, fecha
		FROM alertas_stock ORDER BY fecha DESC`)
	if err != nil {
		return nil, fmt.Errorf("list alertas stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAlert
	for rows.Next() {
		var a entity.StockAlert
		if err := rows.Scan(&a.ID, &a.ProductoID, &a.Nombre, &a.Motivo, &a.Fecha); err != nil {
			return nil, fmt.Errorf("scan alerta stock: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// DeleteStockAlert elimina una alerta global por ID.
func (r *NotificationRepo) DeleteStockAlert(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM alertas_stock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete alerta stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteStockAlertByProduct elimina la alerta de un producto si existe. No falla si no hay alerta.
func (r *NotificationRepo) DeleteStockAlertByProduct(productoID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM alertas_stock WHERE producto_id = $1`, productoID)
	if err != nil {
		return fmt.Errorf("delete alerta stock por producto: %w", err)
	}
	return nil
}

// AppendUserNotification agrega una notificación al historial del usuario.
func (r *NotificationRepo) AppendUserNotification(n *entity.UserNotification) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO notificaciones_usuario (id, user_id, tipo, productos, fecha)
		VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.UserID, n.Tipo, n.Productos, n.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert notificacion usuario: %w", err)
	}
	return nil
}

// ListUserNotifications lista las notificaciones de un usuario, más recientes primero.
func (r *NotificationRepo) ListUserNotifications(userID string) ([]*entity.UserNotification, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, user_id, tipo, productos, fecha
		FROM notificaciones_usuario WHERE user_id = $1 ORDER BY fecha DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list notificaciones usuario: %w", err)
	}
	defer rows.Close()
	var list []*entity.UserNotification
	for rows.Next() {
		var n entity.UserNotification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Tipo, &n.Productos, &n.Fecha); err != nil {
			return nil, fmt.Errorf("scan notificacion usuario: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// DeleteUserNotification elimina una notificación del historial del usuario.
// El filtro por user_id evita que un usuario borre notificaciones ajenas.
func (r *NotificationRepo) DeleteUserNotification(userID, id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM notificaciones_usuario WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete notificacion usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
