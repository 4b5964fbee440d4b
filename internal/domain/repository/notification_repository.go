package repository

import (
	"github.com/nicolasct/ventapos-api/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para alertas
// globales de stock cero y notificaciones personales de compra.
type NotificationRepository interface {
	// UpsertStockAlert inserta la alerta solo si no existe una viva para el
	// mismo producto (idempotente por producto_id). Devuelve true si insertó.
	UpsertStockAlert(alert *entity.StockAlert) (bool, error)
	GetStockAlertByID(id string) (*entity.StockAlert, error)
	GetStockAlertByProduct(productoID string) (*entity.StockAlert, error)
	ListStockAlerts() ([]*entity.StockAlert, error)
	DeleteStockAlert(id string) error
	DeleteStockAlertByProduct(productoID string) error

	// Notificaciones personales: solo-agregado, eliminables una a una.
	AppendUserNotification(n *entity.UserNotification) error
	ListUserNotifications(userID string) ([]*entity.UserNotification, error)
	DeleteUserNotification(userID, id string) error
}
