package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/nicolasct/ventapos-api/internal/application/dto"
	"github.com/nicolasct/ventapos-api/internal/domain"
	"github.com/nicolasct/ventapos-api/internal/domain/entity"
	"github.com/nicolasct/ventapos-api/internal/domain/repository"
	"github.com/nicolasct/ventapos-api/pkg/eventbus"
)

// UseCase fan-out de notificaciones: alertas globales de stock cero
// (idempotentes por producto) y notificaciones personales de compra.
type UseCase struct {
	notifRepo   repository.NotificationRepository
	productRepo repository.ProductRepository
	bus         *eventbus.Bus
}

// NewUseCase construye el caso de uso.
func NewUseCase(notifRepo repository.NotificationRepository, productRepo repository.ProductRepository, bus *eventbus.Bus) *UseCase {
	return &UseCase{notifRepo: notifRepo, productRepo: productRepo, bus: bus}
}

// RaiseStockZero crea la alerta global para el producto si no hay una viva.
// Idempotente: una segunda llamada antes de limpiar la primera no duplica.
// Devuelve true si insertó una alerta nueva.
func (uc *UseCase) RaiseStockZero(productoID, nombre, motivo string) (bool, error) {
	if productoID == "" || (motivo != entity.MotivoCompra && motivo != entity.MotivoEdicion) {
		return false, domain.ErrInvalidInput
	}
	created, err := uc.notifRepo.UpsertStockAlert(&entity.StockAlert{
		ID:         uuid.New().String(),
		ProductoID: productoID,
		Nombre:     nombre,
		Motivo:     motivo,
		Fecha:      time.Now(),
	})
	if err != nil {
		return false, err
	}
	if created {
		uc.bus.PublishNotificationsRefresh()
	}
	return created, nil
}

// ClearStockZero elimina la alerta solo si el producto recuperó stock o ya
// no existe. Si sigue en cero, devuelve ErrNotificationLocked y el llamador
// presenta el remedio literal (reponer stock o eliminar el producto).
func (uc *UseCase) ClearStockZero(alertID string) error {
	alert, err := uc.notifRepo.GetStockAlertByID(alertID)
	if err != nil {
		return err
	}
	if alert == nil {
		return domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(alert.ProductoID)
	if err != nil {
		return err
	}
	// Producto borrado: la alerta quedó huérfana y puede limpiarse.
	if product != nil && product.Stock <= 0 {
		return domain.ErrNotificationLocked
	}
	if err := uc.notifRepo.DeleteStockAlert(alertID); err != nil {
		return err
	}
	uc.bus.PublishNotificationsRefresh()
	return nil
}

// ClearByProduct elimina la alerta viva del producto, si la hay. Se usa
// cuando una reposición manual sube el stock por encima de cero.
func (uc *UseCase) ClearByProduct(productoID string) error {
	if err := uc.notifRepo.DeleteStockAlertByProduct(productoID); err != nil {
		return err
	}
	uc.bus.PublishNotificationsRefresh()
	return nil
}

// ListGlobal lista las alertas de stock cero vivas.
func (uc *UseCase) ListGlobal() ([]dto.StockAlertResponse, error) {
	alerts, err := uc.notifRepo.ListStockAlerts()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.StockAlertResponse{
			ID:         a.ID,
			ProductoID: a.ProductoID,
			Nombre:     a.Nombre,
			Motivo:     a.Motivo,
			Fecha:      a.Fecha,
		})
	}
	return out, nil
}

// NotifyPurchase agrega la notificación personal de compra (solo-agregado).
// Mejor esfuerzo respecto de la venta: un fallo aquí nunca revierte una
// venta ya confirmada; el llamador decide cómo reportarlo.
func (uc *UseCase) NotifyPurchase(userID string, productos []string, fecha time.Time) error {
	if userID == "" || len(productos) == 0 {
		return domain.ErrInvalidInput
	}
	err := uc.notifRepo.AppendUserNotification(&entity.UserNotification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Tipo:      "compra",
		Productos: productos,
		Fecha:     fecha,
	})
	if err != nil {
		return err
	}
	uc.bus.PublishNotificationsRefresh()
	return nil
}

// ListForUser lista las notificaciones personales del usuario.
func (uc *UseCase) ListForUser(userID string) ([]dto.UserNotificationResponse, error) {
	list, err := uc.notifRepo.ListUserNotifications(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserNotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.UserNotificationResponse{
			ID:        n.ID,
			Tipo:      n.Tipo,
			Productos: n.Productos,
			Fecha:     n.Fecha,
		})
	}
	return out, nil
}

// RemoveForUser elimina una notificación personal del usuario.
func (uc *UseCase) RemoveForUser(userID, id string) error {
	return uc.notifRepo.DeleteUserNotification(userID, id)
}
