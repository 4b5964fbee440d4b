package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nicolasct/ventapos-api/internal/application/dto"
	"github.com/nicolasct/ventapos-api/internal/application/notification"
	"github.com/nicolasct/ventapos-api/internal/domain"
)

// NotificationHandler alertas globales de stock y notificaciones personales.
type NotificationHandler struct {
	uc *notification.UseCase
}

// NewNotificationHandler construye el handler de notificaciones.
func NewNotificationHandler(uc *notification.UseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// ListStockAlerts godoc
// @Summary      Listar alertas de stock cero (administración)
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockAlertResponse
// @Router       /api/notificaciones/stock [get]
func (h *NotificationHandler) ListStockAlerts(c *fiber.Ctx) error {
	out, err := h.uc.ListGlobal()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteStockAlert godoc
// @Summary      Eliminar alerta de stock cero
// @Description  Rechazada mientras el producto siga sin stock: reponga stock o elimine el producto.
// @Tags         notificaciones
// @Security     Bearer
// @Param        id  path  string  true  "ID de la alerta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/notificaciones/stock/{id} [delete]
func (h *NotificationHandler) DeleteStockAlert(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.ClearStockZero(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		if errors.Is(err, domain.ErrNotificationLocked) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALERTA_BLOQUEADA", Message: "el producto sigue sin stock: reponga stock o elimine el producto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMine godoc
// @Summary      Notificaciones personales del usuario autenticado
// @Tags         notificaciones
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserNotificationResponse
// @Router       /api/notificaciones [get]
func (h *NotificationHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListForUser(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteMine godoc
// @Summary      Eliminar una notificación personal
// @Tags         notificaciones
// @Security     Bearer
// @Param        id  path  string  true  "ID de la notificación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notificaciones/{id} [delete]
func (h *NotificationHandler) DeleteMine(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.RemoveForUser(GetUserID(c), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notificación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
