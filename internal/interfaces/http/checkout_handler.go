package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nicolasct/ventapos-api/internal/application/cart"
	"github.com/nicolasct/ventapos-api/internal/application/checkout"
	"github.com/nicolasct/ventapos-api/internal/application/dto"
	"github.com/nicolasct/ventapos-api/internal/domain"
)

// CheckoutHandler conduce el flujo de compra de la sesión autenticada.
type CheckoutHandler struct {
	carts    *cart.Manager
	sessions *checkout.Manager
	workflow *checkout.Workflow
}

// NewCheckoutHandler construye el handler de checkout.
func NewCheckoutHandler(carts *cart.Manager, sessions *checkout.Manager, workflow *checkout.Workflow) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, sessions: sessions, workflow: workflow}
}

// Start godoc
// @Summary      Iniciar checkout
// @Description  Abre la selección de método de pago sobre el carrito actual.
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CheckoutStateResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkout/iniciar [post]
func (h *CheckoutHandler) Start(c *fiber.Ctx) error {
	userID := GetUserID(c)
	s := h.sessions.GetOrCreate(userID, h.carts.Get(userID))
	if err := s.Start(); err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CARRITO_VACIO", Message: "el carrito está vacío"})
		}
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ESTADO_INVALIDO", Message: "ya hay un checkout en curso"})
	}
	return c.JSON(toStateResponse(s))
}

// SelectMethod godoc
// @Summary      Elegir método de pago
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectPaymentRequest  true  "efectivo | tarjeta | transferencia"
// @Success      200   {object}  dto.CheckoutStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout/metodo [put]
func (h *CheckoutHandler) SelectMethod(c *fiber.Ctx) error {
	var in dto.SelectPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s := h.sessions.Current(GetUserID(c))
	if s == nil {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_CHECKOUT", Message: "no hay checkout en curso"})
	}
	if err := s.SelectMethod(in.MetodoPago); err != nil {
		if errors.Is(err, domain.ErrInvalidPayment) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "METODO_INVALIDO", Message: "método de pago desconocido"})
		}
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ESTADO_INVALIDO", Message: "el método solo puede cambiarse durante la selección"})
	}
	return c.JSON(toStateResponse(s))
}

// Confirm godoc
// @Summary      Confirmar compra
// @Description  Congela el método de pago y liquida: pago simulado, re-verificación
// @Description  de stock con bloqueo de fila, descuento, venta y notificaciones.
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CheckoutResultResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkout/confirmar [post]
func (h *CheckoutHandler) Confirm(c *fiber.Ctx) error {
	userID := GetUserID(c)
	s := h.sessions.Current(userID)
	if s == nil {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_CHECKOUT", Message: "no hay checkout en curso"})
	}
	sale, err := h.workflow.Confirm(c.UserContext(), s)
	if err != nil {
		h.sessions.Discard(userID)
		var stockErr *domain.StockInsufficientError
		switch {
		case errors.As(err, &stockErr):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_STOCK", Message: "stock insuficiente para " + stockErr.Nombre})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PRODUCTO_NO_DISPONIBLE", Message: "un producto del carrito ya no está disponible"})
		case errors.Is(err, domain.ErrInvalidState):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ESTADO_INVALIDO", Message: "la compra no está en selección de método"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.sessions.Discard(userID)
	return c.JSON(dto.CheckoutResultResponse{
		VentaID:    sale.ID,
		Total:      sale.Total,
		MetodoPago: sale.MetodoPago,
		Fecha:      sale.Fecha,
	})
}

// State godoc
// @Summary      Estado del checkout
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CheckoutStateResponse
// @Router       /api/checkout [get]
func (h *CheckoutHandler) State(c *fiber.Ctx) error {
	s := h.sessions.Current(GetUserID(c))
	if s == nil {
		return c.JSON(dto.CheckoutStateResponse{Estado: string(checkout.StateIdle)})
	}
	return c.JSON(toStateResponse(s))
}

// Cancel godoc
// @Summary      Cancelar checkout
// @Description  Abandona el flujo sin efectos. Rechazado una vez iniciada la liquidación.
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CheckoutStateResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkout/cancelar [post]
func (h *CheckoutHandler) Cancel(c *fiber.Ctx) error {
	userID := GetUserID(c)
	s := h.sessions.Current(userID)
	if s == nil {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_CHECKOUT", Message: "no hay checkout en curso"})
	}
	if err := s.Cancel(); err != nil {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ESTADO_INVALIDO", Message: "la liquidación ya comenzó y no puede cancelarse"})
	}
	h.sessions.Discard(userID)
	return c.JSON(dto.CheckoutStateResponse{Estado: string(checkout.StateFailed)})
}

func toStateResponse(s *checkout.Session) dto.CheckoutStateResponse {
	return dto.CheckoutStateResponse{
		Estado:     string(s.State()),
		MetodoPago: s.MetodoPago(),
	}
}
