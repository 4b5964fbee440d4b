package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicolasct/ventapos-api/internal/application/cart"
	"github.com/nicolasct/ventapos-api/internal/application/dto"
	"github.com/nicolasct/ventapos-api/internal/domain/repository"
)

// CartHandler maneja el carrito de la sesión autenticada.
type CartHandler struct {
	carts       *cart.Manager
	productRepo repository.ProductRepository
}

// NewCartHandler construye el handler del carrito.
func NewCartHandler(carts *cart.Manager, productRepo repository.ProductRepository) *CartHandler {
	return &CartHandler{carts: carts, productRepo: productRepo}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrito [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(toCartResponse(h.carts.Get(GetUserID(c))))
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Description  Agrega una unidad; si la línea ya existe incrementa hasta el stock conocido.
// @Tags         carrito
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "producto_id"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carrito/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id es requerido"})
	}
	p, err := h.productRepo.GetByID(in.ProductoID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	cc := h.carts.Get(GetUserID(c))
	if !cc.AddItem(p) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_STOCK", Message: "no hay stock disponible para agregar más unidades"})
	}
	return c.JSON(toCartResponse(cc))
}

// SetQuantity godoc
// @Summary      Fijar cantidad de una línea
// @Description  Cantidad entre 1 y el stock conocido; fuera de rango se rechaza sin cambios.
// @Tags         carrito
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SetCartQuantityRequest  true  "cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carrito/items/{id} [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.SetCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cc := h.carts.Get(GetUserID(c))
	if !cc.SetQuantity(id, in.Cantidad) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CANTIDAD_INVALIDA", Message: "cantidad fuera de rango para la línea"})
	}
	return c.JSON(toCartResponse(cc))
}

// RemoveItem godoc
// @Summary      Quitar línea del carrito
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrito/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	cc := h.carts.Get(GetUserID(c))
	cc.RemoveItem(c.Params("id"))
	return c.JSON(toCartResponse(cc))
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrito [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	cc := h.carts.Get(GetUserID(c))
	cc.Clear()
	return c.JSON(toCartResponse(cc))
}

func toCartResponse(c *cart.Cart) dto.CartResponse {
	lines := c.Lines()
	items := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.CartLineResponse{
			ProductoID: l.ProductoID,
			Nombre:     l.Nombre,
			Precio:     l.Precio,
			Stock:      l.Stock,
			Cantidad:   l.Cantidad,
			Subtotal:   l.Subtotal(),
		})
	}
	return dto.CartResponse{Items: items, Total: c.Total()}
}
