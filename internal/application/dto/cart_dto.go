package dto

import (
	"github.com/shopspring/decimal"
)

// AddCartItemRequest agrega un producto al carrito (cantidad siempre 1;
// si la línea ya existe se incrementa).
type AddCartItemRequest struct {
	ProductoID string `json:"producto_id"`
}

// SetCartQuantityRequest fija la cantidad de una línea existente.
type SetCartQuantityRequest struct {
	Cantidad int `json:"cantidad"`
}

// CartLineResponse línea del carrito con su snapshot de producto.
type CartLineResponse struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Stock      int             `json:"stock"` // techo conocido al agregar
	Cantidad   int             `json:"cantidad"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// CartResponse estado completo del carrito de la sesión.
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}
