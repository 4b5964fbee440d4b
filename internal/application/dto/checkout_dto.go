package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SelectPaymentRequest fija el método de pago durante la selección.
type SelectPaymentRequest struct {
	MetodoPago string `json:"metodo_pago"` // efectivo | tarjeta | transferencia
}

// CheckoutStateResponse estado actual del flujo de compra.
type CheckoutStateResponse struct {
	Estado     string `json:"estado"`
	MetodoPago string `json:"metodo_pago,omitempty"`
}

// CheckoutResultResponse resultado de una liquidación exitosa.
type CheckoutResultResponse struct {
	VentaID    string          `json:"venta_id"`
	Total      decimal.Decimal `json:"total"`
	MetodoPago string          `json:"metodo_pago"`
	Fecha      time.Time       `json:"fecha"`
}
