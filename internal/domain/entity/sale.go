package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PagoEfectivo      = "efectivo"
	PagoTarjeta       = "tarjeta"
	PagoTransferencia = "transferencia"
)

// ValidPaymentMethod indica si el método de pago es uno de los aceptados.
func ValidPaymentMethod(m string) bool {
	return m == PagoEfectivo || m == PagoTarjeta || m == PagoTransferencia
}

// SaleLine snapshot inmutable de una línea de venta (nombre y precio al momento de comprar).
type SaleLine struct {
	ProductoID string
	Nombre     string
	Precio     decimal.Decimal
	Cantidad   int
}

// Subtotal devuelve precio × cantidad de la línea.
func (l SaleLine) Subtotal() decimal.Decimal {
	return l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// Sale es el registro de una compra completada. Se crea exactamente una vez
// por checkout exitoso y nunca se modifica ni borra después.
// Total es un valor derivado: suma de precio × cantidad de las líneas.
type Sale struct {
	ID         string
	UserID     string
	MetodoPago string // efectivo | tarjeta | transferencia
	Lineas     []SaleLine
	Total      decimal.Decimal
	Fecha      time.Time
}

// ComputeTotal recalcula el total desde las líneas (fuente de verdad).
func (s *Sale) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Lineas {
		total = total.Add(l.Subtotal())
	}
	return total
}
