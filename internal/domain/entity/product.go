package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock se muta únicamente vía operaciones de ajuste (liquidación de compra,
// reposición manual); nunca puede quedar negativo.
type Product struct {
	ID        string
	Nombre    string
	Precio    decimal.Decimal // precio de venta, >= 0
	Stock     int             // unidades disponibles, >= 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
