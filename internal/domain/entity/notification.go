package entity

import "time"

// Motivos por los que el stock de un producto llegó a cero.
const (
	MotivoCompra  = "compra"  // descuento por liquidación de compra
	MotivoEdicion = "edicion" // edición manual desde la administración de stock
)

// StockAlert notificación global de "sin stock", visible para administradores.
// A lo sumo existe una alerta viva por producto (la creación es idempotente).
// Solo puede eliminarse si el producto recuperó stock o ya no existe.
type StockAlert struct {
	ID         string
	ProductoID string
	Nombre     string
	Motivo     string // compra | edicion
	Fecha      time.Time
}

// UserNotification notificación personal de compra exitosa.
// Lista de solo-agregado por usuario; cada una es eliminable individualmente.
type UserNotification struct {
	ID        string
	UserID    string
	Tipo      string   // siempre "compra"
	Productos []string // nombres de los productos comprados
	Fecha     time.Time
}
