package dto

import "time"

// StockAlertResponse alerta global de producto sin stock.
type StockAlertResponse struct {
	ID         string    `json:"id"`
	ProductoID string    `json:"producto_id"`
	Nombre     string    `json:"nombre"`
	Motivo     string    `json:"motivo"` // compra | edicion
	Fecha      time.Time `json:"fecha"`
}

// UserNotificationResponse notificación personal de compra.
type UserNotificationResponse struct {
	ID        string    `json:"id"`
	Tipo      string    `json:"tipo"`
	Productos []string  `json:"productos"`
	Fecha     time.Time `json:"fecha"`
}
