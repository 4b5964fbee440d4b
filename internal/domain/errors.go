package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Carrito y checkout.
	ErrEmptyCart           = errors.New("el carrito está vacío")
	ErrQuantityOutOfBounds = errors.New("cantidad fuera de rango")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrInvalidState        = errors.New("transición de estado inválida")
	ErrInvalidPayment      = errors.New("método de pago inválido")

	// Notificaciones de stock cero.
	ErrNotificationLocked = errors.New("la notificación sigue activa: el producto no tiene stock")
)

// StockInsufficientError indica qué producto no tiene stock suficiente.
// errors.Is(err, ErrInsufficientStock) lo reconoce; el mensaje nombra el
// producto para que el usuario pueda ajustar el carrito.
type StockInsufficientError struct {
	ProductoID string
	Nombre     string
}

func (e *StockInsufficientError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s", e.Nombre)
}

// Is hace que el error participe en errors.Is con el centinela ErrInsufficientStock.
func (e *StockInsufficientError) Is(target error) bool {
	return target == ErrInsufficientStock
}
