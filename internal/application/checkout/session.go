package checkout

import (
	"sync"

	"github.com/nicolasct/ventapos-api/internal/application/cart"
	"github.com/nicolasct/ventapos-api/internal/domain"
	"github.com/nicolasct/ventapos-api/internal/domain/entity"
)

// State estado del flujo de compra. Máquina lineal:
// Idle → MethodSelection → Processing → Confirming → Settling → Done | Failed.
type State string

const (
	StateIdle            State = "idle"
	StateMethodSelection State = "seleccion_metodo"
	StateProcessing      State = "procesando"
	StateConfirming      State = "confirmando"
	StateSettling        State = "liquidando"
	StateDone            State = "completada"
	StateFailed          State = "fallida"
)

// IsTerminal indica si el estado es final (la sesión se descarta y una
// nueva compra arranca siempre desde Idle).
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// Session una instancia del flujo de compra para un carrito concreto.
// De un solo uso: tras Done o Failed se descarta.
// Segura para uso concurrente: un Cancel puede llegar por otra petición
// HTTP mientras el Confirm del mismo usuario sigue en vuelo, y las
// transiciones se resuelven bajo el mutex.
type Session struct {
	UserID string

	mu         sync.Mutex
	cart       *cart.Cart
	state      State
	metodoPago string
	result     *entity.Sale
}

// NewSession crea la sesión de checkout en Idle sobre el carrito dado.
func NewSession(userID string, c *cart.Cart) *Session {
	return &Session{UserID: userID, cart: c, state: StateIdle}
}

// State devuelve el estado actual.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// MetodoPago devuelve el método de pago elegido (congelado al confirmar).
func (s *Session) MetodoPago() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metodoPago
}

// Result devuelve la venta registrada, solo tras Done.
func (s *Session) Result() *entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Start pasa de Idle a MethodSelection con método por defecto "efectivo".
// Rechazado (permanece en Idle) si el carrito está vacío.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return domain.ErrInvalidState
	}
	if s.cart.IsEmpty() {
		return domain.ErrEmptyCart
	}
	s.metodoPago = entity.PagoEfectivo
	s.state = StateMethodSelection
	return nil
}

// SelectMethod cambia el método de pago; válido solo durante la selección.
func (s *Session) SelectMethod(metodo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateMethodSelection {
		return domain.ErrInvalidState
	}
	if !entity.ValidPaymentMethod(metodo) {
		return domain.ErrInvalidPayment
	}
	s.metodoPago = metodo
	return nil
}

// Cancel abandona el flujo sin efectos. Permitido en cualquier estado
// anterior a Settling; una vez iniciada la liquidación, el flujo corre
// hasta completarse o fallar explícitamente. Un Confirm en vuelo detecta
// la cancelación al intentar su siguiente transición y aborta sin liquidar.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSettling || s.state.IsTerminal() {
		return domain.ErrInvalidState
	}
	s.state = StateFailed
	return nil
}

// advance pasa de from a to solo si el estado sigue siendo from; si otra
// petición lo movió entre medias (una cancelación concurrente), devuelve
// ErrInvalidState y el llamador aborta.
func (s *Session) advance(from, to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != from {
		return domain.ErrInvalidState
	}
	s.state = to
	return nil
}

// fail marca la sesión como fallida.
func (s *Session) fail() {
	s.mu.Lock()
	s.state = StateFailed
	s.mu.Unlock()
}

// complete registra la venta, vacía el carrito y cierra la sesión en Done.
func (s *Session) complete(sale *entity.Sale) {
	s.mu.Lock()
	s.cart.Clear()
	s.result = sale
	s.state = StateDone
	s.mu.Unlock()
}
