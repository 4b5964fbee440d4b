package checkout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

var _ PaymentGateway = (*SimulatedGateway)(nil)

// SimulatedGateway simula la latencia de una pasarela de pago con una espera
// fija. Respeta la cancelación del contexto: abandonar antes de liquidar no
// deja efectos.
type SimulatedGateway struct {
	Delay time.Duration
}

// NewSimulatedGateway construye la pasarela simulada.
func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{Delay: delay}
}

// Process espera el retardo configurado y reporta el pago como aprobado.
func (g *SimulatedGateway) Process(ctx context.Context, metodoPago string, total decimal.Decimal) error {
	if g.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(g.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
