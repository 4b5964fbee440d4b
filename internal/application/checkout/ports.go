package checkout

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nicolasct/ventapos-api/internal/domain/repository"
)

// TxRunner ejecuta la liquidación dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que verificación, descuento de
// stock, venta y referencia del comprador se confirmen o deshagan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		notifRepo repository.NotificationRepository,
	) error) error
}

// PaymentGateway procesa el pago del total con el método elegido.
// La implementación por defecto es simulada (espera fija); en producción
// se inyecta un cliente de pasarela real sin tocar el flujo.
type PaymentGateway interface {
	Process(ctx context.Context, metodoPago string, total decimal.Decimal) error
}
