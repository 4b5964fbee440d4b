package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nicolasct/ventapos-api/internal/domain"
	"github.com/nicolasct/ventapos-api/internal/domain/entity"
	"github.com/nicolasct/ventapos-api/internal/domain/repository"
	"github.com/nicolasct/ventapos-api/pkg/eventbus"
	"github.com/nicolasct/ventapos-api/pkg/logger"
)

// settleTimeout acota la liquidación una vez desenganchada del contexto
// de la petición.
const settleTimeout = 30 * time.Second

// Workflow orquesta la parte autoritativa del checkout: pago simulado,
// re-verificación de stock con bloqueo de fila, descuento condicional,
// registro de la venta y fan-out de notificaciones.
//
// Todo el descuento+venta+referencia corre en una sola transacción
// (TxRunner), de modo que dos sesiones compitiendo por la última unidad
// nunca producen sobreventa: el descuento es condicional en el servidor
// (stock >= cantidad) y no un chequeo-luego-escritura del cliente.
type Workflow struct {
	txRunner    TxRunner
	gateway     PaymentGateway
	notifRepo   repository.NotificationRepository
	bus         *eventbus.Bus
	log         *logger.Logger
	confirmHold time.Duration
}

// NewWorkflow construye el flujo de compra.
func NewWorkflow(
	txRunner TxRunner,
	gateway PaymentGateway,
	notifRepo repository.NotificationRepository,
	bus *eventbus.Bus,
	log *logger.Logger,
	confirmHold time.Duration,
) *Workflow {
	return &Workflow{
		txRunner:    txRunner,
		gateway:     gateway,
		notifRepo:   notifRepo,
		bus:         bus,
		log:         log,
		confirmHold: confirmHold,
	}
}

// Confirm congela el método de pago y conduce la sesión por
// Processing → Confirming → Settling hasta Done o Failed.
// Un fallo de verificación aborta antes de mutar nada; errores transitorios
// de persistencia durante la liquidación se reintentan una vez.
// Cada transición es condicional sobre el estado anterior: si un Cancel
// concurrente movió la sesión entre fases, Confirm aborta sin liquidar.
func (w *Workflow) Confirm(ctx context.Context, s *Session) (*entity.Sale, error) {
	if err := s.advance(StateMethodSelection, StateProcessing); err != nil {
		return nil, err
	}

	// Pago (simulado): sin mutación de stock ni de ventas todavía;
	// la cancelación aquí no deja efectos.
	if err := w.gateway.Process(ctx, s.MetodoPago(), s.cart.Total()); err != nil {
		s.fail()
		return nil, err
	}

	// Pausa visual de "pago completado" antes de liquidar.
	if err := s.advance(StateProcessing, StateConfirming); err != nil {
		return nil, err
	}
	if err := w.hold(ctx); err != nil {
		s.fail()
		return nil, err
	}

	// Liquidación: desde aquí el flujo corre hasta completarse o fallar.
	// Se desengancha del contexto de la petición: un cliente que corta la
	// conexión tras pagar no aborta una liquidación ya iniciada.
	if err := s.advance(StateConfirming, StateSettling); err != nil {
		return nil, err
	}
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer cancel()
	sale, err := w.settle(sctx, s)
	if err != nil {
		s.fail()
		return nil, err
	}

	// Post-commit, mejor esfuerzo: la venta ya está confirmada y un fallo
	// al notificar no la revierte, solo se registra.
	names := make([]string, 0, len(sale.Lineas))
	for _, l := range sale.Lineas {
		names = append(names, l.Nombre)
	}
	if err := w.notifRepo.AppendUserNotification(&entity.UserNotification{
		ID:        uuid.New().String(),
		UserID:    s.UserID,
		Tipo:      "compra",
		Productos: names,
		Fecha:     sale.Fecha,
	}); err != nil {
		w.log.Warn().Err(err).Str("venta_id", sale.ID).
			Msg("venta confirmada pero la notificación de compra no se pudo guardar")
	}

	s.complete(sale)

	// Avisar a la presentación: catálogo y badges quedaron desactualizados.
	w.bus.PublishCatalogRefresh()
	w.bus.PublishNotificationsRefresh()

	return sale, nil
}

// settle ejecuta la secuencia autoritativa en una transacción, con un
// reintento ante errores transitorios de persistencia.
func (w *Workflow) settle(ctx context.Context, s *Session) (*entity.Sale, error) {
	sale, err := w.settleOnce(ctx, s)
	if err != nil && isTransient(err) {
		w.log.Warn().Err(err).Str("user_id", s.UserID).
			Msg("liquidación falló por error transitorio, reintentando una vez")
		sale, err = w.settleOnce(ctx, s)
	}
	return sale, err
}

func (w *Workflow) settleOnce(ctx context.Context, s *Session) (*entity.Sale, error) {
	lines := s.cart.Lines()
	now := time.Now()

	sale := &entity.Sale{
		ID:         uuid.New().String(),
		UserID:     s.UserID,
		MetodoPago: s.MetodoPago(),
		Fecha:      now,
	}
	for _, l := range lines {
		sale.Lineas = append(sale.Lineas, entity.SaleLine{
			ProductoID: l.ProductoID,
			Nombre:     l.Nombre,
			Precio:     l.Precio,
			Cantidad:   l.Cantidad,
		})
	}
	// Total derivado de las líneas, nunca tomado del cliente.
	sale.Total = sale.ComputeTotal()

	err := w.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		notifRepo repository.NotificationRepository,
	) error {
		// 1) Por línea: re-leer con bloqueo de fila y verificar contra el
		// stock actual (el snapshot del carrito puede estar viejo). Cualquier
		// línea sin stock aborta toda la transacción sin mutar nada.
		for _, l := range lines {
			p, err := productRepo.GetForUpdate(l.ProductoID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrNotFound
			}
			if p.Stock < l.Cantidad {
				return &domain.StockInsufficientError{ProductoID: l.ProductoID, Nombre: l.Nombre}
			}

			// 2) Descuento condicional en el servidor (stock >= cantidad).
			rest, err := productRepo.DecrementStock(l.ProductoID, l.Cantidad)
			if err != nil {
				return err
			}

			// 3) Alerta global si el producto quedó en cero (idempotente).
			if rest == 0 {
				if _, err := notifRepo.UpsertStockAlert(&entity.StockAlert{
					ID:         uuid.New().String(),
					ProductoID: l.ProductoID,
					Nombre:     l.Nombre,
					Motivo:     entity.MotivoCompra,
					Fecha:      now,
				}); err != nil {
					return err
				}
			}
		}

		// 4) Venta con snapshot de líneas y total derivado.
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// 5) Referencia de la venta en el registro del comprador (solo el id).
		return saleRepo.AppendUserSale(s.UserID, sale.ID)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// hold espera la pausa de confirmación respetando la cancelación.
func (w *Workflow) hold(ctx context.Context) error {
	if w.confirmHold <= 0 {
		return nil
	}
	t := time.NewTimer(w.confirmHold)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// isTransient distingue fallos de persistencia reintentables de los errores
// de negocio (stock insuficiente, producto inexistente), que nunca se reintentan.
func isTransient(err error) bool {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}
