package checkout_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicolasct/ventapos-api/internal/application/cart"
	"github.com/nicolasct/ventapos-api/internal/application/checkout"
	"github.com/nicolasct/ventapos-api/internal/domain"
	"github.com/nicolasct/ventapos-api/internal/domain/entity"
	"github.com/nicolasct/ventapos-api/internal/domain/repository"
	"github.com/nicolasct/ventapos-api/pkg/eventbus"
	"github.com/nicolasct/ventapos-api/pkg/logger"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un memStore compartido y repos atados a él. El TxRunner
// serializa las "transacciones" y restaura un snapshot si el callback falla,
// imitando el commit-o-rollback de la base real.
// ─────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu         sync.Mutex
	products   map[string]*entity.Product
	sales      map[string]*entity.Sale
	userSales  map[string][]string
	alerts     map[string]*entity.StockAlert // por producto_id
	userNotifs map[string][]*entity.UserNotification

	// saleCreateFails fuerza fallos transitorios en los próximos Create de ventas.
	saleCreateFails int
}

func newMemStore() *memStore {
	return &memStore{
		products:   make(map[string]*entity.Product),
		sales:      make(map[string]*entity.Sale),
		userSales:  make(map[string][]string),
		alerts:     make(map[string]*entity.StockAlert),
		userNotifs: make(map[string][]*entity.UserNotification),
	}
}

func (s *memStore) addProduct(id, nombre string, precio int64, stock int) {
	s.products[id] = &entity.Product{
		ID:     id,
		Nombre: nombre,
		Precio: decimal.NewFromInt(precio),
		Stock:  stock,
	}
}

func (s *memStore) snapshot() *memStore {
	out := newMemStore()
	for k, v := range s.products {
		cp := *v
		out.products[k] = &cp
	}
	for k, v := range s.sales {
		out.sales[k] = v
	}
	for k, v := range s.userSales {
		out.userSales[k] = append([]string(nil), v...)
	}
	for k, v := range s.alerts {
		cp := *v
		out.alerts[k] = &cp
	}
	for k, v := range s.userNotifs {
		out.userNotifs[k] = append([]*entity.UserNotification(nil), v...)
	}
	return out
}

func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.sales = snap.sales
	s.userSales = snap.userSales
	s.alerts = snap.alerts
	s.userNotifs = snap.userNotifs
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) DecrementStock(id string, cantidad int) (int, error) {
	p, ok := r.s.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if p.Stock < cantidad {
		return 0, domain.ErrInsufficientStock
	}
	p.Stock -= cantidad
	return p.Stock, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

type fakeSaleRepo struct{ s *memStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	if r.s.saleCreateFails > 0 {
		r.s.saleCreateFails--
		return errors.New("conexión perdida")
	}
	r.s.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.s.sales[id], nil
}

func (r *fakeSaleRepo) List(repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.s.sales {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSaleRepo) AppendUserSale(userID, saleID string) error {
	r.s.userSales[userID] = append(r.s.userSales[userID], saleID)
	return nil
}

func (r *fakeSaleRepo) ListByUser(userID string, _ repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, id := range r.s.userSales[userID] {
		out = append(out, r.s.sales[id])
	}
	return out, nil
}

type fakeNotifRepo struct{ s *memStore }

func (r *fakeNotifRepo) UpsertStockAlert(a *entity.StockAlert) (bool, error) {
	if _, ok := r.s.alerts[a.ProductoID]; ok {
		return false, nil
	}
	r.s.alerts[a.ProductoID] = a
	return true, nil
}

func (r *fakeNotifRepo) GetStockAlertByID(id string) (*entity.StockAlert, error) {
	for _, a := range r.s.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeNotifRepo) GetStockAlertByProduct(productoID string) (*entity.StockAlert, error) {
	return r.s.alerts[productoID], nil
}

func (r *fakeNotifRepo) ListStockAlerts() ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.s.alerts {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeNotifRepo) DeleteStockAlert(id string) error {
	for pid, a := range r.s.alerts {
		if a.ID == id {
			delete(r.s.alerts, pid)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeNotifRepo) DeleteStockAlertByProduct(productoID string) error {
	delete(r.s.alerts, productoID)
	return nil
}

func (r *fakeNotifRepo) AppendUserNotification(n *entity.UserNotification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.userNotifs[n.UserID] = append(r.s.userNotifs[n.UserID], n)
	return nil
}

func (r *fakeNotifRepo) ListUserNotifications(userID string) ([]*entity.UserNotification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]*entity.UserNotification(nil), r.s.userNotifs[userID]...), nil
}

func (r *fakeNotifRepo) DeleteUserNotification(userID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := r.s.userNotifs[userID]
	for i, n := range list {
		if n.ID == id {
			r.s.userNotifs[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTxRunner serializa transacciones y hace rollback por snapshot.
type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap := r.s.snapshot()
	err := fn(&fakeProductRepo{r.s}, &fakeSaleRepo{r.s}, txNotifRepo{r.s})
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// txNotifRepo versión sin lock del repo de notificaciones: dentro del
// TxRunner el mutex del store ya está tomado.
type txNotifRepo struct{ s *memStore }

func (r txNotifRepo) UpsertStockAlert(a *entity.StockAlert) (bool, error) {
	return (&fakeNotifRepo{r.s}).UpsertStockAlert(a)
}
func (r txNotifRepo) GetStockAlertByID(id string) (*entity.StockAlert, error) {
	return (&fakeNotifRepo{r.s}).GetStockAlertByID(id)
}
func (r txNotifRepo) GetStockAlertByProduct(id string) (*entity.StockAlert, error) {
	return (&fakeNotifRepo{r.s}).GetStockAlertByProduct(id)
}
func (r txNotifRepo) ListStockAlerts() ([]*entity.StockAlert, error) {
	return (&fakeNotifRepo{r.s}).ListStockAlerts()
}
func (r txNotifRepo) DeleteStockAlert(id string) error {
	return (&fakeNotifRepo{r.s}).DeleteStockAlert(id)
}
func (r txNotifRepo) DeleteStockAlertByProduct(id string) error {
	return (&fakeNotifRepo{r.s}).DeleteStockAlertByProduct(id)
}
func (r txNotifRepo) AppendUserNotification(n *entity.UserNotification) error {
	r.s.userNotifs[n.UserID] = append(r.s.userNotifs[n.UserID], n)
	return nil
}
func (r txNotifRepo) ListUserNotifications(userID string) ([]*entity.UserNotification, error) {
	return append([]*entity.UserNotification(nil), r.s.userNotifs[userID]...), nil
}
func (r txNotifRepo) DeleteUserNotification(userID, id string) error {
	return (&fakeNotifRepo{r.s}).DeleteUserNotification(userID, id)
}

// heldGateway se queda esperando hasta que el test lo libera, para cruzar
// de forma determinista un Cancel con un Confirm en vuelo.
type heldGateway struct {
	entered chan struct{}
	release chan struct{}
}

func (g *heldGateway) Process(ctx context.Context, metodoPago string, total decimal.Decimal) error {
	close(g.entered)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-g.release:
		return nil
	}
}

// disconnectGateway corta el contexto de la petición tras aprobar el pago,
// como un cliente que cierra la conexión justo después de pagar.
type disconnectGateway struct{ cancel context.CancelFunc }

func (g *disconnectGateway) Process(context.Context, string, decimal.Decimal) error {
	g.cancel()
	return nil
}

func newWorkflow(s *memStore) *checkout.Workflow {
	return checkout.NewWorkflow(
		&fakeTxRunner{s},
		checkout.NewSimulatedGateway(0),
		&fakeNotifRepo{s},
		eventbus.New(),
		logger.Nop(),
		0,
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Máquina de estados de la sesión
// ─────────────────────────────────────────────────────────────────────────────

func TestSession_StartConCarritoVacio(t *testing.T) {
	s := checkout.NewSession("u1", cart.New())
	err := s.Start()
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Equal(t, checkout.StateIdle, s.State(), "el rechazo no cambia el estado")
}

func TestSession_StartFijaMetodoPorDefecto(t *testing.T) {
	c := cart.New()
	require.True(t, c.AddItem(&entity.Product{ID: "p1", Nombre: "Café", Precio: decimal.NewFromInt(500), Stock: 3}))
	s := checkout.NewSession("u1", c)

	require.NoError(t, s.Start())
	assert.Equal(t, checkout.StateMethodSelection, s.State())
	assert.Equal(t, entity.PagoEfectivo, s.MetodoPago())
}

func TestSession_SelectMethod(t *testing.T) {
	c := cart.New()
	require.True(t, c.AddItem(&entity.Product{ID: "p1", Nombre: "Café", Precio: decimal.NewFromInt(500), Stock: 3}))
	s := checkout.NewSession("u1", c)
	require.NoError(t, s.Start())

	require.NoError(t, s.SelectMethod(entity.PagoTarjeta))
	assert.Equal(t, entity.PagoTarjeta, s.MetodoPago())

	err := s.SelectMethod("cheque")
	assert.ErrorIs(t, err, domain.ErrInvalidPayment)
	assert.Equal(t, entity.PagoTarjeta, s.MetodoPago(), "el método no cambia tras el rechazo")
}

func TestSession_SelectMethodFueraDeSeleccion(t *testing.T) {
	s := checkout.NewSession("u1", cart.New())
	assert.ErrorIs(t, s.SelectMethod(entity.PagoTarjeta), domain.ErrInvalidState)
}

func TestSession_CancelAntesDeLiquidar(t *testing.T) {
	c := cart.New()
	require.True(t, c.AddItem(&entity.Product{ID: "p1", Nombre: "Café", Precio: decimal.NewFromInt(500), Stock: 3}))
	s := checkout.NewSession("u1", c)
	require.NoError(t, s.Start())

	require.NoError(t, s.Cancel())
	assert.Equal(t, checkout.StateFailed, s.State())
	assert.False(t, c.IsEmpty(), "cancelar no vacía el carrito ni toca el stock")
}

func TestSession_CancelTrasTerminarEsRechazado(t *testing.T) {
	c := cart.New()
	require.True(t, c.AddItem(&entity.Product{ID: "p1", Nombre: "Café", Precio: decimal.NewFromInt(500), Stock: 3}))
	s := checkout.NewSession("u1", c)
	require.NoError(t, s.Start())
	require.NoError(t, s.Cancel())

	assert.ErrorIs(t, s.Cancel(), domain.ErrInvalidState)
}

// ─────────────────────────────────────────────────────────────────────────────
// Confirmación de la compra
// ─────────────────────────────────────────────────────────────────────────────

func TestConfirm_CompraExitosa(t *testing.T) {
	store := newMemStore()
	store.addProduct("p1", "Producto demo", 19900, 5)

	c := cart.New()
	p, _ := (&fakeProductRepo{store}).GetByID("p1")
	require.True(t, c.AddItem(p))
	require.True(t, c.AddItem(p)) // 2 × 19900 = 39800

	s := checkout.NewSession("u1", c)
	require.NoError(t, s.Start())

	sale, err := newWorkflow(store).Confirm(context.Background(), s)
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.Equal(t, checkout.StateDone, s.State())
	assert.True(t, decimal.NewFromInt(39800).Equal(sale.Total),
		"total esperado 39800, obtenido %s", sale.Total)
	assert.Equal(t, 3, store.products["p1"].Stock, "stock 5 - 2 = 3")
	assert.True(t, c.IsEmpty(), "el carrito se vacía tras la compra")

	// Venta registrada y referenciada en el historial del usuario.
	require.Len(t, store.sales, 1)
	require.Equal(t, []string{sale.ID}, store.userSales["u1"])
	assert.Equal(t, entity.PagoEfectivo, sale.MetodoPago)

	// Notificación personal con los nombres comprados.
	notifs, err := (&fakeNotifRepo{store}).ListUserNotifications("u1")
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, []string{"Producto demo"}, notifs[0].Productos)

	// No quedó en cero: sin alerta global.
	assert.Empty(t, store.alerts)
}

func TestConfirm_UltimaUnidadLevantaAlerta(t *testing.T) {
	store := newMemStore()
	store.addProduct("p1", "Único", 1000, 1)

	c := cart.New()
	p, _ := (&fakeProductRepo{store}).GetByID("p1")
	require.True(t, c.AddItem(p))

	s := checkout.NewSession("u1", c)
	require.NoError(t, s.Start())

	_, err := newWorkflow(store).Confirm(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 0, store.products["p1"].Stock)
	require.Contains(t, store.alerts, "p1")
	assert.Equal(t, entity.MotivoCompra, store.alerts["p1"].Motivo)
}

func TestConfirm_SnapshotViejoAbortaSinMutar(t *testing.T) {
	store := newMemStore()
	store.addProduct("p1", "Café", 500, 5)
	store.addProduct("p2", "Pan", 1000, 5)

	c := cart.New()
	repo := &fakeProductRepo{store}
	p1, _ := repo.GetByID("p1")
	p2, _ := repo.GetByID("p2")
	require.True(t, c.AddItem(p1))
	require.True(t, c.AddItem(p2))
	require.True(t, c.SetQuantity("p2", 4))

	// Otra venta se adelantó: el stock real de p2 ya no alcanza.
	store.products["p2"].Stock = 3

	s := checkout.NewSession("u1", c)
	require.NoError(t, s.Start())

	_, err := newWorkflow(store).Confirm(context.Background(), s)
	var stockErr *domain.StockInsufficientError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "p2", stockErr.ProductoID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, checkout.StateFailed, s.State())
	assert.Equal(t, 5, store.products["p1"].Stock, "la línea ya descontada se revierte")
	assert.Equal(t, 3, store.products["p2"].Stock)
	assert.Empty(t, store.sales, "no se registra venta parcial")
	assert.Empty(t, store.userSales)
	assert.False(t, c.IsEmpty(), "el carrito queda intacto para corregir")
}

func TestConfirm_ProductoEliminadoAborta(t *testing.T) {
	store := newMemStore()
	store.addProduct("p1", "Café", 500, 5)

	c := cart.New()
	p, _ := (&fakeProductRepo{store}).GetByID("p1")
	require.True(t, c.AddItem(p))

	delete(store.products, "p1")

	s := checkout.NewSession("u1", c)
	require.NoError(t, s.Start())

	_, err := newWorkflow(store).Confirm(context.Background(), s)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, checkout.StateFailed, s.State())
	assert.Empty(t, store.sales)
}

func TestConfirm_ReintentaUnaVezAnteErrorTransitorio(t *testing.T) {
	store := newMemStore()
	store.addProduct("p1", "Café", 500, 5)
	store.saleCreateFails = 1

	c := cart.New()
	p, _ := (&fakeProductRepo{store}).GetByID("p1")
	require.True(t, c.AddItem(p))

	s := checkout.NewSession("u1", c)
	require.NoError(t, s.Start())

	sale, err := newWorkflow(store).Confirm(context.Background(), s)
	require.NoError(t, err, "un único fallo transitorio se resuelve con el reintento")
	require.NotNil(t, sale)

	assert.Equal(t, 4, store.products["p1"].Stock, "el primer intento revertido no descuenta doble")
	assert.Len(t, store.sales, 1)
}

func TestConfirm_DosFallosTransitoriosTerminanEnFailed(t *testing.T) {
	store := newMemStore()
	store.addProduct("p1", "Café", 500, 5)
	store.saleCreateFails = 2

	c := cart.New()
	p, _ := (&fakeProductRepo{store}).GetByID("p1")
	require.True(t, c.AddItem(p))

	s := checkout.NewSession("u1", c)
	require.NoError(t, s.Start())

	_, err := newWorkflow(store).Confirm(context.Background(), s)
	require.Error(t, err)
	assert.Equal(t, checkout.StateFailed, s.State())
	assert.Equal(t, 5, store.products["p1"].Stock, "ambos intentos se revirtieron")
	assert.Empty(t, store.sales)
}

func TestConfirm_DesdeEstadoInvalido(t *testing.T) {
	store := newMemStore()
	s := checkout.NewSession("u1", cart.New())

	_, err := newWorkflow(store).Confirm(context.Background(), s)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestConfirm_ContextoCanceladoAntesDeLiquidarNoMuta(t *testing.T) {
	store := newMemStore()
	store.addProduct("p1", "Café", 500, 5)

	c := cart.New()
	p, _ := (&fakeProductRepo{store}).GetByID("p1")
	require.True(t, c.AddItem(p))

	s := checkout.NewSession("u1", c)
	require.NoError(t, s.Start())

	// Gateway con espera real para que la cancelación llegue durante el pago.
	w := checkout.NewWorkflow(
		&fakeTxRunner{store},
		checkout.NewSimulatedGateway(time.Second),
		&fakeNotifRepo{store},
		eventbus.New(),
		logger.Nop(),
		0,
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.Confirm(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, checkout.StateFailed, s.State())
	assert.Equal(t, 5, store.products["p1"].Stock, "abandonar antes de liquidar no deja efectos")
	assert.Empty(t, store.sales)
}

// Un Cancel que llega por otra petición mientras el pago sigue en curso
// debe ganar: el Confirm en vuelo detecta la cancelación y nunca liquida.
func TestConfirm_CancelConcurrenteDuranteElPagoNoLiquida(t *testing.T) {
	store := newMemStore()
	store.addProduct("p1", "Café", 500, 5)

	c := cart.New()
	p, _ := (&fakeProductRepo{store}).GetByID("p1")
	require.True(t, c.AddItem(p))

	s := checkout.NewSession("u1", c)
	require.NoError(t, s.Start())

	g := &heldGateway{entered: make(chan struct{}), release: make(chan struct{})}
	w := checkout.NewWorkflow(
		&fakeTxRunner{store},
		g,
		&fakeNotifRepo{store},
		eventbus.New(),
		logger.Nop(),
		0,
	)

	errCh := make(chan error, 1)
	go func() {
		_, err := w.Confirm(context.Background(), s)
		errCh <- err
	}()

	<-g.entered
	require.NoError(t, s.Cancel(), "cancelar durante el pago está permitido")
	close(g.release)

	err := <-errCh
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, checkout.StateFailed, s.State())
	assert.Equal(t, 5, store.products["p1"].Stock, "una cancelación aceptada no deja efectos")
	assert.Empty(t, store.sales)
	assert.Empty(t, store.userSales)
	assert.False(t, c.IsEmpty(), "el carrito queda intacto")
}

func TestConfirm_DesconexionTrasElPagoNoAbortaLaLiquidacion(t *testing.T) {
	store := newMemStore()
	store.addProduct("p1", "Café", 500, 5)

	c := cart.New()
	p, _ := (&fakeProductRepo{store}).GetByID("p1")
	require.True(t, c.AddItem(p))

	s := checkout.NewSession("u1", c)
	require.NoError(t, s.Start())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := checkout.NewWorkflow(
		&fakeTxRunner{store},
		&disconnectGateway{cancel},
		&fakeNotifRepo{store},
		eventbus.New(),
		logger.Nop(),
		0,
	)

	sale, err := w.Confirm(ctx, s)
	require.NoError(t, err, "la liquidación ya iniciada corre hasta completarse")
	require.NotNil(t, sale)
	assert.Equal(t, checkout.StateDone, s.State())
	assert.Equal(t, 4, store.products["p1"].Stock)
	assert.Len(t, store.sales, 1)
}

// Dos compradores compiten por la última unidad: exactamente uno completa
// la compra y el stock nunca queda negativo.
func TestConfirm_ConcurrenciaSinSobreventa(t *testing.T) {
	store := newMemStore()
	store.addProduct("p1", "Última unidad", 1000, 1)

	w := newWorkflow(store)

	// Ambos compradores vieron el mismo catálogo antes de comprar.
	p, _ := (&fakeProductRepo{store}).GetByID("p1")

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, userID := range []string{"u1", "u2"} {
		wg.Add(1)
		go func(uid string) {
			defer wg.Done()
			c := cart.New()
			snapshot := *p
			if !c.AddItem(&snapshot) {
				results <- domain.ErrInsufficientStock
				return
			}
			s := checkout.NewSession(uid, c)
			if err := s.Start(); err != nil {
				results <- err
				return
			}
			_, err := w.Confirm(context.Background(), s)
			results <- err
		}(userID)
	}
	wg.Wait()
	close(results)

	var oks, sinStock int
	for err := range results {
		switch {
		case err == nil:
			oks++
		case errors.Is(err, domain.ErrInsufficientStock):
			sinStock++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, oks, "exactamente una compra completa")
	assert.Equal(t, 1, sinStock, "la otra recibe stock insuficiente")
	assert.Equal(t, 0, store.products["p1"].Stock, "el stock nunca queda negativo")
	assert.Len(t, store.sales, 1)
	assert.Len(t, store.alerts, 1, "una única alerta de stock cero")
}

// ─────────────────────────────────────────────────────────────────────────────
// Manager de sesiones
// ─────────────────────────────────────────────────────────────────────────────

func TestManager_ReemplazaSesionesTerminadas(t *testing.T) {
	m := checkout.NewManager()
	c := cart.New()
	require.True(t, c.AddItem(&entity.Product{ID: "p1", Nombre: "Café", Precio: decimal.NewFromInt(500), Stock: 3}))

	s1 := m.GetOrCreate("u1", c)
	require.NoError(t, s1.Start())
	assert.Same(t, s1, m.GetOrCreate("u1", c), "la sesión activa se reutiliza")

	require.NoError(t, s1.Cancel())
	s2 := m.GetOrCreate("u1", c)
	assert.NotSame(t, s1, s2, "una sesión terminada se reemplaza")
	assert.Equal(t, checkout.StateIdle, s2.State())

	assert.Nil(t, m.Current("u9"))
}
