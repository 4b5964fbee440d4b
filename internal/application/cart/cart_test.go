package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicolasct/ventapos-api/internal/application/cart"
	"github.com/nicolasct/ventapos-api/internal/domain/entity"
)

func producto(id, nombre string, precio int64, stock int) *entity.Product {
	return &entity.Product{
		ID:     id,
		Nombre: nombre,
		Precio: decimal.NewFromInt(precio),
		Stock:  stock,
	}
}

func TestAddItem_NuevaLineaConCantidadUno(t *testing.T) {
	c := cart.New()
	require.True(t, c.AddItem(producto("p1", "Café", 3500, 10)))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductoID)
	assert.Equal(t, 1, lines[0].Cantidad)
	assert.Equal(t, 10, lines[0].Stock)
}

func TestAddItem_RepetidoIncrementaMismaLinea(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Café", 3500, 10)
	require.True(t, c.AddItem(p))
	require.True(t, c.AddItem(p))
	require.True(t, c.AddItem(p))

	lines := c.Lines()
	require.Len(t, lines, 1, "agregar el mismo producto no crea línea nueva")
	assert.Equal(t, 3, lines[0].Cantidad)
}

func TestAddItem_RechazadoAlSuperarStock(t *testing.T) {
	c := cart.New()
	p := producto("p1", "Café", 3500, 2)
	require.True(t, c.AddItem(p))
	require.True(t, c.AddItem(p))

	assert.False(t, c.AddItem(p), "el incremento sobre el stock conocido se rechaza")
	assert.Equal(t, 2, c.Lines()[0].Cantidad, "la cantidad no cambia tras el rechazo")
}

func TestAddItem_SinStockNoAgrega(t *testing.T) {
	c := cart.New()
	assert.False(t, c.AddItem(producto("p1", "Café", 3500, 0)))
	assert.True(t, c.IsEmpty())
}

func TestSetQuantity_DentroDeRango(t *testing.T) {
	c := cart.New()
	require.True(t, c.AddItem(producto("p1", "Café", 3500, 5)))

	assert.True(t, c.SetQuantity("p1", 5))
	assert.Equal(t, 5, c.Lines()[0].Cantidad)
	assert.True(t, c.SetQuantity("p1", 1))
	assert.Equal(t, 1, c.Lines()[0].Cantidad)
}

func TestSetQuantity_FueraDeRangoEsNoOp(t *testing.T) {
	c := cart.New()
	require.True(t, c.AddItem(producto("p1", "Café", 3500, 5)))
	require.True(t, c.SetQuantity("p1", 3))

	assert.False(t, c.SetQuantity("p1", 0), "cantidad menor a 1 se rechaza")
	assert.False(t, c.SetQuantity("p1", 6), "cantidad sobre el stock conocido se rechaza")
	assert.False(t, c.SetQuantity("p2", 2), "línea inexistente se rechaza")
	assert.Equal(t, 3, c.Lines()[0].Cantidad, "ningún rechazo muta la línea")
}

func TestTotal_SumaPrecioporCantidad(t *testing.T) {
	c := cart.New()
	p1 := producto("p1", "Café", 500, 10)
	p2 := producto("p2", "Pan", 1000, 10)
	require.True(t, c.AddItem(p1))
	require.True(t, c.AddItem(p1))
	require.True(t, c.AddItem(p1)) // 3 × 500
	require.True(t, c.AddItem(p2))
	require.True(t, c.AddItem(p2)) // 2 × 1000

	assert.True(t, decimal.NewFromInt(3500).Equal(c.Total()),
		"total esperado 3500, obtenido %s", c.Total())
}

func TestTotal_CarritoVacioEsCero(t *testing.T) {
	c := cart.New()
	assert.True(t, decimal.Zero.Equal(c.Total()))
}

func TestRemoveItem_EliminaLineaCompleta(t *testing.T) {
	c := cart.New()
	require.True(t, c.AddItem(producto("p1", "Café", 500, 10)))
	require.True(t, c.AddItem(producto("p2", "Pan", 1000, 10)))

	c.RemoveItem("p1")
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductoID)

	// Quitar un producto que no está es inofensivo.
	c.RemoveItem("p9")
	assert.Equal(t, 1, c.Len())
}

func TestClear_VaciaElCarrito(t *testing.T) {
	c := cart.New()
	require.True(t, c.AddItem(producto("p1", "Café", 500, 10)))
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, decimal.Zero.Equal(c.Total()))
}

func TestLines_DevuelveCopiaOrdenada(t *testing.T) {
	c := cart.New()
	require.True(t, c.AddItem(producto("p2", "Pan", 1000, 10)))
	require.True(t, c.AddItem(producto("p1", "Café", 500, 10)))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p2", lines[0].ProductoID, "las líneas conservan el orden de inserción")
	assert.Equal(t, "p1", lines[1].ProductoID)

	// Mutar la copia no afecta el carrito.
	lines[0].Cantidad = 99
	assert.Equal(t, 1, c.Lines()[0].Cantidad)
}

func TestManager_CarritoPorUsuario(t *testing.T) {
	m := cart.NewManager()
	a := m.Get("user-a")
	b := m.Get("user-b")

	require.True(t, a.AddItem(producto("p1", "Café", 500, 10)))
	assert.True(t, b.IsEmpty(), "los carritos de sesiones distintas no se comparten")
	assert.Same(t, a, m.Get("user-a"), "la misma sesión recibe el mismo carrito")

	m.Discard("user-a")
	assert.True(t, m.Get("user-a").IsEmpty(), "tras descartar, la sesión arranca con carrito nuevo")
}
