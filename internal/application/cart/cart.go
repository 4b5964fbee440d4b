package cart

import (
	"github.com/shopspring/decimal"

	"github.com/nicolasct/ventapos-api/internal/domain/entity"
)

// Line línea del carrito: snapshot del producto al momento de agregar
// (nombre, precio, stock conocido) más la cantidad elegida.
// Invariante: 1 <= Cantidad <= Stock.
type Line struct {
	ProductoID string
	Nombre     string
	Precio     decimal.Decimal
	Stock      int // techo de stock conocido al agregar
	Cantidad   int
}

// Subtotal devuelve precio × cantidad de la línea.
func (l Line) Subtotal() decimal.Decimal {
	return l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// Cart carrito de una sesión: colección ordenada de líneas, una por producto.
// Estado efímero y privado de la sesión: no se persiste ni se comparte.
type Cart struct {
	lines []Line
}

// New crea un carrito vacío.
func New() *Cart {
	return &Cart{}
}

// AddItem agrega el producto con cantidad 1, o incrementa la línea existente.
// El incremento se rechaza (no-op, devuelve false) si superaría el stock
// conocido; la UI lo refleja deshabilitando el botón de agregar.
func (c *Cart) AddItem(p *entity.Product) bool {
	for i := range c.lines {
		if c.lines[i].ProductoID == p.ID {
			if c.lines[i].Cantidad+1 > c.lines[i].Stock {
				return false
			}
			c.lines[i].Cantidad++
			return true
		}
	}
	if p.Stock < 1 {
		return false
	}
	c.lines = append(c.lines, Line{
		ProductoID: p.ID,
		Nombre:     p.Nombre,
		Precio:     p.Precio,
		Stock:      p.Stock,
		Cantidad:   1,
	})
	return true
}

// RemoveItem elimina la línea del producto, exista o no.
func (c *Cart) RemoveItem(productoID string) {
	for i := range c.lines {
		if c.lines[i].ProductoID == productoID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity reemplaza la cantidad de la línea. Rechazada (no-op, false)
// si la línea no existe, la cantidad es menor a 1 o supera el stock conocido.
func (c *Cart) SetQuantity(productoID string, cantidad int) bool {
	for i := range c.lines {
		if c.lines[i].ProductoID == productoID {
			if cantidad < 1 || cantidad > c.lines[i].Stock {
				return false
			}
			c.lines[i].Cantidad = cantidad
			return true
		}
	}
	return false
}

// Total suma precio × cantidad sobre todas las líneas. Función pura del estado.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Clear vacía el carrito. Se invoca solo tras una compra exitosa
// o por acción explícita del usuario.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len devuelve la cantidad de líneas (productos distintos).
func (c *Cart) Len() int {
	return len(c.lines)
}
