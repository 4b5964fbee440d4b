package cart

import "sync"

// Manager mantiene el carrito de cada sesión autenticada.
// El mutex protege solo el mapa: cada carrito pertenece a una única sesión
// y nunca se comparte entre sesiones ni entre procesos.
type Manager struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewManager crea el registro de carritos.
func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// Get devuelve el carrito de la sesión, creándolo vacío si no existe.
func (m *Manager) Get(userID string) *Cart {
	m.mu.RLock()
	c, ok := m.carts[userID]
	m.mu.RUnlock()
	if ok {
		return c
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.carts[userID]; ok {
		return c
	}
	c = New()
	m.carts[userID] = c
	return c
}

// Discard descarta el carrito de la sesión (navegación fuera de la vista).
func (m *Manager) Discard(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
}
