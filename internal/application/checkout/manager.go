package checkout

import (
	"sync"

	"github.com/nicolasct/ventapos-api/internal/application/cart"
)

// Manager mantiene la sesión de checkout de cada usuario. Las sesiones
// terminadas (Done o Failed) se reemplazan por una nueva desde Idle.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager crea el registro de sesiones de checkout.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// GetOrCreate devuelve la sesión activa del usuario, o crea una nueva en
// Idle sobre el carrito dado si no hay sesión o la anterior ya terminó.
func (m *Manager) GetOrCreate(userID string, c *cart.Cart) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok && !s.State().IsTerminal() {
		return s
	}
	s := NewSession(userID, c)
	m.sessions[userID] = s
	return s
}

// Current devuelve la sesión del usuario, o nil si no existe.
func (m *Manager) Current(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[userID]
}

// Discard descarta la sesión del usuario.
func (m *Manager) Discard(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
