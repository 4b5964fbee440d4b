package eventbus

import (
	evbus "github.com/asaskevich/EventBus"
)

// Tópicos publicados por el núcleo de checkout y notificaciones.
// La capa de presentación se suscribe para refrescar catálogo y badges
// en lugar de depender de estado global (callback a nivel de ventana
// en la versión original).
const (
	TopicCatalogRefresh       = "catalogo.refresh"
	TopicNotificationsRefresh = "notificaciones.refresh"
)

// Bus wrapper sobre EventBus para inyección y para fijar los tópicos del dominio.
type Bus struct {
	bus evbus.Bus
}

// New crea un bus de eventos en memoria.
func New() *Bus {
	return &Bus{bus: evbus.New()}
}

// PublishCatalogRefresh avisa que el catálogo de productos cambió (stock descontado).
func (b *Bus) PublishCatalogRefresh() {
	b.bus.Publish(TopicCatalogRefresh)
}

// PublishNotificationsRefresh avisa que hay notificaciones nuevas (globales o de usuario).
func (b *Bus) PublishNotificationsRefresh() {
	b.bus.Publish(TopicNotificationsRefresh)
}

// SubscribeCatalogRefresh registra un callback para cambios de catálogo.
func (b *Bus) SubscribeCatalogRefresh(fn func()) error {
	return b.bus.Subscribe(TopicCatalogRefresh, fn)
}

// SubscribeNotificationsRefresh registra un callback para cambios de notificaciones.
func (b *Bus) SubscribeNotificationsRefresh(fn func()) error {
	return b.bus.Subscribe(TopicNotificationsRefresh, fn)
}

// Unsubscribe quita un callback de un tópico.
func (b *Bus) Unsubscribe(topic string, fn func()) error {
	return b.bus.Unsubscribe(topic, fn)
}

// WaitAsync espera a que terminen los callbacks asíncronos (útil en shutdown y tests).
func (b *Bus) WaitAsync() {
	b.bus.WaitAsync()
}
