// Package eventbus adapta github.com/asaskevich/EventBus al puerto ports.EventPublisher.
package eventbus

import (
	"fmt"
	"sync"

	evbus "github.com/asaskevich/EventBus"

	"github.com/jhoicas/grinder-parts-api/internal/application/ports"
)

var _ ports.EventPublisher = (*Bus)(nil)

type subscription struct {
	id uint64
	fn func(any)
}

// Bus registra en EventBus un único despachador por tópico y mantiene su propia lista
// de suscriptores. EventBus identifica handlers por puntero de función, y todos los
// closures de un mismo literal comparten ese puntero: Unsubscribe podría quitar al
// suscriptor equivocado.
type Bus struct {
	bus evbus.Bus

	regMu      sync.Mutex
	registered map[string]bool

	mu     sync.RWMutex
	nextID uint64
	subs   map[string][]subscription
}

// New construye un bus síncrono vacío.
func New() *Bus {
	return &Bus{
		bus:        evbus.New(),
		registered: make(map[string]bool),
		subs:       make(map[string][]subscription),
	}
}

// Publish entrega payload a los suscriptores del tópico en orden de suscripción.
func (b *Bus) Publish(topic string, payload any) {
	b.bus.Publish(topic, payload)
}

// Subscribe registra fn en el tópico. La función devuelta es idempotente.
// No llamar Publish desde un suscriptor: EventBus mantiene su lock durante la entrega.
func (b *Bus) Subscribe(topic string, fn func(any)) (func(), error) {
	if fn == nil {
		return nil, fmt.Errorf("eventbus: handler nil para %q", topic)
	}

	// regMu y no mu: Publish retiene el lock de EventBus y el despachador toma mu.
	b.regMu.Lock()
	if !b.registered[topic] {
		if err := b.bus.Subscribe(topic, b.dispatcher(topic)); err != nil {
			b.regMu.Unlock()
			return nil, fmt.Errorf("eventbus: suscribir %q: %w", topic, err)
		}
		b.registered[topic] = true
	}
	b.regMu.Unlock()

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(topic, id) })
	}, nil
}

// Subscribers devuelve cuántos suscriptores tiene el tópico.
func (b *Bus) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}

func (b *Bus) dispatcher(topic string) func(any) {
	return func(payload any) {
		// copia bajo lock: un suscriptor puede darse de baja dentro del callback
		b.mu.RLock()
		current := append([]subscription(nil), b.subs[topic]...)
		b.mu.RUnlock()
		for _, s := range current {
			s.fn(payload)
		}
	}
}

func (b *Bus) remove(topic string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.subs[topic]
	for i, s := range list {
		if s.id == id {
			b.subs[topic] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}
