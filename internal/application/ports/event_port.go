package ports

// Tópicos publicados por los stores.
const (
	TopicPartsSnapshot = "parts:snapshot" // payload: []entity.Part
	TopicSessionUser   = "session:user"   // payload: *entity.User (nil al cerrar sesión)
)

// EventPublisher define el puerto de difusión de snapshots hacia observadores.
// Publish es síncrono: vuelve cuando todos los suscriptores terminaron.
// Siguiendo DIP, los stores solo conocen este contrato, no el bus concreto.
type EventPublisher interface {
	Publish(topic string, payload any)
	// Subscribe registra fn en el tópico y devuelve la función para darla de baja.
	Subscribe(topic string, fn func(payload any)) (unsubscribe func(), err error)
}
