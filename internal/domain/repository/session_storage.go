package repository

import "context"

// Claves del almacenamiento durable de la sesión.
const (
	SessionKeyCurrentUser = "currentUser"
	SessionKeyToken       = "token"
)

// SessionStorage almacenamiento clave-valor durable para rehidratar la sesión.
// Get devuelve ok=false si la clave no existe. Remove sobre una clave ausente no es error.
type SessionStorage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
