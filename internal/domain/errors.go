package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los stores no los devuelven: la ausencia se comunica con nil/false.
// Los usan la capa HTTP y los casos de uso auxiliares (exportación).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthenticated      = errors.New("sesión no iniciada")
	ErrAlreadyAuthenticated = errors.New("ya existe una sesión activa")
	ErrUnsupportedFormat    = errors.New("formato de exportación no soportado")
)
