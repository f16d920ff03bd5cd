package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrValidation         = errors.New("todos los campos del formulario son obligatorios")
	ErrRemoteRequest      = errors.New("la petición al catálogo falló")
	ErrMalformedLocalData = errors.New("datos locales corruptos")
	ErrRequestInFlight    = errors.New("ya hay una petición en curso")
	ErrUnknownField       = errors.New("campo de formulario desconocido")
	ErrUnknownVariant     = errors.New("variante de formulario desconocida")
)
