package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrStoreUnavailable y ErrEstimatorUnavailable permiten al caller distinguir
// "cero alertas" (éxito con lista vacía) de "la consulta falló".
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrStoreUnavailable     = errors.New("almacén de inventario no disponible")
	ErrEstimatorUnavailable = errors.New("estimador de ventas no disponible")
)
