package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrStorageUnavailable = errors.New("almacenamiento de sesión no disponible")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrNetwork            = errors.New("error de red")
	ErrMalformedResponse  = errors.New("respuesta del backend malformada")
	ErrParse              = errors.New("payload escaneado inválido")
	ErrWarehouseNotFound  = errors.New("bodega no encontrada")
	ErrIllegalOperation   = errors.New("operación no permitida")
	ErrValidation         = errors.New("entrada inválida")
)

// RejectedError respuesta no exitosa del backend (estado HTTP fuera de 2xx
// que no es un problema de autorización).
type RejectedError struct {
	StatusCode int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("rechazado por el backend (HTTP %d)", e.StatusCode)
}

// IsRejected devuelve el código de estado si err envuelve un RejectedError.
func IsRejected(err error) (int, bool) {
	var re *RejectedError
	if errors.As(err, &re) {
		return re.StatusCode, true
	}
	return 0, false
}
