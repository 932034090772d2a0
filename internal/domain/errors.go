package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("registro no encontrado")
	ErrDuplicateUsername  = errors.New("el nombre de usuario ya está registrado")
	ErrSelfDelete         = errors.New("un usuario no puede eliminar su propia cuenta")
	ErrDecode             = errors.New("registro mal formado")
	ErrUnknownUserType    = errors.New("tipo de usuario desconocido")
	ErrInvalidStatus      = errors.New("estado de reserva desconocido")
	ErrTerminalStatus     = errors.New("la reserva está en un estado terminal")
	ErrVisitBeforeBooking = errors.New("la fecha de visita es anterior a la fecha de reserva")
)
