package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una reserva.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusEmergency BookingStatus = "EMERGENCY"
)

// ParseBookingStatus valida un estado recibido como texto.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch st := BookingStatus(s); st {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted,
		BookingStatusCancelled, BookingStatusEmergency:
		return st, nil
	}
	return "", fmt.Errorf("estado %q no reconocido", s)
}

// Terminal indica si el estado no admite más transiciones.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// transiciones permitidas por la lógica de aplicación. El almacén en sí
// acepta cualquier escritura de estado; esta tabla es para los llamadores.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled, BookingStatusEmergency},
	BookingStatusEmergency: {BookingStatusCompleted, BookingStatusCancelled},
}

// CanTransitionTo informa si la transición s → next está permitida.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Booking es una reserva de visita a una atracción. Referencia al turista,
// al guía y a la atracción por identificador (nunca por puntero): la
// relación se resuelve por búsqueda.
type Booking struct {
	ID                string
	TouristUsername   string
	GuideUsername     string
	AttractionID      string
	BookingDate       time.Time
	VisitDate         time.Time
	Status            BookingStatus
	TotalPrice        decimal.Decimal
	Discount          decimal.Decimal
	Notes             string
	EmergencyReported bool
	NumberOfPeople    int
}

// FinalPrice es el precio total menos el descuento aplicado.
func (b *Booking) FinalPrice() decimal.Decimal {
	return b.TotalPrice.Sub(b.Discount)
}
