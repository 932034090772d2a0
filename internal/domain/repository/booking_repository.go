package repository

import "github.com/viajenepal/tourism-core/internal/domain/entity"

// BookingRepository define el puerto de persistencia para Booking. Las
// reservas nunca se borran físicamente: solo cambian de estado.
type BookingRepository interface {
	LoadAll() ([]*entity.Booking, error)
	Append(b *entity.Booking) error
	Update(b *entity.Booking) error
	// UpdateStatus escribe el estado sin validar transiciones (el almacén
	// acepta cualquier escritura); domain.ErrNotFound si el ID no existe.
	UpdateStatus(id string, status entity.BookingStatus) (*entity.Booking, error)
	FindByID(id string) (*entity.Booking, error)
}

// EmergencyLog es el puerto del log de emergencias, de solo-append.
type EmergencyLog interface {
	Append(report *entity.EmergencyReport) error
}
