package flatfile

import (
	"fmt"

	"github.com/viajenepal/tourism-core/internal/domain"
	"github.com/viajenepal/tourism-core/internal/domain/entity"
	"github.com/viajenepal/tourism-core/internal/domain/repository"
	"github.com/viajenepal/tourism-core/pkg/logger"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación del puerto BookingRepository sobre
// bookings.txt.
type BookingRepo struct {
	store *Store[*entity.Booking]
}

// NewBookingRepository construye el adaptador de persistencia para reservas.
func NewBookingRepository(path string, log *logger.Logger) *BookingRepo {
	return &BookingRepo{store: NewStore[*entity.Booking](path, BookingCodec{}, log)}
}

// LoadAll devuelve todas las reservas en orden de archivo.
func (r *BookingRepo) LoadAll() ([]*entity.Booking, error) {
	return r.store.LoadAll()
}

// Append persiste una nueva reserva.
func (r *BookingRepo) Append(b *entity.Booking) error {
	return r.store.AppendOne(b)
}

// Update reemplaza el registro con el mismo ID.
func (r *BookingRepo) Update(b *entity.Booking) error {
	return r.store.UpdateOne(b, func(x *entity.Booking) string { return x.ID })
}

// UpdateStatus escribe el estado de la reserva y reescribe el archivo
// completo. No valida transiciones: ese control es de la capa de
// aplicación. Es una reescritura total por cambio de estado, techo de
// escalabilidad conocido y aceptable a este volumen de datos.
func (r *BookingRepo) UpdateStatus(id string, status entity.BookingStatus) (*entity.Booking, error) {
	var updated *entity.Booking
	err := r.store.Mutate(func(all []*entity.Booking) ([]*entity.Booking, error) {
		for _, b := range all {
			if b.ID == id {
				b.Status = status
				updated = b
				return all, nil
			}
		}
		return nil, fmt.Errorf("reserva %q: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// FindByID devuelve la reserva con ese ID o domain.ErrNotFound.
func (r *BookingRepo) FindByID(id string) (*entity.Booking, error) {
	all, err := r.store.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, b := range all {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("reserva %q: %w", id, domain.ErrNotFound)
}
