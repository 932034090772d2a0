package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/viajenepal/tourism-core/internal/domain"
	"github.com/viajenepal/tourism-core/internal/domain/entity"
	"github.com/viajenepal/tourism-core/internal/domain/pricing"
	"github.com/viajenepal/tourism-core/internal/domain/repository"
	"github.com/viajenepal/tourism-core/pkg/logger"
)

// BookingLedger es el libro de reservas: creación con precio y descuento de
// festival, consultas por turista/guía y la máquina de estados del ciclo de
// vida. Las reservas nunca se eliminan, solo transicionan de estado.
type BookingLedger struct {
	bookings    repository.BookingRepository
	emergencies repository.EmergencyLog
	log         *logger.Logger
	now         func() time.Time
}

// LedgerOption configura el libro de reservas.
type LedgerOption func(*BookingLedger)

// WithClock reemplaza el reloj (para tests de precios dependientes de la
// fecha).
func WithClock(now func() time.Time) LedgerOption {
	return func(l *BookingLedger) { l.now = now }
}

// NewBookingLedger construye el caso de uso con sus puertos.
func NewBookingLedger(bookings repository.BookingRepository, emergencies repository.EmergencyLog,
	log *logger.Logger, opts ...LedgerOption) *BookingLedger {
	l := &BookingLedger{
		bookings:    bookings,
		emergencies: emergencies,
		log:         log,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CreateBookingInput datos de entrada para crear una reserva.
type CreateBookingInput struct {
	TouristUsername string
	GuideUsername   string
	AttractionID    string
	VisitDate       time.Time
	NumberOfPeople  int
	UnitFee         decimal.Decimal
	Notes           string
}

// Create calcula total = tarifa × personas, consulta al motor de precios el
// descuento de festival para "hoy" y persiste la reserva con identificador
// basado en tiempo y estado inicial CONFIRMED (regla de negocio heredada:
// las reservas nacen confirmadas, no pendientes).
func (l *BookingLedger) Create(in CreateBookingInput) (*entity.Booking, error) {
	if in.NumberOfPeople < 1 {
		in.NumberOfPeople = 1
	}

	today := dateOnly(l.now())
	if dateOnly(in.VisitDate).Before(today) {
		return nil, fmt.Errorf("visita %s: %w", in.VisitDate.Format("2006-01-02"), domain.ErrVisitBeforeBooking)
	}

	total := in.UnitFee.Mul(decimal.NewFromInt(int64(in.NumberOfPeople)))
	discount := pricing.DiscountFor(total, today)

	b := &entity.Booking{
		ID:              "BK" + strconv.FormatInt(l.now().UnixMilli(), 10),
		TouristUsername: in.TouristUsername,
		GuideUsername:   in.GuideUsername,
		AttractionID:    in.AttractionID,
		BookingDate:     today,
		VisitDate:       dateOnly(in.VisitDate),
		Status:          entity.BookingStatusConfirmed,
		TotalPrice:      total,
		Discount:        discount,
		Notes:           in.Notes,
		NumberOfPeople:  in.NumberOfPeople,
	}
	if err := l.bookings.Append(b); err != nil {
		return nil, err
	}
	l.log.Info().
		Str("booking_id", b.ID).
		Str("tourist", b.TouristUsername).
		Str("total", b.TotalPrice.String()).
		Str("discount", b.Discount.String()).
		Msg("reserva creada")
	return b, nil
}

// ByTourist devuelve las reservas de un turista (filtro lineal).
func (l *BookingLedger) ByTourist(touristUsername string) ([]*entity.Booking, error) {
	return l.filter(func(b *entity.Booking) bool { return b.TouristUsername == touristUsername })
}

// ByGuide devuelve las reservas asignadas a un guía.
func (l *BookingLedger) ByGuide(guideUsername string) ([]*entity.Booking, error) {
	return l.filter(func(b *entity.Booking) bool { return b.GuideUsername == guideUsername })
}

// Upcoming devuelve las reservas con fecha de visita posterior a hoy.
func (l *BookingLedger) Upcoming() ([]*entity.Booking, error) {
	today := dateOnly(l.now())
	return l.filter(func(b *entity.Booking) bool { return dateOnly(b.VisitDate).After(today) })
}

func (l *BookingLedger) filter(keep func(*entity.Booking) bool) ([]*entity.Booking, error) {
	all, err := l.bookings.LoadAll()
	if err != nil {
		return nil, err
	}
	var out []*entity.Booking
	for _, b := range all {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

// LoadAll devuelve el libro completo en orden de archivo.
func (l *BookingLedger) LoadAll() ([]*entity.Booking, error) {
	return l.bookings.LoadAll()
}

// UpdateStatus escribe el estado indicado sin validar la transición (es una
// escritura de estado, no una transición validada): aplicarla dos veces con
// el mismo estado es idempotente. domain.ErrNotFound si el ID no existe.
func (l *BookingLedger) UpdateStatus(id string, status entity.BookingStatus) (*entity.Booking, error) {
	return l.bookings.UpdateStatus(id, status)
}

// Cancel cancela la reserva. La guarda de estado terminal vive aquí, en el
// llamador: el almacén acepta cualquier escritura.
func (l *BookingLedger) Cancel(id string) (*entity.Booking, error) {
	return l.transition(id, entity.BookingStatusCancelled)
}

// Complete marca la reserva como completada, con la misma guarda terminal.
func (l *BookingLedger) Complete(id string) (*entity.Booking, error) {
	return l.transition(id, entity.BookingStatusCompleted)
}

func (l *BookingLedger) transition(id string, next entity.BookingStatus) (*entity.Booking, error) {
	current, err := l.bookings.FindByID(id)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() {
		return nil, fmt.Errorf("reserva %s en estado %s: %w", id, current.Status, domain.ErrTerminalStatus)
	}
	return l.bookings.UpdateStatus(id, next)
}

// ReportEmergencyInput datos de un reporte de emergencia.
type ReportEmergencyInput struct {
	UserID      string
	UserName    string
	Kind        string
	Location    string
	Description string
	Contact     string
	BookingID   string
	Critical    bool
}

// ReportEmergency agrega el reporte al log de emergencias y, si referencia
// una reserva, la marca como reportada y la pasa a estado EMERGENCY.
func (l *BookingLedger) ReportEmergency(in ReportEmergencyInput) (*entity.EmergencyReport, error) {
	severity := entity.EmergencySeverityNormal
	if in.Critical {
		severity = entity.EmergencySeverityCritical
	}
	report := &entity.EmergencyReport{
		ID:          "EMG-" + uuid.NewString(),
		UserID:      in.UserID,
		UserName:    in.UserName,
		Kind:        in.Kind,
		Location:    in.Location,
		Description: in.Description,
		Contact:     in.Contact,
		BookingID:   in.BookingID,
		Severity:    severity,
		ReportedOn:  dateOnly(l.now()),
	}

	if in.BookingID != "" {
		b, err := l.bookings.FindByID(in.BookingID)
		if err != nil {
			return nil, err
		}
		b.EmergencyReported = true
		b.Status = entity.BookingStatusEmergency
		if err := l.bookings.Update(b); err != nil {
			return nil, err
		}
	}

	if err := l.emergencies.Append(report); err != nil {
		return nil, err
	}
	l.log.Warn().
		Str("report_id", report.ID).
		Str("booking_id", in.BookingID).
		Str("severity", severity).
		Msg("emergencia reportada")
	return report, nil
}

// dateOnly trunca a medianoche UTC: las fechas del dominio son solo día.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
