package usecase_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viajenepal/tourism-core/internal/application/usecase"
	"github.com/viajenepal/tourism-core/internal/domain"
	"github.com/viajenepal/tourism-core/internal/domain/entity"
	"github.com/viajenepal/tourism-core/internal/infrastructure/flatfile"
	"github.com/viajenepal/tourism-core/pkg/logger"
)

// fixedClock congela "hoy" para que los descuentos de festival y las
// validaciones de fecha sean deterministas. Avanza un milisegundo por
// lectura para que los IDs basados en tiempo no colisionen dentro de un
// mismo test.
func fixedClock(year int, month time.Month, day int) func() time.Time {
	base := time.Date(year, month, day, 10, 30, 0, 0, time.UTC)
	var reads int
	return func() time.Time {
		reads++
		return base.Add(time.Duration(reads) * time.Millisecond)
	}
}

func newLedger(t *testing.T, opts ...usecase.LedgerOption) (*usecase.BookingLedger, string) {
	t.Helper()
	dir := t.TempDir()
	bookings := flatfile.NewBookingRepository(filepath.Join(dir, "bookings.txt"), logger.Nop())
	emergencies := flatfile.NewEmergencyLog(filepath.Join(dir, "emergencies.txt"))
	return usecase.NewBookingLedger(bookings, emergencies, logger.Nop(), opts...), dir
}

func createBooking(t *testing.T, l *usecase.BookingLedger, tourist string, visit time.Time) *entity.Booking {
	t.Helper()
	b, err := l.Create(usecase.CreateBookingInput{
		TouristUsername: tourist,
		GuideUsername:   "pemba",
		AttractionID:    "ATT001",
		VisitDate:       visit,
		NumberOfPeople:  2,
		UnitFee:         decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	return b
}

func TestBookingLedger_CreateFueraDeFestival(t *testing.T) {
	l, _ := newLedger(t, usecase.WithClock(fixedClock(2025, time.June, 10)))

	b := createBooking(t, l, "tourist1", time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC))

	assert.True(t, b.TotalPrice.Equal(decimal.NewFromInt(10000)), "total = tarifa × personas")
	assert.True(t, b.Discount.IsZero(), "sin festival no hay descuento")
	assert.True(t, b.FinalPrice().Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, entity.BookingStatusConfirmed, b.Status, "las reservas nacen confirmadas")
	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), b.BookingDate)
	assert.Regexp(t, `^BK\d+$`, b.ID)
}

func TestBookingLedger_CreateDuranteDashain(t *testing.T) {
	l, _ := newLedger(t, usecase.WithClock(fixedClock(2025, time.October, 5)))

	b := createBooking(t, l, "tourist1", time.Date(2025, time.October, 12, 0, 0, 0, 0, time.UTC))

	assert.True(t, b.TotalPrice.Equal(decimal.NewFromInt(10000)))
	assert.True(t, b.Discount.Equal(decimal.NewFromInt(2000)), "Dashain aplica 20 por ciento sobre el total")
	assert.True(t, b.FinalPrice().Equal(decimal.NewFromInt(8000)))
}

func TestBookingLedger_CreateVisitaEnElPasado(t *testing.T) {
	l, _ := newLedger(t, usecase.WithClock(fixedClock(2025, time.June, 10)))

	_, err := l.Create(usecase.CreateBookingInput{
		TouristUsername: "tourist1",
		AttractionID:    "ATT001",
		VisitDate:       time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC),
		NumberOfPeople:  1,
		UnitFee:         decimal.NewFromInt(5000),
	})
	assert.ErrorIs(t, err, domain.ErrVisitBeforeBooking)
}

func TestBookingLedger_CreateVisitaMismoDia(t *testing.T) {
	l, _ := newLedger(t, usecase.WithClock(fixedClock(2025, time.June, 10)))

	b := createBooking(t, l, "tourist1", time.Date(2025, time.June, 10, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), b.VisitDate,
		"visitar el mismo día es válido y la hora se trunca")
}

func TestBookingLedger_PersonasMinimoUno(t *testing.T) {
	l, _ := newLedger(t, usecase.WithClock(fixedClock(2025, time.June, 10)))

	b, err := l.Create(usecase.CreateBookingInput{
		TouristUsername: "tourist1",
		AttractionID:    "ATT001",
		VisitDate:       time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
		NumberOfPeople:  0,
		UnitFee:         decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, b.NumberOfPeople)
	assert.True(t, b.TotalPrice.Equal(decimal.NewFromInt(5000)))
}

func TestBookingLedger_ConsultasPorTuristaYGuia(t *testing.T) {
	l, _ := newLedger(t, usecase.WithClock(fixedClock(2025, time.June, 10)))
	visit := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)

	createBooking(t, l, "tourist1", visit)
	createBooking(t, l, "tourist2", visit)
	createBooking(t, l, "tourist1", visit)

	mine, err := l.ByTourist("tourist1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	guided, err := l.ByGuide("pemba")
	require.NoError(t, err)
	assert.Len(t, guided, 3)

	none, err := l.ByGuide("nadie")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBookingLedger_Upcoming(t *testing.T) {
	l, _ := newLedger(t, usecase.WithClock(fixedClock(2025, time.June, 10)))

	past := createBooking(t, l, "tourist1", time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	future := createBooking(t, l, "tourist1", time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))

	up, err := l.Upcoming()
	require.NoError(t, err)
	require.Len(t, up, 1, "hoy mismo no cuenta como próxima")
	assert.Equal(t, future.ID, up[0].ID)
	assert.NotEqual(t, past.ID, up[0].ID)
}

func TestBookingLedger_UpdateStatusEsIdempotente(t *testing.T) {
	l, _ := newLedger(t, usecase.WithClock(fixedClock(2025, time.June, 10)))
	b := createBooking(t, l, "tourist1", time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC))

	first, err := l.UpdateStatus(b.ID, entity.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, first.Status)

	// Repetir la misma escritura no es un error: es una escritura de
	// estado, no una transición validada.
	second, err := l.UpdateStatus(b.ID, entity.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, second.Status)
}

func TestBookingLedger_UpdateStatusInexistente(t *testing.T) {
	l, _ := newLedger(t, usecase.WithClock(fixedClock(2025, time.June, 10)))

	_, err := l.UpdateStatus("BK000", entity.BookingStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingLedger_CancelYComplete(t *testing.T) {
	l, _ := newLedger(t, usecase.WithClock(fixedClock(2025, time.June, 10)))
	visit := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)

	a := createBooking(t, l, "tourist1", visit)
	done, err := l.Complete(a.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, done.Status)

	// Un estado terminal rechaza cualquier transición posterior.
	_, err = l.Cancel(a.ID)
	assert.ErrorIs(t, err, domain.ErrTerminalStatus)

	b := createBooking(t, l, "tourist1", visit)
	cancelled, err := l.Cancel(b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)

	_, err = l.Complete(b.ID)
	assert.ErrorIs(t, err, domain.ErrTerminalStatus)
}

func TestBookingLedger_ReportEmergency(t *testing.T) {
	l, dir := newLedger(t, usecase.WithClock(fixedClock(2025, time.June, 10)))
	b := createBooking(t, l, "tourist1", time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC))

	report, err := l.ReportEmergency(usecase.ReportEmergencyInput{
		UserID:      "TOU010",
		UserName:    "Maya Sherpa",
		Kind:        "MEDICAL",
		Location:    "Namche Bazaar",
		Description: "mal de altura",
		Contact:     "9841000000",
		BookingID:   b.ID,
		Critical:    true,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^EMG-`, report.ID)
	assert.Equal(t, entity.EmergencySeverityCritical, report.Severity)

	// La reserva referenciada queda marcada y en estado EMERGENCY.
	all, err := l.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].EmergencyReported)
	assert.Equal(t, entity.BookingStatusEmergency, all[0].Status)

	// El reporte se agrega al log separado por pipes.
	raw, err := os.ReadFile(filepath.Join(dir, "emergencies.txt"))
	require.NoError(t, err)
	line := string(raw)
	assert.Contains(t, line, report.ID)
	assert.Contains(t, line, "|MEDICAL|")
	assert.Contains(t, line, "|CRITICAL|")
}

func TestBookingLedger_ReportEmergencySinReserva(t *testing.T) {
	l, dir := newLedger(t, usecase.WithClock(fixedClock(2025, time.June, 10)))

	report, err := l.ReportEmergency(usecase.ReportEmergencyInput{
		UserID:      "TOU010",
		UserName:    "Maya Sherpa",
		Kind:        "LOST",
		Location:    "Thamel",
		Description: "pasaporte extraviado",
		Contact:     "9841000000",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EmergencySeverityNormal, report.Severity)

	raw, err := os.ReadFile(filepath.Join(dir, "emergencies.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), report.ID)
}

func TestBookingLedger_ReportEmergencyReservaInexistente(t *testing.T) {
	l, _ := newLedger(t, usecase.WithClock(fixedClock(2025, time.June, 10)))

	_, err := l.ReportEmergency(usecase.ReportEmergencyInput{
		UserID:    "TOU010",
		BookingID: "BK999",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
