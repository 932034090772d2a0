package flatfile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/viajenepal/tourism-core/internal/domain"
	"github.com/viajenepal/tourism-core/internal/domain/entity"
)

// bookings.txt:
//
//	id,touristUsername,guideUsername,attractionId,bookingDate,trekDate,status,
//	totalPrice,discount,notes,emergencyReported,numberOfPeople
//
// Fechas en ISO-8601 (solo día). Los dos campos finales son tolerados como
// ausentes en registros antiguos.
const (
	bookingDateLayout = "2006-01-02"
	bookingMinFields  = 10
)

// BookingCodec serializa reservas.
//
// Las notas pueden contener el delimitador primario, así que se sustituye
// `,` por `;` al codificar y se restaura al decodificar. Es una sustitución
// con pérdida, no un escape: una nota que contenga `;` literal se decodifica
// mal. Limitación documentada del formato heredado; no debe "arreglarse" en
// silencio porque cambiaría la lectura de archivos existentes.
type BookingCodec struct{}

var _ Codec[*entity.Booking] = BookingCodec{}

func (BookingCodec) Encode(b *entity.Booking) string {
	return strings.Join([]string{
		b.ID,
		b.TouristUsername,
		b.GuideUsername,
		b.AttractionID,
		b.BookingDate.Format(bookingDateLayout),
		b.VisitDate.Format(bookingDateLayout),
		string(b.Status),
		b.TotalPrice.String(),
		b.Discount.String(),
		strings.ReplaceAll(b.Notes, ",", ";"),
		strconv.FormatBool(b.EmergencyReported),
		strconv.Itoa(b.NumberOfPeople),
	}, ",")
}

func (BookingCodec) Decode(line string) (*entity.Booking, error) {
	parts := strings.Split(line, ",")
	if len(parts) < bookingMinFields {
		return nil, fmt.Errorf("reserva con %d campos (mínimo %d): %w", len(parts), bookingMinFields, domain.ErrDecode)
	}

	bookingDate, err := time.Parse(bookingDateLayout, parts[4])
	if err != nil {
		return nil, fmt.Errorf("fecha de reserva %q: %w", parts[4], domain.ErrDecode)
	}
	visitDate, err := time.Parse(bookingDateLayout, parts[5])
	if err != nil {
		return nil, fmt.Errorf("fecha de visita %q: %w", parts[5], domain.ErrDecode)
	}
	status, err := entity.ParseBookingStatus(parts[6])
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrDecode)
	}
	total, err := decimal.NewFromString(parts[7])
	if err != nil {
		return nil, fmt.Errorf("precio total %q: %w", parts[7], domain.ErrDecode)
	}
	discount, err := decimal.NewFromString(parts[8])
	if err != nil {
		return nil, fmt.Errorf("descuento %q: %w", parts[8], domain.ErrDecode)
	}

	b := &entity.Booking{
		ID:              parts[0],
		TouristUsername: parts[1],
		GuideUsername:   parts[2],
		AttractionID:    parts[3],
		BookingDate:     bookingDate,
		VisitDate:       visitDate,
		Status:          status,
		TotalPrice:      total,
		Discount:        discount,
		Notes:           strings.ReplaceAll(parts[9], ";", ","),
		NumberOfPeople:  1,
	}

	// Cola tolerante: registros antiguos pueden no traer estos campos.
	if len(parts) > 10 {
		b.EmergencyReported, _ = strconv.ParseBool(parts[10])
	}
	if len(parts) > 11 {
		if n, err := strconv.Atoi(parts[11]); err == nil {
			b.NumberOfPeople = n
		}
	}
	return b, nil
}
