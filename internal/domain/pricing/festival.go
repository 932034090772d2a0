// Package pricing calcula descuentos estacionales por festival. Es una tabla
// fija de ventanas recurrentes (mes + rango de días, sin año) con una
// fracción de descuento; funciones puras, sin I/O ni estado oculto.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Festival es una ventana recurrente con su fracción de descuento.
type Festival struct {
	Name     string
	Month    time.Month
	StartDay int
	EndDay   int
	Fraction decimal.Decimal
}

// Tabla de festivales. Es un slice y no un map: el orden de evaluación es
// determinista (orden de declaración). Las ventanas no se solapan.
var festivals = []Festival{
	{Name: "Dashain", Month: time.October, StartDay: 1, EndDay: 15, Fraction: decimal.NewFromFloat(0.20)},
	{Name: "Tihar", Month: time.November, StartDay: 1, EndDay: 5, Fraction: decimal.NewFromFloat(0.15)},
	{Name: "Holi", Month: time.March, StartDay: 15, EndDay: 16, Fraction: decimal.NewFromFloat(0.10)},
	{Name: "Buddha Jayanti", Month: time.May, StartDay: 15, EndDay: 16, Fraction: decimal.NewFromFloat(0.12)},
	{Name: "Gahwa Punhi", Month: time.August, StartDay: 15, EndDay: 16, Fraction: decimal.NewFromFloat(0.08)},
	{Name: "Maghe Sankranti", Month: time.January, StartDay: 14, EndDay: 15, Fraction: decimal.NewFromFloat(0.10)},
}

// DiscountFor devuelve el descuento para un monto en una fecha dada: la
// fracción de la primera ventana que contiene el mes/día de la fecha, o
// cero si ninguna aplica.
func DiscountFor(amount decimal.Decimal, on time.Time) decimal.Decimal {
	for _, f := range festivals {
		if f.contains(on) {
			return amount.Mul(f.Fraction)
		}
	}
	return decimal.Zero
}

// CurrentFestival expone la misma búsqueda para presentación: el nombre del
// festival activo en la fecha, si existe.
func CurrentFestival(on time.Time) (string, bool) {
	for _, f := range festivals {
		if f.contains(on) {
			return f.Name, true
		}
	}
	return "", false
}

// contains compara solo mes y día; los límites son inclusivos.
func (f Festival) contains(on time.Time) bool {
	return on.Month() == f.Month && on.Day() >= f.StartDay && on.Day() <= f.EndDay
}
