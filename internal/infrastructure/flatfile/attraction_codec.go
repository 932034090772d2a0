package flatfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/viajenepal/tourism-core/internal/domain"
	"github.com/viajenepal/tourism-core/internal/domain/entity"
)

// attractions.txt:
//
//	id,name,nameLocal,location,description,descriptionLocal,category,entryFee,
//	imageUrl,rating,isActive[,district,province,latitude,longitude]
//
// El sufijo entre corchetes es opcional: los archivos del formato antiguo
// tienen solo 11 campos y deben seguir cargando.
const (
	attractionMinFields  = 11
	attractionFullFields = 15
)

// Valores de reconstrucción cuando los campos numéricos de una línea
// antigua no parsean: mejor una atracción con defaults razonables que
// perder el registro.
var (
	attractionDefaultFee    = decimal.NewFromInt(1000)
	attractionDefaultRating = 4.5
)

// AttractionCodec serializa atracciones con tolerancia al formato antiguo.
//
// La cadena de ubicación combinada se compone como "Distrito, Provincia",
// así que contiene el delimitador primario: se persiste con la misma
// sustitución `,`→`;` que las notas de reserva y se restaura al leer. El
// escritor heredado la emitía con la coma cruda y esas líneas quedaban
// indecodificables; aquí el viaje de ida y vuelta debe ser exacto.
type AttractionCodec struct{}

var _ Codec[*entity.Attraction] = AttractionCodec{}

func (AttractionCodec) Encode(a *entity.Attraction) string {
	return strings.Join([]string{
		a.ID,
		a.Name,
		a.NameLocal,
		strings.ReplaceAll(a.Location(), ",", ";"),
		a.Description,
		a.DescriptionLocal,
		string(a.Category),
		a.EntryFee.String(),
		a.ImageURL,
		formatFloat(a.Rating),
		strconv.FormatBool(a.Active),
		a.District(),
		a.Province(),
		formatFloat(a.Latitude),
		formatFloat(a.Longitude),
	}, ",")
}

func (AttractionCodec) Decode(line string) (*entity.Attraction, error) {
	parts := strings.Split(line, ",")
	if len(parts) < attractionMinFields {
		return nil, fmt.Errorf("atracción con %d campos (mínimo %d): %w", len(parts), attractionMinFields, domain.ErrDecode)
	}

	fee, feeErr := decimal.NewFromString(parts[7])
	rating, ratingErr := strconv.ParseFloat(parts[9], 64)
	active, activeErr := strconv.ParseBool(parts[10])

	if feeErr != nil || ratingErr != nil || activeErr != nil {
		// Reconstrucción de mejor esfuerzo para líneas del formato antiguo
		// con numéricos corruptos: defaults y atracción activa.
		fee, rating, active = attractionDefaultFee, attractionDefaultRating, true
	}

	a := entity.NewAttraction(
		parts[0], parts[1], parts[2], strings.ReplaceAll(parts[3], ";", ","), parts[4], parts[5],
		entity.Category(parts[6]), fee, parts[8], rating, active,
	)

	// Campos de ubicación descompuesta, solo presentes en el formato nuevo.
	if len(parts) >= attractionFullFields {
		if parts[11] != "" {
			a.SetDistrict(parts[11])
		}
		if parts[12] != "" {
			a.SetProvince(parts[12])
		}
		if parts[13] != "" {
			if lat, err := strconv.ParseFloat(parts[13], 64); err == nil {
				a.Latitude = lat
			}
		}
		if parts[14] != "" {
			if lng, err := strconv.ParseFloat(parts[14], 64); err == nil {
				a.Longitude = lng
			}
		}
	}
	return a, nil
}
