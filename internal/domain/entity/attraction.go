package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Categorías de atracción.
type Category string

const (
	CategoryMountain   Category = "Mountain"
	CategoryReligious  Category = "Religious"
	CategoryWildlife   Category = "Wildlife"
	CategoryCultural   Category = "Cultural"
	CategoryAdventure  Category = "Adventure"
	CategoryHistorical Category = "Historical"
)

// Attraction representa una atracción turística. La ubicación tiene dos
// representaciones que deben mantenerse consistentes: la cadena combinada
// "Distrito, Provincia" y los campos descompuestos. Por eso los tres campos
// son privados y se modifican solo vía setters que re-derivan la otra forma.
type Attraction struct {
	ID        string
	Name      string
	NameLocal string
	location  string
	district  string
	province  string
	Latitude  float64
	Longitude float64

	Description      string
	DescriptionLocal string
	Category         Category
	EntryFee         decimal.Decimal
	ImageURL         string
	Rating           float64
	Active           bool
}

// NewAttraction construye una atracción a partir de la cadena de ubicación
// combinada; distrito y provincia se derivan cuando el formato es
// "Distrito, Provincia".
func NewAttraction(id, name, nameLocal, location, description, descriptionLocal string,
	category Category, entryFee decimal.Decimal, imageURL string, rating float64, active bool) *Attraction {
	a := &Attraction{
		ID:               id,
		Name:             name,
		NameLocal:        nameLocal,
		Description:      description,
		DescriptionLocal: descriptionLocal,
		Category:         category,
		EntryFee:         entryFee,
		ImageURL:         imageURL,
		Rating:           rating,
		Active:           active,
	}
	a.SetLocation(location)
	return a
}

// NewAttractionAt construye una atracción con la ubicación ya descompuesta;
// la cadena combinada se compone a partir de distrito y provincia.
func NewAttractionAt(id, name, nameLocal, district, province string, latitude, longitude float64,
	description, descriptionLocal string, category Category, entryFee decimal.Decimal,
	imageURL string, rating float64, active bool) *Attraction {
	a := &Attraction{
		ID:               id,
		Name:             name,
		NameLocal:        nameLocal,
		district:         district,
		province:         province,
		Latitude:         latitude,
		Longitude:        longitude,
		Description:      description,
		DescriptionLocal: descriptionLocal,
		Category:         category,
		EntryFee:         entryFee,
		ImageURL:         imageURL,
		Rating:           rating,
		Active:           active,
	}
	a.rebuildLocation()
	return a
}

func (a *Attraction) Location() string { return a.location }
func (a *Attraction) District() string { return a.district }
func (a *Attraction) Province() string { return a.province }

// SetLocation fija la cadena combinada y re-deriva distrito/provincia si el
// formato es "Distrito, Provincia".
func (a *Attraction) SetLocation(location string) {
	a.location = location
	if !strings.Contains(location, ",") {
		return
	}
	parts := strings.SplitN(location, ",", 2)
	a.district = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		a.province = strings.TrimSpace(parts[1])
	}
}

// SetDistrict actualiza el distrito y recompone la cadena combinada.
func (a *Attraction) SetDistrict(district string) {
	a.district = district
	a.rebuildLocation()
}

// SetProvince actualiza la provincia y recompone la cadena combinada.
func (a *Attraction) SetProvince(province string) {
	a.province = province
	a.rebuildLocation()
}

func (a *Attraction) rebuildLocation() {
	switch {
	case a.district != "" && a.province != "":
		a.location = a.district + ", " + a.province
	case a.district != "":
		a.location = a.district
	case a.province != "":
		a.location = a.province
	}
}
