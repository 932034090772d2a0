package entity

// Guide es un guía certificado. El número de licencia es inmutable después
// de la creación, y los idiomas/especializaciones nunca se exponen como el
// slice interno: los accesores devuelven copias para que el llamador no
// pueda mutar el estado almacenado.
type Guide struct {
	Profile
	license         string
	languages       []string
	specializations []string
	Rating          float64
	ExperienceYears int
}

// NewGuide construye un guía copiando las listas recibidas.
func NewGuide(p Profile, license string, languages, specializations []string, rating float64, experienceYears int) *Guide {
	return &Guide{
		Profile:         p,
		license:         license,
		languages:       copyList(languages),
		specializations: copyList(specializations),
		Rating:          rating,
		ExperienceYears: experienceYears,
	}
}

func (g *Guide) Role() Role     { return RoleGuide }
func (g *Guide) Base() *Profile { return &g.Profile }

// LicenseNumber devuelve el número de licencia (sin setter: inmutable).
func (g *Guide) LicenseNumber() string { return g.license }

// Languages devuelve una copia de la lista de idiomas.
func (g *Guide) Languages() []string { return copyList(g.languages) }

// SetLanguages reemplaza la lista de idiomas (se copia la entrada).
func (g *Guide) SetLanguages(languages []string) { g.languages = copyList(languages) }

// Specializations devuelve una copia de la lista de especializaciones.
func (g *Guide) Specializations() []string { return copyList(g.specializations) }

// SetSpecializations reemplaza la lista de especializaciones (se copia la entrada).
func (g *Guide) SetSpecializations(specializations []string) {
	g.specializations = copyList(specializations)
}

func copyList(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
