package usecase

import (
	"fmt"
	"math/rand/v2"

	"github.com/viajenepal/tourism-core/internal/domain/entity"
	"github.com/viajenepal/tourism-core/internal/domain/repository"
	"github.com/viajenepal/tourism-core/pkg/logger"
)

// AttractionCatalog aplica las reglas del catálogo de atracciones. El CRUD
// es de uso administrativo; los flujos de navegación y reserva solo leen.
type AttractionCatalog struct {
	repo repository.AttractionRepository
	log  *logger.Logger
}

// NewAttractionCatalog construye el caso de uso con el puerto de
// persistencia.
func NewAttractionCatalog(repo repository.AttractionRepository, log *logger.Logger) *AttractionCatalog {
	return &AttractionCatalog{repo: repo, log: log}
}

// Create agrega una atracción al catálogo.
func (uc *AttractionCatalog) Create(a *entity.Attraction) error {
	if err := uc.repo.Append(a); err != nil {
		return err
	}
	uc.log.Info().Str("attraction_id", a.ID).Str("name", a.Name).Msg("atracción creada")
	return nil
}

// Update reemplaza el registro con el mismo ID.
func (uc *AttractionCatalog) Update(a *entity.Attraction) error {
	return uc.repo.Update(a)
}

// Delete elimina la atracción del catálogo.
func (uc *AttractionCatalog) Delete(id string) error {
	return uc.repo.DeleteByID(id)
}

// FindByID busca una atracción por identificador.
func (uc *AttractionCatalog) FindByID(id string) (*entity.Attraction, error) {
	return uc.repo.FindByID(id)
}

// LoadAll devuelve el catálogo completo, incluidas las inactivas.
func (uc *AttractionCatalog) LoadAll() ([]*entity.Attraction, error) {
	return uc.repo.LoadAll()
}

// ListActive devuelve solo las atracciones activas, para los flujos de
// navegación y reserva.
func (uc *AttractionCatalog) ListActive() ([]*entity.Attraction, error) {
	all, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	active := make([]*entity.Attraction, 0, len(all))
	for _, a := range all {
		if a.Active {
			active = append(active, a)
		}
	}
	return active, nil
}

// GenerateAttractionID genera un identificador ATT con tres dígitos
// aleatorios, sin verificación de unicidad (mismo comportamiento heredado
// que GenerateID).
func GenerateAttractionID() string {
	return fmt.Sprintf("ATT%03d", rand.IntN(1000))
}
