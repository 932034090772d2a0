package flatfile

import (
	"fmt"

	"github.com/viajenepal/tourism-core/internal/domain"
	"github.com/viajenepal/tourism-core/internal/domain/entity"
	"github.com/viajenepal/tourism-core/internal/domain/repository"
	"github.com/viajenepal/tourism-core/pkg/logger"
)

var _ repository.AttractionRepository = (*AttractionRepo)(nil)

// AttractionRepo implementación del puerto AttractionRepository sobre
// attractions.txt.
type AttractionRepo struct {
	store *Store[*entity.Attraction]
}

// NewAttractionRepository construye el adaptador de persistencia para
// atracciones.
func NewAttractionRepository(path string, log *logger.Logger) *AttractionRepo {
	return &AttractionRepo{store: NewStore[*entity.Attraction](path, AttractionCodec{}, log)}
}

// LoadAll devuelve todas las atracciones en orden de archivo.
func (r *AttractionRepo) LoadAll() ([]*entity.Attraction, error) {
	return r.store.LoadAll()
}

// Append persiste una nueva atracción.
func (r *AttractionRepo) Append(a *entity.Attraction) error {
	return r.store.AppendOne(a)
}

// Update reemplaza el registro con el mismo ID.
func (r *AttractionRepo) Update(a *entity.Attraction) error {
	return r.store.UpdateOne(a, func(x *entity.Attraction) string { return x.ID })
}

// DeleteByID elimina la atracción con ese ID.
func (r *AttractionRepo) DeleteByID(id string) error {
	return r.store.DeleteWhere(func(x *entity.Attraction) bool { return x.ID == id })
}

// FindByID devuelve la atracción con ese ID o domain.ErrNotFound.
func (r *AttractionRepo) FindByID(id string) (*entity.Attraction, error) {
	all, err := r.store.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, a := range all {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("atracción %q: %w", id, domain.ErrNotFound)
}
