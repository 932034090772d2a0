package repository

import "github.com/viajenepal/tourism-core/internal/domain/entity"

// AttractionRepository define el puerto de persistencia para Attraction.
type AttractionRepository interface {
	LoadAll() ([]*entity.Attraction, error)
	Append(a *entity.Attraction) error
	Update(a *entity.Attraction) error
	DeleteByID(id string) error
	FindByID(id string) (*entity.Attraction, error)
}
