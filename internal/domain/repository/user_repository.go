package repository

import "github.com/viajenepal/tourism-core/internal/domain/entity"

// UserRepository define el puerto de persistencia para las variantes de
// User (DIP). El orden de LoadAll es el orden del archivo.
type UserRepository interface {
	LoadAll() ([]entity.User, error)
	Append(user entity.User) error
	// Update reemplaza el registro con el mismo ID; domain.ErrNotFound si no existe.
	Update(user entity.User) error
	DeleteByID(id string) error
	// FindByID y FindByUsername devuelven domain.ErrNotFound si no hay coincidencia.
	FindByID(id string) (entity.User, error)
	FindByUsername(username string) (entity.User, error)
}
