package flatfile

import (
	"fmt"

	"github.com/viajenepal/tourism-core/internal/domain"
	"github.com/viajenepal/tourism-core/internal/domain/entity"
	"github.com/viajenepal/tourism-core/internal/domain/repository"
	"github.com/viajenepal/tourism-core/pkg/logger"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre users.txt.
type UserRepo struct {
	store *Store[entity.User]
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(path string, log *logger.Logger) *UserRepo {
	return &UserRepo{store: NewStore[entity.User](path, UserCodec{}, log)}
}

// LoadAll devuelve todos los usuarios en orden de archivo.
func (r *UserRepo) LoadAll() ([]entity.User, error) {
	return r.store.LoadAll()
}

// Append persiste un nuevo usuario al final del archivo.
func (r *UserRepo) Append(u entity.User) error {
	return r.store.AppendOne(u)
}

// Update reemplaza el registro con el mismo ID.
func (r *UserRepo) Update(u entity.User) error {
	return r.store.UpdateOne(u, func(x entity.User) string { return x.Base().ID })
}

// DeleteByID elimina el usuario con ese ID. Las reservas que lo referencien
// quedan huérfanas: no hay cascada entre entidades.
func (r *UserRepo) DeleteByID(id string) error {
	return r.store.DeleteWhere(func(x entity.User) bool { return x.Base().ID == id })
}

// FindByID devuelve el usuario con ese ID o domain.ErrNotFound.
func (r *UserRepo) FindByID(id string) (entity.User, error) {
	all, err := r.store.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, u := range all {
		if u.Base().ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("usuario %q: %w", id, domain.ErrNotFound)
}

// FindByUsername devuelve la primera coincidencia en orden de archivo o
// domain.ErrNotFound. La comparación es sensible a mayúsculas.
func (r *UserRepo) FindByUsername(username string) (entity.User, error) {
	all, err := r.store.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, u := range all {
		if u.Base().Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("usuario %q: %w", username, domain.ErrNotFound)
}
