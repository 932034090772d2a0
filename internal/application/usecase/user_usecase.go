package usecase

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/viajenepal/tourism-core/internal/domain"
	"github.com/viajenepal/tourism-core/internal/domain/entity"
	"github.com/viajenepal/tourism-core/internal/domain/repository"
	"github.com/viajenepal/tourism-core/pkg/logger"
)

// UserDirectory aplica las reglas de negocio del directorio de usuarios:
// autenticación, alta con unicidad de username, edición y baja con guarda
// de auto-eliminación.
type UserDirectory struct {
	repo repository.UserRepository
	log  *logger.Logger
}

// NewUserDirectory construye el caso de uso con el puerto de persistencia.
func NewUserDirectory(repo repository.UserRepository, log *logger.Logger) *UserDirectory {
	return &UserDirectory{repo: repo, log: log}
}

// FindByCredentials autentica contra el directorio: username y password por
// igualdad sensible a mayúsculas, rol sin distinguir mayúsculas. Devuelve
// la primera coincidencia en orden de archivo o domain.ErrNotFound. No es
// una consulta general: usernames duplicados son un bug de integridad de
// datos, no un caso contemplado.
func (uc *UserDirectory) FindByCredentials(username, password, role string) (entity.User, error) {
	all, err := uc.repo.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, u := range all {
		if u.Base().Username == username &&
			u.Base().Password == password &&
			strings.EqualFold(string(u.Role()), role) {
			return u, nil
		}
	}
	return nil, fmt.Errorf("credenciales de %q: %w", username, domain.ErrNotFound)
}

// Create registra un usuario nuevo. Un username ya existente es un fallo de
// validación (domain.ErrDuplicateUsername), no una excepción.
func (uc *UserDirectory) Create(u entity.User) error {
	_, err := uc.repo.FindByUsername(u.Base().Username)
	switch {
	case err == nil:
		return fmt.Errorf("username %q: %w", u.Base().Username, domain.ErrDuplicateUsername)
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}
	if err := uc.repo.Append(u); err != nil {
		return err
	}
	uc.log.Info().
		Str("user_id", u.Base().ID).
		Str("role", string(u.Role())).
		Msg("usuario creado")
	return nil
}

// Update reemplaza el registro identificado por el ID del usuario dado. El
// llamador no debe cambiar ni el ID ni el tag discriminador.
func (uc *UserDirectory) Update(u entity.User) error {
	return uc.repo.Update(u)
}

// Delete elimina la cuenta targetID por acción de actorID. La
// auto-eliminación está prohibida. No hay cascada: las reservas que
// referencien al usuario eliminado quedan huérfanas.
func (uc *UserDirectory) Delete(actorID, targetID string) error {
	if actorID == targetID {
		return domain.ErrSelfDelete
	}
	if err := uc.repo.DeleteByID(targetID); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", targetID).Str("by", actorID).Msg("usuario eliminado")
	return nil
}

// FindByUsername busca por username exacto.
func (uc *UserDirectory) FindByUsername(username string) (entity.User, error) {
	return uc.repo.FindByUsername(username)
}

// LoadAll devuelve el directorio completo en orden de archivo.
func (uc *UserDirectory) LoadAll() ([]entity.User, error) {
	return uc.repo.LoadAll()
}

// GenerateID genera un identificador con prefijo por rol y tres dígitos
// aleatorios. El espacio es diminuto y no se verifica unicidad contra los
// registros existentes: las colisiones son posibles, comportamiento
// heredado que se conserva a propósito.
func GenerateID(role entity.Role) string {
	prefix := "ADM"
	switch role {
	case entity.RoleTourist:
		prefix = "TOU"
	case entity.RoleGuide:
		prefix = "GUD"
	}
	return fmt.Sprintf("%s%03d", prefix, rand.IntN(1000))
}
