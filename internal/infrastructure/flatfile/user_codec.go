package flatfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viajenepal/tourism-core/internal/domain"
	"github.com/viajenepal/tourism-core/internal/domain/entity"
)

// Órdenes de campos de users.txt. Los 7 primeros campos son comunes:
// userId,username,password,email,fullName,phone,userType. Cada variante
// agrega los suyos al final.
const (
	userMinFields    = 7
	adminMinFields   = 8  // + adminLevel
	touristMinFields = 9  // + nationality,age
	guideMinFields   = 12 // + licenseNumber,languages,specializations,rating,experienceYears
)

// UserCodec serializa las tres variantes de usuario despachando sobre el
// tag discriminador (campo 7).
type UserCodec struct{}

var _ Codec[entity.User] = UserCodec{}

// Encode produce la línea de la variante concreta.
func (UserCodec) Encode(u entity.User) string {
	p := u.Base()
	common := strings.Join([]string{
		p.ID, p.Username, p.Password, p.Email, p.FullName, p.Phone, string(u.Role()),
	}, ",")

	switch v := u.(type) {
	case *entity.Admin:
		return common + "," + string(v.Level)
	case *entity.Tourist:
		return common + "," + v.Nationality + "," + strconv.Itoa(v.Age)
	case *entity.Guide:
		return common + "," +
			v.LicenseNumber() + "," +
			strings.Join(v.Languages(), ";") + "," +
			strings.Join(v.Specializations(), ";") + "," +
			formatFloat(v.Rating) + "," +
			strconv.Itoa(v.ExperienceYears)
	}
	return common
}

// Decode reconstruye la variante concreta según el tag. Un tag desconocido
// o un conteo de campos insuficiente es un fallo de decodificación: el
// registro se omite, no aborta la carga.
func (UserCodec) Decode(line string) (entity.User, error) {
	parts := strings.Split(line, ",")
	if len(parts) < userMinFields {
		return nil, fmt.Errorf("usuario con %d campos (mínimo %d): %w", len(parts), userMinFields, domain.ErrDecode)
	}

	p := entity.Profile{
		ID:       parts[0],
		Username: parts[1],
		Password: parts[2],
		Email:    parts[3],
		FullName: parts[4],
		Phone:    parts[5],
	}

	switch tag := parts[6]; tag {
	case string(entity.RoleAdmin):
		if len(parts) < adminMinFields {
			return nil, fmt.Errorf("admin con %d campos: %w", len(parts), domain.ErrDecode)
		}
		return &entity.Admin{Profile: p, Level: entity.AdminLevel(parts[7])}, nil

	case string(entity.RoleTourist):
		if len(parts) < touristMinFields {
			return nil, fmt.Errorf("turista con %d campos: %w", len(parts), domain.ErrDecode)
		}
		age, err := strconv.Atoi(parts[8])
		if err != nil {
			return nil, fmt.Errorf("edad %q: %w", parts[8], domain.ErrDecode)
		}
		return &entity.Tourist{Profile: p, Nationality: parts[7], Age: age}, nil

	case string(entity.RoleGuide):
		if len(parts) < guideMinFields {
			return nil, fmt.Errorf("guía con %d campos: %w", len(parts), domain.ErrDecode)
		}
		rating, err := strconv.ParseFloat(parts[10], 64)
		if err != nil {
			return nil, fmt.Errorf("rating %q: %w", parts[10], domain.ErrDecode)
		}
		years, err := strconv.Atoi(parts[11])
		if err != nil {
			return nil, fmt.Errorf("años de experiencia %q: %w", parts[11], domain.ErrDecode)
		}
		return entity.NewGuide(p, parts[7], splitList(parts[8]), splitList(parts[9]), rating, years), nil

	default:
		return nil, fmt.Errorf("tag %q: %w", tag, domain.ErrUnknownUserType)
	}
}

// splitList separa un campo de lista con el delimitador secundario.
func splitList(field string) []string {
	if field == "" {
		return nil
	}
	return strings.Split(field, ";")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
