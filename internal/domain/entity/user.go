package entity

// Roles válidos para las variantes de User. El valor es el tag discriminador
// que se persiste en users.txt.
type Role string

const (
	RoleTourist Role = "TOURIST"
	RoleGuide   Role = "GUIDE"
	RoleAdmin   Role = "ADMIN"
)

// Profile agrupa los atributos comunes a todas las variantes de usuario.
// Password se guarda en texto plano por compatibilidad con el formato
// existente de users.txt.
type Profile struct {
	ID       string
	Username string
	Password string
	Email    string
	FullName string
	Phone    string
}

// User es la vista polimórfica sobre las tres variantes (Tourist, Guide,
// Admin). El comportamiento específico de cada variante se resuelve con un
// type switch sobre el tipo concreto, no con jerarquías.
type User interface {
	Role() Role
	Base() *Profile
}

// Tourist es un visitante que reserva atracciones con un guía.
type Tourist struct {
	Profile
	Nationality string
	Age         int
}

func (t *Tourist) Role() Role     { return RoleTourist }
func (t *Tourist) Base() *Profile { return &t.Profile }

// Niveles de administrador.
type AdminLevel string

const (
	AdminLevelStandard AdminLevel = "STANDARD"
	AdminLevelSuper    AdminLevel = "SUPER"
)

// Admin gestiona usuarios y atracciones. No tiene teléfono en el formato
// heredado (campo vacío).
type Admin struct {
	Profile
	Level AdminLevel
}

func (a *Admin) Role() Role     { return RoleAdmin }
func (a *Admin) Base() *Profile { return &a.Profile }
