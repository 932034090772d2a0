package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	Data DataConfig
	Log  LogConfig
	Seed SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DataConfig ubicación de los archivos planos de datos.
type DataConfig struct {
	Dir string // directorio con users.txt, attractions.txt, bookings.txt, emergencies.txt
}

// UsersFile devuelve la ruta de users.txt.
func (d DataConfig) UsersFile() string { return filepath.Join(d.Dir, "users.txt") }

// AttractionsFile devuelve la ruta de attractions.txt.
func (d DataConfig) AttractionsFile() string { return filepath.Join(d.Dir, "attractions.txt") }

// BookingsFile devuelve la ruta de bookings.txt.
func (d DataConfig) BookingsFile() string { return filepath.Join(d.Dir, "bookings.txt") }

// EmergenciesFile devuelve la ruta de emergencies.txt.
func (d DataConfig) EmergenciesFile() string { return filepath.Join(d.Dir, "emergencies.txt") }

// LogConfig nivel del logger.
type LogConfig struct {
	Level string
}

// SeedConfig credenciales del administrador por defecto que se crea cuando
// users.txt no existe todavía.
type SeedConfig struct {
	AdminID       string
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	AdminFullName string
	AdminLevel    string
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, DATA_DIR, LOG_LEVEL, SEED_ADMIN_USERNAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "tourism-core"),
		},
		Data: DataConfig{
			Dir: getString(v, "DATA_DIR", "Data"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Seed: SeedConfig{
			AdminID:       getString(v, "SEED_ADMIN_ID", "ADM001"),
			AdminUsername: getString(v, "SEED_ADMIN_USERNAME", "admin"),
			AdminPassword: getString(v, "SEED_ADMIN_PASSWORD", "admin123"),
			AdminEmail:    getString(v, "SEED_ADMIN_EMAIL", "admin@tourism.np"),
			AdminFullName: getString(v, "SEED_ADMIN_FULLNAME", "System Administrator"),
			AdminLevel:    getString(v, "SEED_ADMIN_LEVEL", "SUPER"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
