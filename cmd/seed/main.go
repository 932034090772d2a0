// seed inicializa el directorio de datos: crea el administrador por defecto
// cuando users.txt no existe y las atracciones de muestra cuando
// attractions.txt no existe. Es idempotente: los archivos ya presentes no
// se tocan.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"

	"github.com/viajenepal/tourism-core/internal/application/usecase"
	"github.com/viajenepal/tourism-core/internal/domain/entity"
	"github.com/viajenepal/tourism-core/internal/infrastructure/flatfile"
	"github.com/viajenepal/tourism-core/pkg/config"
	"github.com/viajenepal/tourism-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	log.Info().Str("data_dir", cfg.Data.Dir).Msg("inicializando archivos de datos")

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio de datos")
	}

	if missing(cfg.Data.UsersFile()) {
		directorio := usecase.NewUserDirectory(
			flatfile.NewUserRepository(cfg.Data.UsersFile(), log), log)
		admin := &entity.Admin{
			Profile: entity.Profile{
				ID:       cfg.Seed.AdminID,
				Username: cfg.Seed.AdminUsername,
				Password: cfg.Seed.AdminPassword,
				Email:    cfg.Seed.AdminEmail,
				FullName: cfg.Seed.AdminFullName,
			},
			Level: entity.AdminLevel(cfg.Seed.AdminLevel),
		}
		if err := directorio.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear administrador por defecto")
		}
	}

	if missing(cfg.Data.AttractionsFile()) {
		catalog := usecase.NewAttractionCatalog(
			flatfile.NewAttractionRepository(cfg.Data.AttractionsFile(), log), log)
		for _, a := range sampleAttractions() {
			if err := catalog.Create(a); err != nil {
				log.Fatal().Err(err).Str("attraction_id", a.ID).Msg("crear atracción de muestra")
			}
		}
	}

	log.Info().Msg("directorio de datos listo")
}

func missing(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, fs.ErrNotExist)
}

func sampleAttractions() []*entity.Attraction {
	return []*entity.Attraction{
		entity.NewAttractionAt("ATT001", "Mount Everest", "सगरमाथा",
			"Khumbu", "Solukhumbu", 27.9881, 86.9250,
			"World's highest mountain peak", "संसारको सबैभन्दा अग्लो हिमाल",
			entity.CategoryMountain, decimal.NewFromInt(5000), "everest.jpg", 4.9, true),
		entity.NewAttractionAt("ATT002", "Pashupatinath Temple", "पशुपतिनाथ मन्दिर",
			"Kathmandu", "Bagmati", 27.7109, 85.3484,
			"Sacred Hindu temple dedicated to Lord Shiva", "भगवान शिवलाई समर्पित पवित्र हिन्दू मन्दिर",
			entity.CategoryReligious, decimal.NewFromInt(1000), "pashupatinath.jpg", 4.8, true),
		entity.NewAttractionAt("ATT003", "Boudhanath Stupa", "बौधनाथ स्तुप",
			"Kathmandu", "Bagmati", 27.7215, 85.3620,
			"Ancient Buddhist stupa", "पुरानो बौद्ध स्तुप",
			entity.CategoryReligious, decimal.NewFromInt(200), "boudhanath.jpg", 4.7, true),
		entity.NewAttractionAt("ATT004", "Chitwan National Park", "चितवन राष्ट्रिय निकुञ्ज",
			"Chitwan", "Narayani", 27.5291, 84.3542,
			"Wildlife sanctuary with rhinos and tigers", "गैंडा र बाघसहितको वन्यजन्तु अभयारण्य",
			entity.CategoryWildlife, decimal.NewFromInt(2000), "chitwan.jpg", 4.6, true),
	}
}
