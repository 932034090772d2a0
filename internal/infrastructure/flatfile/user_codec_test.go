package flatfile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viajenepal/tourism-core/internal/domain"
	"github.com/viajenepal/tourism-core/internal/domain/entity"
	"github.com/viajenepal/tourism-core/internal/infrastructure/flatfile"
)

// ──────────────────────────────────────────────────────────────────────────────
// El códec de usuarios es el contrato con los users.txt ya existentes en
// producción: el orden de campos y el despacho por tag discriminador no
// pueden cambiar sin romper los archivos desplegados.
// ──────────────────────────────────────────────────────────────────────────────

func sampleTourist() *entity.Tourist {
	return &entity.Tourist{
		Profile: entity.Profile{
			ID:       "TOU042",
			Username: "tourist1",
			Password: "pass123",
			Email:    "t@example.com",
			FullName: "Maya Sherpa",
			Phone:    "9841000000",
		},
		Nationality: "Nepal",
		Age:         28,
	}
}

func sampleGuide() *entity.Guide {
	return entity.NewGuide(entity.Profile{
		ID:       "GUD007",
		Username: "pemba",
		Password: "secret",
		Email:    "g@example.com",
		FullName: "Pemba Dorje",
		Phone:    "9851000000",
	}, "LIC-2019-77", []string{"English", "Nepali"}, []string{"Trekking", "Mountaineering"}, 4.8, 12)
}

func sampleAdmin() *entity.Admin {
	return &entity.Admin{
		Profile: entity.Profile{
			ID:       "ADM001",
			Username: "admin",
			Password: "admin123",
			Email:    "admin@tourism.np",
			FullName: "System Administrator",
		},
		Level: entity.AdminLevelSuper,
	}
}

func TestUserCodec_RoundTripTourist(t *testing.T) {
	codec := flatfile.UserCodec{}
	original := sampleTourist()

	decoded, err := codec.Decode(codec.Encode(original))
	require.NoError(t, err)
	assert.Equal(t, original, decoded, "decode(encode(e)) debe devolver el turista campo a campo")
}

func TestUserCodec_RoundTripGuide(t *testing.T) {
	codec := flatfile.UserCodec{}
	original := sampleGuide()

	decoded, err := codec.Decode(codec.Encode(original))
	require.NoError(t, err)
	assert.Equal(t, original, decoded)

	guide, ok := decoded.(*entity.Guide)
	require.True(t, ok)
	assert.Equal(t, []string{"English", "Nepali"}, guide.Languages())
	assert.Equal(t, []string{"Trekking", "Mountaineering"}, guide.Specializations())
	assert.Equal(t, "LIC-2019-77", guide.LicenseNumber())
}

func TestUserCodec_RoundTripAdmin(t *testing.T) {
	codec := flatfile.UserCodec{}
	original := sampleAdmin()

	line := codec.Encode(original)
	assert.Equal(t, "ADM001,admin,admin123,admin@tourism.np,System Administrator,,ADMIN,SUPER", line,
		"el admin serializa con teléfono vacío (formato heredado)")

	decoded, err := codec.Decode(line)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestUserCodec_GuideConListasVacias(t *testing.T) {
	codec := flatfile.UserCodec{}
	original := entity.NewGuide(entity.Profile{ID: "GUD001", Username: "lone"},
		"LIC-1", nil, nil, 0, 0)

	decoded, err := codec.Decode(codec.Encode(original))
	require.NoError(t, err)
	assert.Equal(t, original, decoded, "listas vacías deben sobrevivir el viaje de ida y vuelta")
}

func TestUserCodec_TagDesconocido(t *testing.T) {
	codec := flatfile.UserCodec{}
	_, err := codec.Decode("X001,a,b,c,d,e,OPERATOR,extra")
	assert.ErrorIs(t, err, domain.ErrUnknownUserType)
}

func TestUserCodec_CamposInsuficientes(t *testing.T) {
	codec := flatfile.UserCodec{}
	cases := map[string]string{
		"menos del mínimo común": "TOU001,solo,seis,campos,aqui,mismo",
		"turista truncado":       "TOU001,a,b,c,d,e,TOURIST,Nepal",
		"guía truncado":          "GUD001,a,b,c,d,e,GUIDE,LIC,en,trek,4.5",
		"admin truncado":         "ADM001,a,b,c,d,e,ADMIN",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode(line)
			assert.True(t, errors.Is(err, domain.ErrDecode),
				"una línea truncada es un fallo de decodificación, no un pánico: %v", err)
		})
	}
}

func TestUserCodec_NumericosCorruptos(t *testing.T) {
	codec := flatfile.UserCodec{}

	_, err := codec.Decode("TOU001,a,b,c,d,e,TOURIST,Nepal,veinte")
	assert.ErrorIs(t, err, domain.ErrDecode, "edad no numérica")

	_, err = codec.Decode("GUD001,a,b,c,d,e,GUIDE,LIC,en,trek,alto,5")
	assert.ErrorIs(t, err, domain.ErrDecode, "rating no numérico")
}

func TestUserCodec_CamposVaciosAlFinalSePreservan(t *testing.T) {
	codec := flatfile.UserCodec{}
	// Teléfono vacío y nivel vacío: split debe conservar los campos vacíos
	// finales.
	decoded, err := codec.Decode("ADM002,root,pw,e@x,Root,,ADMIN,")
	require.NoError(t, err)
	admin, ok := decoded.(*entity.Admin)
	require.True(t, ok)
	assert.Empty(t, string(admin.Level))
}
