package scan_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wims-scanner/internal/domain"
	"github.com/jhoicas/wims-scanner/internal/domain/entity"
	"github.com/jhoicas/wims-scanner/internal/domain/scan"
)

// catalogoDePrueba dos bodegas; Widget X existe solo en la segunda para
// verificar que el emparejamiento se limita a la bodega seleccionada.
func catalogoDePrueba() entity.Catalog {
	return entity.Catalog{
		{
			ID:   "wh-1",
			Name: "Bodega Central",
			Products: []entity.Product{
				{ID: "p1", Name: "Bolt M6", Price: decimal.RequireFromString("0.5"), Quantity: 10, CategoryID: "c1"},
				{ID: "p2", Name: "  Tuerca M6 ", Price: decimal.RequireFromString("0.3"), Quantity: 40, CategoryID: "c1"},
			},
		},
		{
			ID:   "wh-2",
			Name: "Bodega Norte",
			Products: []entity.Product{
				{ID: "p9", Name: "Widget X", Price: decimal.RequireFromString("2.5"), Quantity: 5, CategoryID: "c2"},
			},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalize
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_Idempotente(t *testing.T) {
	casos := []string{"Bolt M6", "  bolt m6  ", "CAFÉ", "café", ""}
	for _, c := range casos {
		una := scan.Normalize(c)
		assert.Equal(t, una, scan.Normalize(una), "Normalize debe ser idempotente para %q", c)
	}
}

func TestNormalize_RecorteYMinusculas(t *testing.T) {
	assert.Equal(t, "bolt m6", scan.Normalize("  Bolt M6 "))
	assert.Equal(t, "tuerca m6", scan.Normalize("TUERCA M6"))
}

func TestNormalize_ComposicionUnicode(t *testing.T) {
	// "é" precompuesto y "e" + acento combinante deben comparar iguales.
	assert.Equal(t, scan.Normalize("Café"), scan.Normalize("Café"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Match
// ──────────────────────────────────────────────────────────────────────────────

func TestMatch_EncontradoInsensibleAMayusculasYEspacios(t *testing.T) {
	payload := scan.Payload{ProductName: "bolt m6"}
	v := scan.Match(payload, catalogoDePrueba(), "wh-1")

	require.Equal(t, scan.VerdictFound, v.Kind)
	require.NotNil(t, v.Product)
	assert.Equal(t, "p1", v.Product.ID)

	// El nombre con espacios en el catálogo también empareja.
	v = scan.Match(scan.Payload{ProductName: "tuerca m6"}, catalogoDePrueba(), "wh-1")
	require.Equal(t, scan.VerdictFound, v.Kind)
	assert.Equal(t, "p2", v.Product.ID)
}

func TestMatch_NoEncontradoEnLaBodegaSeleccionada(t *testing.T) {
	// Widget X existe en wh-2 pero no en wh-1: el veredicto se limita a la
	// bodega seleccionada.
	v := scan.Match(scan.Payload{ProductName: "Widget X"}, catalogoDePrueba(), "wh-1")
	assert.Equal(t, scan.VerdictNotFound, v.Kind)
	assert.Nil(t, v.Product)
}

func TestMatch_BodegaAusenteProduceNoEncontrado(t *testing.T) {
	v := scan.Match(scan.Payload{ProductName: "Bolt M6"}, catalogoDePrueba(), "wh-404")
	assert.Equal(t, scan.VerdictNotFound, v.Kind)
}

func TestMatch_PrimeraCoincidenciaEnOrdenDeCatalogoGana(t *testing.T) {
	catalogo := entity.Catalog{{
		ID: "wh-1",
		Products: []entity.Product{
			{ID: "p1", Name: "Bolt M6"},
			{ID: "p2", Name: "bolt m6 "},
		},
	}}
	v := scan.Match(scan.Payload{ProductName: "BOLT M6"}, catalogo, "wh-1")
	require.Equal(t, scan.VerdictFound, v.Kind)
	assert.Equal(t, "p1", v.Product.ID, "con nombres duplicados manda la primera en orden de catálogo")
}

// ──────────────────────────────────────────────────────────────────────────────
// ParsePayload
// ──────────────────────────────────────────────────────────────────────────────

func TestParsePayload_Completo(t *testing.T) {
	p, err := scan.ParsePayload(`{"productName":"Bolt M6","productDescription":"tornillo","categoryId":"c1"}`)
	require.NoError(t, err)
	assert.Equal(t, "Bolt M6", p.ProductName)
	assert.Equal(t, "tornillo", p.ProductDescription)
	assert.Equal(t, "c1", p.CategoryID)
}

func TestParsePayload_JSONInvalido(t *testing.T) {
	_, err := scan.ParsePayload("###no-es-json###")
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestParsePayload_SinProductName(t *testing.T) {
	_, err := scan.ParsePayload(`{"productDescription":"sin nombre"}`)
	assert.ErrorIs(t, err, domain.ErrParse)

	_, err = scan.ParsePayload(`{"productName":"   "}`)
	assert.ErrorIs(t, err, domain.ErrParse, "un nombre de solo espacios no es un escaneo válido")
}
