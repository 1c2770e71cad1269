package catalog_test

import (
	"testing"

	"github.com/jhoicas/decima-pos/internal/application/catalog"
	"github.com/stretchr/testify/assert"
)

func TestFold_QuitaAcentosYMayusculas(t *testing.T) {
	assert.Equal(t, "cafe", catalog.Fold("Café"))
	assert.Equal(t, "azucar morena", catalog.Fold("AZÚCAR Morena"))
	assert.Equal(t, "nino", catalog.Fold("Niño"))
}

func TestFold_TextoSinAcentosQuedaIgual(t *testing.T) {
	assert.Equal(t, "harina 25lb", catalog.Fold("Harina 25lb"))
}

func TestMatchesSearch_IgnoraAcentos(t *testing.T) {
	assert.True(t, catalog.MatchesSearch("cafe", "Café molido 400g"))
	assert.True(t, catalog.MatchesSearch("Café", "cafe molido 400g"))
}

func TestMatchesSearch_BuscaEnCualquierCampo(t *testing.T) {
	assert.True(t, catalog.MatchesSearch("7401", "Azúcar", "", "7401000123456"))
	assert.False(t, catalog.MatchesSearch("leche", "Azúcar", "AZ-01", "7401000123456"))
}

func TestMatchesSearch_TerminoVacioMatcheaTodo(t *testing.T) {
	assert.True(t, catalog.MatchesSearch("", "cualquier cosa"))
	assert.True(t, catalog.MatchesSearch("   ", "cualquier cosa"))
}

func TestMatchesSearch_CamposVaciosNoMatchean(t *testing.T) {
	assert.False(t, catalog.MatchesSearch("x", "", ""))
}
