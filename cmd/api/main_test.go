package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger sirve docs/swagger.json en runtime; el archivo
// tiene que estar versionado y ser JSON válido o la UI de docs no arranca.
func TestSwaggerJSONVersionadoYValido(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "docs", "swagger.json"))
	require.NoError(t, err, "docs/swagger.json debe existir en el repo")

	var doc struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "2.0", doc.Swagger)

	for _, p := range []string{
		"/api/auth/login",
		"/api/auth/validate-token",
		"/api/sales/checkout",
		"/api/session/sale-point",
	} {
		assert.Contains(t, doc.Paths, p, "la ruta debe estar documentada")
	}
}
