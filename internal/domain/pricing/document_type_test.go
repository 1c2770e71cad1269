package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/decima-pos/internal/domain/entity"
	"github.com/jhoicas/decima-pos/internal/domain/pricing"
)

func TestSelectDocumentType_ClienteConNRC(t *testing.T) {
	client := &entity.Client{ID: 7, Name: "Ferretería El Martillo", NRC: "123456-7"}

	got := pricing.SelectDocumentType(client, 0)
	assert.Equal(t, pricing.DocTypeCreditoFiscal, got,
		"cliente con NRC es contribuyente y recibe Crédito Fiscal")
}

func TestSelectDocumentType_ClienteSinNRC(t *testing.T) {
	client := &entity.Client{ID: 8, Name: "Juan Pérez"}

	got := pricing.SelectDocumentType(client, 0)
	assert.Equal(t, pricing.DocTypeConsumidorFinal, got)
}

func TestSelectDocumentType_NRCSoloEspacios(t *testing.T) {
	client := &entity.Client{ID: 9, Name: "María López", NRC: "   "}

	got := pricing.SelectDocumentType(client, 0)
	assert.Equal(t, pricing.DocTypeConsumidorFinal, got,
		"un NRC en blanco no convierte al cliente en contribuyente")
}

func TestSelectDocumentType_EleccionExplicitaManda(t *testing.T) {
	client := &entity.Client{ID: 10, Name: "Ferretería El Martillo", NRC: "123456-7"}

	got := pricing.SelectDocumentType(client, pricing.DocTypeConsumidorFinal)
	assert.Equal(t, pricing.DocTypeConsumidorFinal, got,
		"la elección del operador tiene prioridad sobre la regla automática")
}

func TestSelectDocumentType_SinCliente(t *testing.T) {
	got := pricing.SelectDocumentType(nil, 0)
	assert.Equal(t, pricing.DocTypeConsumidorFinal, got)
}
