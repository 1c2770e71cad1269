package entity

// Client es un cliente del catálogo del ERP.
//
// NRC es el número de registro de contribuyente: su presencia indica que el
// cliente es contribuyente de IVA y por tanto recibe Crédito Fiscal en lugar
// de Factura de Consumidor Final. DUI es el documento único de identidad
// (single_identity_document_number) y TaxID el NIT.
type Client struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	TaxID      string
	NRC        string
	DUI        string
	City       string
	State      string
	Address    string
	IsVIP      bool
	IsEmployee bool
}
