package dto

// Pagination replica los metadatos de página que entrega el ERP y que el
// front de caja ya consume (página actual, total de páginas y registros).
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalRecords int `json:"total_records"`
	PerPage      int `json:"per_page"`
	From         int `json:"from"`
	To           int `json:"to"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
