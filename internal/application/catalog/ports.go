package catalog

import (
	"context"

	"github.com/jhoicas/decima-pos/internal/domain/entity"
)

// Page paginación reportada por el ERP junto a cada listado.
type Page struct {
	CurrentPage  int
	TotalPages   int
	TotalRecords int
	PerPage      int
	From         int
	To           int
}

// ListQuery parámetros comunes de los listados del ERP.
type ListQuery struct {
	Search  string
	Page    int
	PerPage int
}

// ERPCatalog acceso de lectura a los catálogos del ERP Decima. Las
// implementaciones devuelven ErrUpstream (envuelto) cuando el ERP no
// responde o responde fuera de contrato.
type ERPCatalog interface {
	Articles(ctx context.Context, q ListQuery) ([]entity.Article, Page, error)
	Clients(ctx context.Context, q ListQuery) ([]entity.Client, Page, error)
	ClientByID(ctx context.Context, id int64) (*entity.Client, error)
	DocumentTypes(ctx context.Context) ([]entity.DocumentType, error)
	PaymentTerms(ctx context.Context) ([]entity.PaymentTerm, error)
	PaymentForms(ctx context.Context) ([]entity.PaymentForm, error)
	SalePoints(ctx context.Context) ([]entity.SalePoint, error)
}
