package sales

import (
	"context"

	"github.com/jhoicas/decima-pos/internal/application/dto"
)

// ListUseCase listado de ventas registradas en el ERP, para la vista
// de ventas del día de la caja.
type ListUseCase struct {
	lister SaleLister
}

// NewListUseCase construye el caso de uso de listado de ventas.
func NewListUseCase(lister SaleLister) *ListUseCase {
	return &ListUseCase{lister: lister}
}

// Sales lista ventas con filtro opcional por fecha (YYYY-MM-DD).
func (uc *ListUseCase) Sales(ctx context.Context, q dto.SaleListQuery) (*dto.SaleListResponse, error) {
	rows, page, err := uc.lister.Sales(ctx, SalesQuery{Date: q.Date, Page: q.Page, PerPage: q.PerPage})
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleSummaryResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.SaleSummaryResponse{
			ID:             s.ID,
			DocumentNumber: s.DocumentNumber,
			ClientName:     s.ClientName,
			Date:           s.EmissionDate,
			Total:          s.Total,
			Status:         s.Status,
		})
	}
	return &dto.SaleListResponse{
		Sales: out,
		Pagination: dto.Pagination{
			CurrentPage:  page.CurrentPage,
			TotalPages:   page.TotalPages,
			TotalRecords: page.TotalRecords,
			PerPage:      page.PerPage,
			From:         page.From,
			To:           page.To,
		},
	}, nil
}
