package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/decima-pos/internal/application/catalog"
	"github.com/jhoicas/decima-pos/internal/application/dto"
	"github.com/jhoicas/decima-pos/internal/domain"
)

// CatalogHandler expone los catálogos del ERP para la caja (protegido).
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler de catálogos.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Articles godoc
// @Summary      Listar artículos
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Texto de búsqueda (ignora acentos)"
// @Param        page      query  int     false  "Página"            default(1)
// @Param        per_page  query  int     false  "Filas por página"  default(50)
// @Success      200  {object}  dto.ArticleListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalogs/articles [get]
func (h *CatalogHandler) Articles(c *fiber.Ctx) error {
	q := dto.ArticleListQuery{
		Search:  c.Query("search"),
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", 50),
	}
	out, err := h.uc.Articles(c.UserContext(), q)
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	return c.JSON(out)
}

// Clients godoc
// @Summary      Listar clientes
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Texto de búsqueda"
// @Param        page      query  int     false  "Página"            default(1)
// @Param        per_page  query  int     false  "Filas por página"  default(50)
// @Success      200  {object}  dto.ClientListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalogs/clients [get]
func (h *CatalogHandler) Clients(c *fiber.Ctx) error {
	q := dto.ClientListQuery{
		Search:  c.Query("search"),
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", 50),
	}
	out, err := h.uc.Clients(c.UserContext(), q)
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	return c.JSON(out)
}

// DocumentTypes godoc
// @Summary      Listar tipos de documento
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DocumentTypeResponse
// @Router       /api/catalogs/document-types [get]
func (h *CatalogHandler) DocumentTypes(c *fiber.Ctx) error {
	out, err := h.uc.DocumentTypes(c.UserContext())
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	return c.JSON(out)
}

// PaymentTerms godoc
// @Summary      Listar condiciones de pago
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentTermResponse
// @Router       /api/catalogs/payment-terms [get]
func (h *CatalogHandler) PaymentTerms(c *fiber.Ctx) error {
	out, err := h.uc.PaymentTerms(c.UserContext())
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	return c.JSON(out)
}

// PaymentForms godoc
// @Summary      Listar formas de pago visibles en ventas
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentFormResponse
// @Router       /api/catalogs/payment-forms [get]
func (h *CatalogHandler) PaymentForms(c *fiber.Ctx) error {
	out, err := h.uc.PaymentForms(c.UserContext())
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	return c.JSON(out)
}

// SalePoints godoc
// @Summary      Listar puntos de venta
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SalePointResponse
// @Router       /api/catalogs/sale-points [get]
func (h *CatalogHandler) SalePoints(c *fiber.Ctx) error {
	out, err := h.uc.SalePoints(c.UserContext())
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	return c.JSON(out)
}

// upstreamOrInternal mapea fallas del ERP a 502 y el resto a 500.
func upstreamOrInternal(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUpstream) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "ERP_UNAVAILABLE", Message: "el ERP no está disponible"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
