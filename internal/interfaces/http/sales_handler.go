package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/decima-pos/internal/application/dto"
	"github.com/jhoicas/decima-pos/internal/application/sales"
	"github.com/jhoicas/decima-pos/internal/domain"
)

// SalesHandler maneja el checkout, el listado de ventas y el
// comprobante (protegido).
type SalesHandler struct {
	checkoutUC *sales.CheckoutUseCase
	listUC     *sales.ListUseCase
	receiptUC  *sales.ReceiptUseCase
}

// NewSalesHandler construye el handler de ventas.
func NewSalesHandler(checkoutUC *sales.CheckoutUseCase, listUC *sales.ListUseCase, receiptUC *sales.ReceiptUseCase) *SalesHandler {
	return &SalesHandler{checkoutUC: checkoutUC, listUC: listUC, receiptUC: receiptUC}
}

// Checkout godoc
// @Summary      Cerrar una venta
// @Description  Crea la venta en el ERP y dispara la emisión del DTE.
// @Description  Enviar el header Idempotency-Key evita ventas duplicadas
// @Description  ante reintentos: la misma clave devuelve el resultado
// @Description  original sin crear otra venta.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string  false  "Clave de idempotencia del cliente"
// @Param        body  body  dto.CheckoutRequest  true  "Carrito, cliente y pagos"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/sales/checkout [post]
func (h *SalesHandler) Checkout(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.checkoutUC.Checkout(c.UserContext(), userID, c.Get("Idempotency-Key"), in)
	if err != nil {
		return checkoutError(c, err)
	}
	status := fiber.StatusCreated
	if out.Replayed {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(out)
}

// List godoc
// @Summary      Listar ventas registradas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        date      query  string  false  "Filtrar por fecha de emisión (YYYY-MM-DD)"
// @Param        page      query  int     false  "Página"            default(1)
// @Param        per_page  query  int     false  "Filas por página"  default(15)
// @Success      200  {object}  dto.SaleListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	q := dto.SaleListQuery{
		Date:    c.Query("date"),
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", 15),
	}
	out, err := h.listUC.Sales(c.UserContext(), q)
	if err != nil {
		return upstreamOrInternal(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar comprobante PDF de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la venta en el ERP"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SalesHandler) Receipt(c *fiber.Ctx) error {
	saleID, err := c.ParamsInt("id")
	if err != nil || saleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de venta inválido"})
	}
	pdfBytes, filename, err := h.receiptUC.DownloadReceipt(c.UserContext(), int64(saleID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return upstreamOrInternal(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// checkoutError mapea los errores de validación del checkout a 422, las
// fallas del ERP a 502 y el resto a 500.
func checkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return unprocessable(c, "EMPTY_CART", "el carrito está vacío")
	case errors.Is(err, domain.ErrClientRequired):
		return unprocessable(c, "CLIENT_REQUIRED", "debe seleccionar un cliente")
	case errors.Is(err, domain.ErrSalePointRequired):
		return unprocessable(c, "SALE_POINT_REQUIRED", "debe seleccionar un punto de venta")
	case errors.Is(err, domain.ErrPaymentTermRequired):
		return unprocessable(c, "PAYMENT_TERM_REQUIRED", "debe seleccionar una condición de pago")
	case errors.Is(err, domain.ErrPaymentFormRequired):
		return unprocessable(c, "PAYMENT_FORM_REQUIRED", "debe seleccionar una forma de pago")
	case errors.Is(err, domain.ErrPaymentMismatch):
		return unprocessable(c, "PAYMENT_MISMATCH", "la distribución de pagos no cuadra con el total")
	case errors.Is(err, domain.ErrInvalidInput):
		return unprocessable(c, "VALIDATION", "hay líneas del carrito con precio o cantidad inválidos")
	case errors.Is(err, domain.ErrNotFound):
		return unprocessable(c, "CLIENT_NOT_FOUND", "el cliente no existe en el ERP")
	case errors.Is(err, domain.ErrCheckoutInProgress):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CHECKOUT_IN_PROGRESS", Message: "hay un checkout en curso con esa clave, espere el resultado"})
	case errors.Is(err, domain.ErrUpstream):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "ERP_UNAVAILABLE", Message: "el ERP no está disponible, la venta NO fue creada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func unprocessable(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
