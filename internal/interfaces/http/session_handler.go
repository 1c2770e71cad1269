package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/decima-pos/internal/application/dto"
	"github.com/jhoicas/decima-pos/internal/application/session"
	"github.com/jhoicas/decima-pos/internal/domain"
)

// SessionHandler maneja las preferencias de caja del usuario (protegido).
type SessionHandler struct {
	uc *session.SessionUseCase
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(uc *session.SessionUseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// GetSalePoint godoc
// @Summary      Punto de venta recordado del usuario
// @Tags         session
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalePointUpdateRequest
// @Router       /api/session/sale-point [get]
func (h *SessionHandler) GetSalePoint(c *fiber.Ctx) error {
	salePointID, err := h.uc.SalePoint(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SalePointUpdateRequest{SalePointID: salePointID})
}

// SetSalePoint godoc
// @Summary      Guardar el punto de venta del usuario
// @Tags         session
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalePointUpdateRequest  true  "sale_point_id"
// @Success      200   {object}  dto.SalePointUpdateRequest
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/session/sale-point [put]
func (h *SessionHandler) SetSalePoint(c *fiber.Ctx) error {
	var in dto.SalePointUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetSalePoint(c.UserContext(), GetUserID(c), in.SalePointID); err != nil {
		if errors.Is(err, domain.ErrSalePointRequired) {
			return unprocessable(c, "SALE_POINT_INVALID", "el punto de venta no existe")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(in)
}
