package handler

import (
	"log/slog"
	"net/http"

	"perk/internal/delivery/http/response"
	"perk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QRHandler holds dependencies for QR token handlers.
type QRHandler struct {
	uc     usecase.QRUsecase
	logger *slog.Logger
}

// NewQRHandler is the constructor for QRHandler, injected by Fx.
func NewQRHandler(uc usecase.QRUsecase, logger *slog.Logger) *QRHandler {
	return &QRHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCardQR renders a fresh signed scan token for the card as a PNG image.
func (h *QRHandler) GetCardQR(c echo.Context) error {
	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid card id")
	}

	png, err := h.uc.GenerateCardQR(c.Request().Context(), cardID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type validateTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// ValidateToken verifies a scan token without awarding points, so scanner
// apps can show the card before committing the scan.
func (h *QRHandler) ValidateToken(c echo.Context) error {
	var req validateTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payload, err := h.uc.ValidateToken(c.Request().Context(), req.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payload, "Token valid")
}
