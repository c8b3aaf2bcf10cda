package handler

import (
	"log/slog"
	"net/http"

	deliverymiddleware "perk/internal/delivery/http/middleware"
	"perk/internal/delivery/http/response"
	domainerrors "perk/internal/domain/errors"
	"perk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultLedgerLimit = 20
	maxLedgerLimit     = 100
)

// PointsHandler holds dependencies for point-award handlers.
type PointsHandler struct {
	uc     usecase.PointsUsecase
	logger *slog.Logger
}

// NewPointsHandler is the constructor for PointsHandler, injected by Fx.
func NewPointsHandler(uc usecase.PointsUsecase, logger *slog.Logger) *PointsHandler {
	return &PointsHandler{
		uc:     uc,
		logger: logger,
	}
}

type awardPointsRequest struct {
	CardNumber     string `json:"card_number"`
	CardID         string `json:"card_id"`
	Points         int64  `json:"points" validate:"required,gt=0"`
	IdempotencyKey string `json:"idempotency_key"`
}

// AwardPoints handles a manual point award by a business.
func (h *PointsHandler) AwardPoints(c echo.Context) error {
	actorID, ok := deliverymiddleware.AccountID(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	var req awardPointsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid award input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.AwardPointsInput{
		CardNumber:     req.CardNumber,
		Points:         req.Points,
		Source:         usecase.AwardSourceManual,
		ActorID:        actorID,
		IdempotencyKey: h.idempotencyKey(c, req.IdempotencyKey),
	}

	if req.CardID != "" {
		cardID, err := uuid.Parse(req.CardID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid card id")
		}

		input.CardID = cardID
	}

	output, err := h.uc.AwardPoints(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Points awarded")
}

type scanRequest struct {
	Token          string `json:"token" validate:"required"`
	IdempotencyKey string `json:"idempotency_key"`
}

// Scan handles a QR-scan award: the token is verified and the program's
// per-scan points are applied to the embedded card.
func (h *PointsHandler) Scan(c echo.Context) error {
	actorID, ok := deliverymiddleware.AccountID(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	var req scanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.AwardFromScan(c.Request().Context(), req.Token, actorID, h.idempotencyKey(c, req.IdempotencyKey))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Scan processed")
}

// ListCardLedger returns the caller's point history on one card, newest first.
func (h *PointsHandler) ListCardLedger(c echo.Context) error {
	requesterID, ok := deliverymiddleware.AccountID(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid card id")
	}

	limit := queryInt(c, "limit", defaultLedgerLimit)
	if limit <= 0 || limit > maxLedgerLimit {
		limit = defaultLedgerLimit
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	entries, err := h.uc.ListCardLedger(c.Request().Context(), cardID, requesterID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Ledger retrieved")
}

// idempotencyKey prefers the body field and falls back to the standard
// Idempotency-Key header.
func (h *PointsHandler) idempotencyKey(c echo.Context, bodyKey string) string {
	if bodyKey != "" {
		return bodyKey
	}

	return c.Request().Header.Get("Idempotency-Key")
}
