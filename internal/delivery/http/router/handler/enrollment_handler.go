package handler

import (
	"log/slog"
	"net/http"

	deliverymiddleware "perk/internal/delivery/http/middleware"
	"perk/internal/delivery/http/response"
	"perk/internal/domain/entity"
	domainerrors "perk/internal/domain/errors"
	"perk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EnrollmentHandler holds dependencies for enrollment and approval handlers.
type EnrollmentHandler struct {
	uc     usecase.EnrollmentUsecase
	logger *slog.Logger
}

// NewEnrollmentHandler is the constructor for EnrollmentHandler, injected by Fx.
func NewEnrollmentHandler(uc usecase.EnrollmentUsecase, logger *slog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		uc:     uc,
		logger: logger,
	}
}

type requestEnrollmentRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	ProgramID  string `json:"program_id" validate:"required,uuid"`
}

// RequestEnrollment handles a business inviting a customer into a program.
// The business id comes from the access token, not the body.
func (h *EnrollmentHandler) RequestEnrollment(c echo.Context) error {
	businessID, ok := deliverymiddleware.AccountID(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	var req requestEnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enrollment request input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid customer id")
	}

	programID, err := uuid.Parse(req.ProgramID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid program id")
	}

	request, err := h.uc.RequestEnrollment(c.Request().Context(), &usecase.RequestEnrollmentInput{
		BusinessID: businessID,
		CustomerID: customerID,
		ProgramID:  programID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Enrollment requested")
}

type respondApprovalRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVE DECLINE"`
}

// RespondApproval handles the customer's decision on an approval request.
// Replays with the same decision return the stored outcome.
func (h *EnrollmentHandler) RespondApproval(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid approval request id")
	}

	var req respondApprovalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval decision input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.ResolveApproval(c.Request().Context(), requestID, entity.ApprovalDecision(req.Decision))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Approval resolved")
}
