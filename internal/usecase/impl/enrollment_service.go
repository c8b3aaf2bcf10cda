package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	deliverycontext "perk/internal/delivery/context"
	"perk/internal/domain/entity"
	domainerrors "perk/internal/domain/errors"
	"perk/internal/domain/repository"
	"perk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// enrollmentService implements the EnrollmentUsecase interface.
type enrollmentService struct {
	txManager      repository.TransactionManager
	approvalRepo   repository.ApprovalRepository
	accountRepo    repository.AccountRepository
	businessRepo   repository.BusinessRepository
	customerRepo   repository.CustomerRepository
	programRepo    repository.ProgramRepository
	enrollmentRepo repository.EnrollmentRepository
	cardRepo       repository.CardRepository
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// EnrollmentServiceParams holds dependencies for EnrollmentService, injected by Fx.
type EnrollmentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ApprovalRepo   repository.ApprovalRepository
	AccountRepo    repository.AccountRepository
	BusinessRepo   repository.BusinessRepository
	CustomerRepo   repository.CustomerRepository
	ProgramRepo    repository.ProgramRepository
	EnrollmentRepo repository.EnrollmentRepository
	CardRepo       repository.CardRepository
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NewEnrollmentService is the constructor for enrollmentService.
func NewEnrollmentService(params EnrollmentServiceParams) usecase.EnrollmentUsecase {
	return &enrollmentService{
		txManager:      params.TxManager,
		approvalRepo:   params.ApprovalRepo,
		accountRepo:    params.AccountRepo,
		businessRepo:   params.BusinessRepo,
		customerRepo:   params.CustomerRepo,
		programRepo:    params.ProgramRepo,
		enrollmentRepo: params.EnrollmentRepo,
		cardRepo:       params.CardRepo,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

func (srv *enrollmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestEnrollment creates a PENDING approval request on behalf of a business
// and notifies the customer. A still-open request for the same parties is
// reused, and the notification layer's dedup window keeps repeated invitations
// from stacking push messages.
func (srv *enrollmentService) RequestEnrollment(ctx context.Context, input *usecase.RequestEnrollmentInput) (*entity.ApprovalRequest, error) {
	business, err := srv.businessRepo.FindByID(ctx, input.BusinessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	program, err := srv.programRepo.FindByID(ctx, input.ProgramID)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return nil, domainerrors.ErrProgramNotFound
		}

		return nil, errors.Wrap(err, "failed to find program")
	}

	if program.BusinessID != input.BusinessID {
		return nil, domainerrors.ErrForbidden
	}

	if !program.IsActive {
		return nil, domainerrors.ErrProgramInactive
	}

	// The invited identity only has to exist in the account system. The
	// customer row is materialized later, when an approval actually needs it.
	if _, err := srv.accountRepo.FindByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	enrollment, err := srv.enrollmentRepo.FindByCustomerAndProgram(ctx, input.CustomerID, input.ProgramID)
	if err != nil && !errors.Is(err, repository.ErrEnrollmentNotFound) {
		return nil, errors.Wrap(err, "failed to find enrollment")
	}
	if enrollment != nil && enrollment.Status == entity.EnrollmentStatusActive {
		return nil, domainerrors.ErrConflict
	}

	subjects := entity.NotificationSubjects{
		CustomerID: input.CustomerID,
		BusinessID: input.BusinessID,
		ProgramID:  input.ProgramID,
	}

	// Reuse the open request if the customer has not decided yet.
	if existing, err := srv.approvalRepo.FindPendingByParties(ctx, input.CustomerID, input.BusinessID, input.ProgramID); err == nil {
		srv.emit(ctx, input.CustomerID, subjects, entity.EnrollmentRequestPayload{
			ApprovalRequestID: existing.ID,
			BusinessName:      business.Name,
			ProgramName:       program.Name,
		}, true)

		return existing, nil
	} else if !errors.Is(err, repository.ErrApprovalNotFound) {
		return nil, errors.Wrap(err, "failed to find pending approval request")
	}

	request := &entity.ApprovalRequest{
		ID:          uuid.New(),
		CustomerID:  input.CustomerID,
		BusinessID:  input.BusinessID,
		ProgramID:   input.ProgramID,
		Status:      entity.ApprovalStatusPending,
		RequestedAt: time.Now(),
	}

	notificationID, err := srv.notificationUC.EmitOrMerge(ctx, input.CustomerID, subjects, entity.EnrollmentRequestPayload{
		ApprovalRequestID: request.ID,
		BusinessName:      business.Name,
		ProgramName:       program.Name,
	}, true)
	if err != nil {
		// The request is still created; the customer just will not get the
		// push until the business retries.
		srv.log(ctx).Warn("Failed to emit enrollment request notification",
			slog.Any("requestID", request.ID),
			slog.Any("error", err),
		)
	} else {
		request.NotificationID = &notificationID
	}

	if err := srv.approvalRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create approval request")
	}

	srv.log(ctx).Info("Enrollment requested",
		slog.Any("requestID", request.ID),
		slog.Any("customerID", input.CustomerID),
		slog.Any("programID", input.ProgramID),
	)

	return request, nil
}

// ResolveApproval processes a customer's decision on an approval request.
//
// The transition from PENDING to a terminal status happens exactly once. A
// replay with the same decision returns the stored outcome (including the
// provisioned card id); a replay with the opposite decision is a conflict.
// Everything an approval produces (customer row, relation, enrollment, card,
// outcome pointer) is committed in one transaction, so a crash mid-way leaves
// the request PENDING and fully retryable.
func (srv *enrollmentService) ResolveApproval(ctx context.Context, requestID uuid.UUID, decision entity.ApprovalDecision) (*usecase.ResolveApprovalOutput, error) {
	request, err := srv.approvalRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrApprovalNotFound) {
			return nil, domainerrors.ErrApprovalNotFound
		}

		return nil, errors.Wrap(err, "failed to find approval request")
	}

	if request.IsTerminal() {
		return replayOutcome(request, decision)
	}

	program, err := srv.programRepo.FindByID(ctx, request.ProgramID)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return nil, domainerrors.ErrProgramNotFound
		}

		return nil, errors.Wrap(err, "failed to find program")
	}

	output := &usecase.ResolveApprovalOutput{Status: decision.TerminalStatus()}

	var customerName string

	txErr := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		moved, err := factory.ApprovalRepo().TransitionFromPending(ctx, requestID, decision.TerminalStatus(), time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to transition approval request")
		}

		if !moved {
			// A concurrent resolver won the transition. Re-read and treat
			// this call as a replay against whatever it produced.
			settled, err := factory.ApprovalRepo().FindByID(ctx, requestID)
			if err != nil {
				return errors.Wrap(err, "failed to re-read approval request")
			}

			replay, err := replayOutcome(settled, decision)
			if err != nil {
				return err
			}

			*output = *replay

			return nil
		}

		if request.NotificationID != nil {
			if err := factory.NotificationRepo().MarkActioned(ctx, *request.NotificationID); err != nil &&
				!errors.Is(err, repository.ErrNotificationNotFound) {
				return errors.Wrap(err, "failed to mark request notification actioned")
			}
		}

		if decision == entity.DecisionDecline {
			name, err := srv.applyDecline(ctx, factory, request)
			if err != nil {
				return err
			}

			customerName = name

			return nil
		}

		cardID, name, err := srv.applyApproval(ctx, factory, request, program)
		if err != nil {
			return err
		}

		output.CardID = &cardID
		customerName = name

		return nil
	})
	if txErr != nil {
		var appErr domainerrors.AppError
		if errors.As(txErr, &appErr) {
			return nil, txErr
		}

		return nil, errors.Wrap(txErr, "resolve approval transaction failed")
	}

	srv.notifyResolution(ctx, request, program, decision, customerName, output.CardID)

	return output, nil
}

// applyApproval provisions the state an accepted enrollment needs. All writes
// run on the caller's transaction.
func (srv *enrollmentService) applyApproval(
	ctx context.Context,
	factory repository.RepositoryFactory,
	request *entity.ApprovalRequest,
	program *entity.Program,
) (uuid.UUID, string, error) {
	customer, err := srv.materializeCustomer(ctx, factory, request.CustomerID)
	if err != nil {
		return uuid.Nil, "", err
	}

	relation := &entity.BusinessRelation{
		ID:         uuid.New(),
		CustomerID: request.CustomerID,
		BusinessID: request.BusinessID,
		Status:     entity.RelationStatusActive,
	}
	if err := factory.RelationRepo().Upsert(ctx, relation); err != nil {
		return uuid.Nil, "", errors.Wrap(err, "failed to upsert business relation")
	}

	if err := srv.activateEnrollment(ctx, factory, request); err != nil {
		return uuid.Nil, "", err
	}

	card, err := srv.provisionCard(ctx, factory, request)
	if err != nil {
		return uuid.Nil, "", err
	}

	if err := factory.ApprovalRepo().SetCardID(ctx, request.ID, card.ID); err != nil {
		return uuid.Nil, "", errors.Wrap(err, "failed to record provisioned card on request")
	}

	srv.log(ctx).Info("Enrollment approved",
		slog.Any("requestID", request.ID),
		slog.Any("cardID", card.ID),
		slog.String("cardNumber", card.Number),
		slog.String("program", program.Name),
	)

	return card.ID, customer.Name, nil
}

// applyDecline records the rejection. No customer row is materialized for a
// declined invitation; only state that already exists is downgraded.
func (srv *enrollmentService) applyDecline(
	ctx context.Context,
	factory repository.RepositoryFactory,
	request *entity.ApprovalRequest,
) (string, error) {
	customerName := ""

	customer, err := factory.CustomerRepo().FindByID(ctx, request.CustomerID)
	if err != nil && !errors.Is(err, repository.ErrCustomerNotFound) {
		return "", errors.Wrap(err, "failed to find customer")
	}
	if customer != nil {
		customerName = customer.Name

		enrollment, err := factory.EnrollmentRepo().FindByCustomerAndProgram(ctx, request.CustomerID, request.ProgramID)
		if err != nil && !errors.Is(err, repository.ErrEnrollmentNotFound) {
			return "", errors.Wrap(err, "failed to find enrollment")
		}
		if enrollment != nil && enrollment.Status != entity.EnrollmentStatusActive {
			if err := factory.EnrollmentRepo().UpdateStatus(ctx, enrollment.ID, entity.EnrollmentStatusDeclined); err != nil {
				return "", errors.Wrap(err, "failed to decline enrollment")
			}
		}
	}

	// An ACTIVE relation from another program outlives a single declined
	// invitation.
	relation, err := factory.RelationRepo().FindByCustomerAndBusiness(ctx, request.CustomerID, request.BusinessID)
	if err != nil && !errors.Is(err, repository.ErrRelationNotFound) {
		return "", errors.Wrap(err, "failed to find business relation")
	}
	if relation == nil || relation.Status != entity.RelationStatusActive {
		declined := &entity.BusinessRelation{
			ID:         uuid.New(),
			CustomerID: request.CustomerID,
			BusinessID: request.BusinessID,
			Status:     entity.RelationStatusDeclined,
		}
		if err := factory.RelationRepo().Upsert(ctx, declined); err != nil {
			return "", errors.Wrap(err, "failed to upsert business relation")
		}
	}

	srv.log(ctx).Info("Enrollment declined", slog.Any("requestID", request.ID))

	return customerName, nil
}

// materializeCustomer returns the customer row, creating it from the account
// record on first approval.
func (srv *enrollmentService) materializeCustomer(
	ctx context.Context,
	factory repository.RepositoryFactory,
	customerID uuid.UUID,
) (*entity.Customer, error) {
	customer, err := factory.CustomerRepo().FindByID(ctx, customerID)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, errors.Wrap(err, "failed to find customer")
	}

	account, err := factory.AccountRepo().FindByID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account for customer materialization")
	}

	customer = &entity.Customer{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
	}
	if err := factory.CustomerRepo().Create(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return customer, nil
}

// activateEnrollment ensures a single ACTIVE enrollment row for the request's
// (customer, program) pair.
func (srv *enrollmentService) activateEnrollment(
	ctx context.Context,
	factory repository.RepositoryFactory,
	request *entity.ApprovalRequest,
) error {
	enrollment, err := factory.EnrollmentRepo().FindByCustomerAndProgram(ctx, request.CustomerID, request.ProgramID)
	if err == nil {
		if enrollment.Status == entity.EnrollmentStatusActive {
			return nil
		}

		if err := factory.EnrollmentRepo().UpdateStatus(ctx, enrollment.ID, entity.EnrollmentStatusActive); err != nil {
			return errors.Wrap(err, "failed to activate enrollment")
		}

		return nil
	}
	if !errors.Is(err, repository.ErrEnrollmentNotFound) {
		return errors.Wrap(err, "failed to find enrollment")
	}

	now := time.Now()
	enrollment = &entity.Enrollment{
		ID:             uuid.New(),
		CustomerID:     request.CustomerID,
		ProgramID:      request.ProgramID,
		Status:         entity.EnrollmentStatusActive,
		EnrolledAt:     now,
		LastActivityAt: now,
	}

	if err := factory.EnrollmentRepo().Create(ctx, enrollment); err != nil {
		// The unique (customer_id, program_id) constraint caught a
		// concurrent insert; the surviving row is the one we wanted.
		if errors.Is(err, repository.ErrEnrollmentExists) {
			return nil
		}

		return errors.Wrap(err, "failed to create enrollment")
	}

	return nil
}

// provisionCard ensures exactly one card for the request's (customer, program)
// pair, creating it with a fresh number on first approval.
func (srv *enrollmentService) provisionCard(
	ctx context.Context,
	factory repository.RepositoryFactory,
	request *entity.ApprovalRequest,
) (*entity.Card, error) {
	card, err := factory.CardRepo().FindByCustomerAndProgram(ctx, request.CustomerID, request.ProgramID)
	if err == nil {
		return card, nil
	}
	if !errors.Is(err, repository.ErrCardNotFound) {
		return nil, errors.Wrap(err, "failed to find card")
	}

	card = &entity.Card{
		ID:         uuid.New(),
		CustomerID: request.CustomerID,
		ProgramID:  request.ProgramID,
		Number:     generateCardNumber(),
		Points:     0,
		Tier:       entity.CardTierStandard,
		IsActive:   true,
	}

	if err := factory.CardRepo().Create(ctx, card); err != nil {
		if errors.Is(err, repository.ErrCardExists) {
			existing, err := factory.CardRepo().FindByCustomerAndProgram(ctx, request.CustomerID, request.ProgramID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to re-read card after duplicate insert")
			}

			return existing, nil
		}

		return nil, errors.Wrap(err, "failed to create card")
	}

	return card, nil
}

// notifyResolution emits the post-commit notifications for a settled request.
// Emission failures are logged; the committed resolution stands either way.
func (srv *enrollmentService) notifyResolution(
	ctx context.Context,
	request *entity.ApprovalRequest,
	program *entity.Program,
	decision entity.ApprovalDecision,
	customerName string,
	cardID *uuid.UUID,
) {
	subjects := entity.NotificationSubjects{
		CustomerID: request.CustomerID,
		BusinessID: request.BusinessID,
		ProgramID:  request.ProgramID,
	}

	srv.emit(ctx, request.BusinessID, subjects, entity.EnrollmentDecisionPayload{
		ApprovalRequestID: request.ID,
		Decision:          decision,
		CustomerName:      customerName,
		ProgramName:       program.Name,
	}, false)

	if decision != entity.DecisionApprove || cardID == nil {
		return
	}

	card, err := srv.cardRepo.FindByID(ctx, *cardID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load card for notification",
			slog.Any("cardID", *cardID),
			slog.Any("error", err),
		)

		return
	}

	srv.emit(ctx, request.CustomerID, subjects, entity.CardReadyPayload{
		CardID:      card.ID,
		CardNumber:  card.Number,
		ProgramName: program.Name,
	}, false)
}

func (srv *enrollmentService) emit(
	ctx context.Context,
	recipientID uuid.UUID,
	subjects entity.NotificationSubjects,
	payload entity.NotificationPayload,
	requiresAction bool,
) {
	if _, err := srv.notificationUC.EmitOrMerge(ctx, recipientID, subjects, payload, requiresAction); err != nil {
		srv.log(ctx).Warn("Failed to emit notification",
			slog.String("kind", string(payload.Kind())),
			slog.Any("error", err),
		)
	}
}

// replayOutcome maps a terminal request plus the caller's decision to either
// the stored outcome or a conflict.
func replayOutcome(request *entity.ApprovalRequest, decision entity.ApprovalDecision) (*usecase.ResolveApprovalOutput, error) {
	if request.Status != decision.TerminalStatus() {
		return nil, domainerrors.ErrDecisionConflict
	}

	return &usecase.ResolveApprovalOutput{
		Status: request.Status,
		CardID: request.CardID,
	}, nil
}

// generateCardNumber builds a random, human-readable card number. Uniqueness
// is enforced by the database; a collision on 12 random digits fails the
// insert and surfaces as a retryable error.
func generateCardNumber() string {
	const digits = "0123456789"

	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "PC-" + uuid.NewString()
	}

	for i := range buf {
		buf[i] = digits[int(buf[i])%len(digits)]
	}

	return "PC-" + string(buf[:4]) + "-" + string(buf[4:8]) + "-" + string(buf[8:])
}
