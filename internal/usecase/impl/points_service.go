package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"perk/config"
	deliverycontext "perk/internal/delivery/context"
	"perk/internal/domain/entity"
	domainerrors "perk/internal/domain/errors"
	"perk/internal/domain/repository"
	"perk/internal/domain/service"
	"perk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// errAwardReplayed aborts the award transaction when the idempotency key
// turns out to be already applied. The rollback it causes discards nothing.
var errAwardReplayed = errors.New("award already applied")

// pointsService implements the PointsUsecase interface.
type pointsService struct {
	txManager      repository.TransactionManager
	cardRepo       repository.CardRepository
	programRepo    repository.ProgramRepository
	enrollmentRepo repository.EnrollmentRepository
	ledgerRepo     repository.LedgerRepository
	signer         service.QRTokenSigner
	rateCounter    service.RateCounter
	notificationUC usecase.NotificationUsecase
	rateLimit      int64
	rateWindow     time.Duration
	logger         *slog.Logger
}

// PointsServiceParams holds dependencies for PointsService, injected by Fx.
type PointsServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CardRepo       repository.CardRepository
	ProgramRepo    repository.ProgramRepository
	EnrollmentRepo repository.EnrollmentRepository
	LedgerRepo     repository.LedgerRepository
	Signer         service.QRTokenSigner
	RateCounter    service.RateCounter
	NotificationUC usecase.NotificationUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPointsService is the constructor for pointsService.
func NewPointsService(params PointsServiceParams) usecase.PointsUsecase {
	return &pointsService{
		txManager:      params.TxManager,
		cardRepo:       params.CardRepo,
		programRepo:    params.ProgramRepo,
		enrollmentRepo: params.EnrollmentRepo,
		ledgerRepo:     params.LedgerRepo,
		signer:         params.Signer,
		rateCounter:    params.RateCounter,
		notificationUC: params.NotificationUC,
		rateLimit:      int64(params.Config.RateLimit.Limit),
		rateWindow:     params.Config.RateLimit.Window,
		logger:         params.Logger,
	}
}

func (srv *pointsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AwardPoints applies one positive point change to a card.
//
// The card's Points column is incremented exactly once per idempotency key;
// the audit entry, the balance increment and the enrollment mirror commit in
// one transaction. A replayed key is detected either by the pre-check or by
// the ledger's unique (card_id, reference_id) constraint, and reports the
// current balance with Applied=false.
func (srv *pointsService) AwardPoints(ctx context.Context, input *usecase.AwardPointsInput) (*usecase.AwardPointsOutput, error) {
	if input.Points <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("points must be positive")
	}

	if err := srv.throttle(ctx, input.ActorID); err != nil {
		return nil, err
	}

	card, err := srv.resolveCard(ctx, input)
	if err != nil {
		return nil, err
	}

	if !card.IsActive {
		return nil, domainerrors.ErrCardInactive
	}

	program, err := srv.programRepo.FindByID(ctx, card.ProgramID)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return nil, domainerrors.ErrProgramNotFound
		}

		return nil, errors.Wrap(err, "failed to find program")
	}

	if !program.IsActive {
		return nil, domainerrors.ErrProgramInactive
	}

	if input.ActorID != program.BusinessID {
		return nil, domainerrors.ErrForbidden
	}

	enrollment, err := srv.enrollmentRepo.FindByCustomerAndProgram(ctx, card.CustomerID, card.ProgramID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return nil, domainerrors.ErrNotEnrolled
		}

		return nil, errors.Wrap(err, "failed to find enrollment")
	}

	if enrollment.Status != entity.EnrollmentStatusActive {
		return nil, domainerrors.ErrNotEnrolled
	}

	referenceID := input.IdempotencyKey
	if referenceID == "" {
		referenceID = uuid.NewString()
	}

	// Cheap replay check before opening a transaction. The unique ledger
	// constraint inside the transaction is the authoritative one.
	if _, err := srv.ledgerRepo.FindByCardAndReference(ctx, card.ID, referenceID); err == nil {
		return srv.replayedOutput(ctx, card.ID)
	} else if !errors.Is(err, repository.ErrPointEntryNotFound) {
		return nil, errors.Wrap(err, "failed to check award reference")
	}

	var newBalance int64

	txErr := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		entry := &entity.PointEntry{
			ID:          uuid.New(),
			CardID:      card.ID,
			Type:        entity.PointEntryTypeEarn,
			Delta:       input.Points,
			Description: fmt.Sprintf("award via %s", input.Source),
			Source:      input.Source,
			ReferenceID: referenceID,
		}
		if err := factory.LedgerRepo().Create(ctx, entry); err != nil {
			if errors.Is(err, repository.ErrDuplicateReference) {
				return errAwardReplayed
			}

			return errors.Wrap(err, "failed to append ledger entry")
		}

		balance, err := factory.CardRepo().IncrementPoints(ctx, card.ID, input.Points)
		if err != nil {
			return errors.Wrap(err, "failed to increment card balance")
		}

		newBalance = balance

		// The enrollment counter only ever mirrors the card balance, so a
		// lost race here cannot drift it.
		if err := factory.EnrollmentRepo().MirrorPoints(ctx, enrollment.ID, balance, time.Now()); err != nil {
			return errors.Wrap(err, "failed to mirror enrollment points")
		}

		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, errAwardReplayed) {
			return srv.replayedOutput(ctx, card.ID)
		}

		var appErr domainerrors.AppError
		if errors.As(txErr, &appErr) {
			return nil, txErr
		}

		return nil, errors.Wrap(txErr, "award points transaction failed")
	}

	srv.log(ctx).Info("Points awarded",
		slog.Any("cardID", card.ID),
		slog.Int64("points", input.Points),
		slog.Int64("newBalance", newBalance),
		slog.String("source", input.Source),
	)

	subjects := entity.NotificationSubjects{
		CustomerID: card.CustomerID,
		BusinessID: program.BusinessID,
		ProgramID:  card.ProgramID,
	}
	if _, err := srv.notificationUC.EmitOrMerge(ctx, card.CustomerID, subjects, entity.PointsAwardedPayload{
		CardID:      card.ID,
		Points:      input.Points,
		NewBalance:  newBalance,
		ProgramName: program.Name,
	}, false); err != nil {
		srv.log(ctx).Warn("Failed to emit points awarded notification",
			slog.Any("cardID", card.ID),
			slog.Any("error", err),
		)
	}

	return &usecase.AwardPointsOutput{
		CardID:     card.ID,
		NewBalance: newBalance,
		Applied:    true,
	}, nil
}

// AwardFromScan verifies a signed scan token and awards the program's
// per-scan points to the card it names.
func (srv *pointsService) AwardFromScan(ctx context.Context, token string, actorID uuid.UUID, idempotencyKey string) (*usecase.AwardPointsOutput, error) {
	payload, err := srv.signer.Verify(token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSignatureExpired):
			return nil, domainerrors.ErrSignatureExpired
		case errors.Is(err, service.ErrSignatureInvalid):
			return nil, domainerrors.ErrSignatureInvalid
		default:
			return nil, errors.Wrap(err, "failed to verify scan token")
		}
	}

	card, err := srv.cardRepo.FindByID(ctx, payload.CardID)
	if err != nil {
		if !errors.Is(err, repository.ErrCardNotFound) {
			return nil, errors.Wrap(err, "failed to find card")
		}

		// Enrollment rows written elsewhere in the platform may predate
		// their card. An ACTIVE enrollment without a card is repaired here
		// instead of failing the scan.
		card, err = srv.provisionScannedCard(ctx, payload)
		if err != nil {
			return nil, err
		}
	}

	// A token minted for one program must not award another.
	if card.ProgramID != payload.ProgramID {
		return nil, domainerrors.ErrSignatureInvalid
	}

	program, err := srv.programRepo.FindByID(ctx, card.ProgramID)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return nil, domainerrors.ErrProgramNotFound
		}

		return nil, errors.Wrap(err, "failed to find program")
	}

	return srv.AwardPoints(ctx, &usecase.AwardPointsInput{
		CardID:         card.ID,
		Points:         program.PointsPerScan,
		Source:         usecase.AwardSourceQRScan,
		ActorID:        actorID,
		IdempotencyKey: idempotencyKey,
	})
}

// provisionScannedCard creates the missing card for a scanned payload whose
// enrollment is ACTIVE, with the same lookup-before-insert the approval flow
// uses. Anything other than an ACTIVE enrollment stays an award failure.
func (srv *pointsService) provisionScannedCard(ctx context.Context, payload *service.ScanPayload) (*entity.Card, error) {
	enrollment, err := srv.enrollmentRepo.FindByCustomerAndProgram(ctx, payload.CustomerID, payload.ProgramID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return nil, domainerrors.ErrNotEnrolled
		}

		return nil, errors.Wrap(err, "failed to find enrollment")
	}

	if enrollment.Status != entity.EnrollmentStatusActive {
		return nil, domainerrors.ErrNotEnrolled
	}

	var card *entity.Card

	txErr := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		existing, err := factory.CardRepo().FindByCustomerAndProgram(ctx, payload.CustomerID, payload.ProgramID)
		if err == nil {
			card = existing

			return nil
		}
		if !errors.Is(err, repository.ErrCardNotFound) {
			return errors.Wrap(err, "failed to find card")
		}

		card = &entity.Card{
			ID:         uuid.New(),
			CustomerID: payload.CustomerID,
			ProgramID:  payload.ProgramID,
			Number:     generateCardNumber(),
			Points:     0,
			Tier:       entity.CardTierStandard,
			IsActive:   true,
		}

		if err := factory.CardRepo().Create(ctx, card); err != nil {
			// The unique (customer_id, program_id) constraint caught a
			// concurrent insert; the surviving row is the one we wanted.
			if errors.Is(err, repository.ErrCardExists) {
				existing, err := factory.CardRepo().FindByCustomerAndProgram(ctx, payload.CustomerID, payload.ProgramID)
				if err != nil {
					return errors.Wrap(err, "failed to re-read card after duplicate insert")
				}

				card = existing

				return nil
			}

			return errors.Wrap(err, "failed to create card")
		}

		return nil
	})
	if txErr != nil {
		var appErr domainerrors.AppError
		if errors.As(txErr, &appErr) {
			return nil, txErr
		}

		return nil, errors.Wrap(txErr, "provision card transaction failed")
	}

	srv.log(ctx).Info("Card provisioned on scan",
		slog.Any("cardID", card.ID),
		slog.Any("customerID", payload.CustomerID),
		slog.Any("programID", payload.ProgramID),
	)

	return card, nil
}

// ListCardLedger returns a page of a card's audit entries. A requester who
// does not hold the card gets ErrCardNotFound, so the endpoint does not
// reveal which card ids exist.
func (srv *pointsService) ListCardLedger(ctx context.Context, cardID, requesterID uuid.UUID, limit, offset int) ([]*entity.PointEntry, error) {
	card, err := srv.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card")
	}

	if card.CustomerID != requesterID {
		return nil, domainerrors.ErrCardNotFound
	}

	entries, err := srv.ledgerRepo.ListByCard(ctx, cardID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ledger entries")
	}

	return entries, nil
}

// throttle enforces the fixed-window per-actor award limit.
func (srv *pointsService) throttle(ctx context.Context, actorID uuid.UUID) error {
	count, err := srv.rateCounter.Increment(ctx, "award:"+actorID.String(), srv.rateWindow)
	if err != nil {
		return errors.Wrap(err, "failed to advance rate counter")
	}

	if count > srv.rateLimit {
		srv.log(ctx).Warn("Award rate limit exceeded",
			slog.Any("actorID", actorID),
			slog.Int64("count", count),
		)

		return domainerrors.ErrRateLimitExceeded
	}

	return nil
}

// replayedOutput reports the current balance for an already-applied key.
func (srv *pointsService) replayedOutput(ctx context.Context, cardID uuid.UUID) (*usecase.AwardPointsOutput, error) {
	card, err := srv.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read card after replay")
	}

	return &usecase.AwardPointsOutput{
		CardID:     card.ID,
		NewBalance: card.Points,
		Applied:    false,
	}, nil
}

// resolveCard loads the target card by id or number.
func (srv *pointsService) resolveCard(ctx context.Context, input *usecase.AwardPointsInput) (*entity.Card, error) {
	var (
		card *entity.Card
		err  error
	)

	switch {
	case input.CardID != uuid.Nil:
		card, err = srv.cardRepo.FindByID(ctx, input.CardID)
	case input.CardNumber != "":
		card, err = srv.cardRepo.FindByNumber(ctx, input.CardNumber)
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("card id or card number is required")
	}

	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card")
	}

	return card, nil
}
