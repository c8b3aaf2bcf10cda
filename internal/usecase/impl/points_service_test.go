package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"perk/config"
	"perk/internal/domain/entity"
	domainerrors "perk/internal/domain/errors"
	"perk/internal/domain/repository"
	"perk/internal/domain/service"
	mockRepo "perk/internal/mocks/repository"
	mockSvc "perk/internal/mocks/service"
	mockUC "perk/internal/mocks/usecase"
	"perk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testRateLimit = 5

type pointsServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	cardRepo       *mockRepo.MockCardRepository
	programRepo    *mockRepo.MockProgramRepository
	enrollmentRepo *mockRepo.MockEnrollmentRepository
	ledgerRepo     *mockRepo.MockLedgerRepository
	signer         *mockSvc.MockQRTokenSigner
	rateCounter    *mockSvc.MockRateCounter
	notificationUC *mockUC.MockNotificationUsecase
}

func createTestPointsService(t *testing.T) (usecase.PointsUsecase, *pointsServiceMocks) {
	m := &pointsServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		cardRepo:       mockRepo.NewMockCardRepository(t),
		programRepo:    mockRepo.NewMockProgramRepository(t),
		enrollmentRepo: mockRepo.NewMockEnrollmentRepository(t),
		ledgerRepo:     mockRepo.NewMockLedgerRepository(t),
		signer:         mockSvc.NewMockQRTokenSigner(t),
		rateCounter:    mockSvc.NewMockRateCounter(t),
		notificationUC: mockUC.NewMockNotificationUsecase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewPointsService(PointsServiceParams{
		TxManager:      m.txManager,
		CardRepo:       m.cardRepo,
		ProgramRepo:    m.programRepo,
		EnrollmentRepo: m.enrollmentRepo,
		LedgerRepo:     m.ledgerRepo,
		Signer:         m.signer,
		RateCounter:    m.rateCounter,
		NotificationUC: m.notificationUC,
		Config: &config.Config{
			RateLimit: &config.RateLimitConfig{Limit: testRateLimit, Window: time.Minute},
		},
		Logger: logger,
	})

	return service, m
}

func (m *pointsServiceMocks) expectTransaction(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().LedgerRepo().Return(m.ledgerRepo).Maybe()
	factory.EXPECT().CardRepo().Return(m.cardRepo).Maybe()
	factory.EXPECT().EnrollmentRepo().Return(m.enrollmentRepo).Maybe()

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

type awardFixture struct {
	card       *entity.Card
	program    *entity.Program
	enrollment *entity.Enrollment
}

func newAwardFixture() *awardFixture {
	businessID := uuid.New()
	customerID := uuid.New()
	programID := uuid.New()

	return &awardFixture{
		card: &entity.Card{
			ID:         uuid.New(),
			CustomerID: customerID,
			ProgramID:  programID,
			Number:     "PC-0000-1111-2222",
			Points:     10,
			IsActive:   true,
		},
		program: &entity.Program{
			ID:            programID,
			BusinessID:    businessID,
			Name:          "飲料集點",
			PointsPerScan: 1,
			IsActive:      true,
		},
		enrollment: &entity.Enrollment{
			ID:         uuid.New(),
			CustomerID: customerID,
			ProgramID:  programID,
			Status:     entity.EnrollmentStatusActive,
			Points:     10,
		},
	}
}

func TestPointsService_AwardPoints_Success(t *testing.T) {
	service, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()

	m.rateCounter.EXPECT().Increment(ctx, "award:"+fx.program.BusinessID.String(), time.Minute).Return(1, nil)
	m.cardRepo.EXPECT().FindByID(ctx, fx.card.ID).Return(fx.card, nil)
	m.programRepo.EXPECT().FindByID(ctx, fx.program.ID).Return(fx.program, nil)
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, fx.card.CustomerID, fx.program.ID).Return(fx.enrollment, nil)
	m.ledgerRepo.EXPECT().FindByCardAndReference(ctx, fx.card.ID, "ref-1").Return(nil, repository.ErrPointEntryNotFound)
	m.expectTransaction(t)

	m.ledgerRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.cardRepo.EXPECT().IncrementPoints(ctx, fx.card.ID, int64(5)).Return(15, nil)
	m.enrollmentRepo.EXPECT().MirrorPoints(ctx, fx.enrollment.ID, int64(15), mock.Anything).Return(nil)
	m.notificationUC.EXPECT().EmitOrMerge(ctx, fx.card.CustomerID, mock.Anything, mock.Anything, false).Return(uuid.New(), nil)

	output, err := service.AwardPoints(ctx, &usecase.AwardPointsInput{
		CardID:         fx.card.ID,
		Points:         5,
		Source:         usecase.AwardSourceManual,
		ActorID:        fx.program.BusinessID,
		IdempotencyKey: "ref-1",
	})

	require.NoError(t, err)
	assert.Equal(t, fx.card.ID, output.CardID)
	assert.Equal(t, int64(15), output.NewBalance)
	assert.True(t, output.Applied)
}

func TestPointsService_AwardPoints_ReplayDetectedBeforeTransaction(t *testing.T) {
	service, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()

	m.rateCounter.EXPECT().Increment(ctx, mock.Anything, time.Minute).Return(1, nil)
	m.cardRepo.EXPECT().FindByID(ctx, fx.card.ID).Return(fx.card, nil)
	m.programRepo.EXPECT().FindByID(ctx, fx.program.ID).Return(fx.program, nil)
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, fx.card.CustomerID, fx.program.ID).Return(fx.enrollment, nil)
	m.ledgerRepo.EXPECT().FindByCardAndReference(ctx, fx.card.ID, "ref-1").
		Return(&entity.PointEntry{ID: uuid.New(), CardID: fx.card.ID, ReferenceID: "ref-1"}, nil)

	output, err := service.AwardPoints(ctx, &usecase.AwardPointsInput{
		CardID:         fx.card.ID,
		Points:         5,
		Source:         usecase.AwardSourceManual,
		ActorID:        fx.program.BusinessID,
		IdempotencyKey: "ref-1",
	})

	require.NoError(t, err)
	assert.False(t, output.Applied)
	assert.Equal(t, fx.card.Points, output.NewBalance)
}

func TestPointsService_AwardPoints_ReplayDetectedByLedgerConstraint(t *testing.T) {
	service, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()

	m.rateCounter.EXPECT().Increment(ctx, mock.Anything, time.Minute).Return(1, nil)
	m.cardRepo.EXPECT().FindByID(ctx, fx.card.ID).Return(fx.card, nil)
	m.programRepo.EXPECT().FindByID(ctx, fx.program.ID).Return(fx.program, nil)
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, fx.card.CustomerID, fx.program.ID).Return(fx.enrollment, nil)
	m.ledgerRepo.EXPECT().FindByCardAndReference(ctx, fx.card.ID, "ref-1").Return(nil, repository.ErrPointEntryNotFound)
	m.expectTransaction(t)

	// A concurrent award with the same key slipped in between the pre-check
	// and the insert.
	m.ledgerRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateReference)

	output, err := service.AwardPoints(ctx, &usecase.AwardPointsInput{
		CardID:         fx.card.ID,
		Points:         5,
		Source:         usecase.AwardSourceManual,
		ActorID:        fx.program.BusinessID,
		IdempotencyKey: "ref-1",
	})

	require.NoError(t, err)
	assert.False(t, output.Applied)
	assert.Equal(t, fx.card.Points, output.NewBalance)
}

func TestPointsService_AwardPoints_RejectsNonPositivePoints(t *testing.T) {
	service, _ := createTestPointsService(t)

	output, err := service.AwardPoints(context.Background(), &usecase.AwardPointsInput{
		CardID:  uuid.New(),
		Points:  0,
		ActorID: uuid.New(),
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPointsService_AwardPoints_RateLimitExceeded(t *testing.T) {
	service, m := createTestPointsService(t)

	ctx := context.Background()
	actorID := uuid.New()

	m.rateCounter.EXPECT().Increment(ctx, "award:"+actorID.String(), time.Minute).Return(testRateLimit+1, nil)

	_, err := service.AwardPoints(ctx, &usecase.AwardPointsInput{
		CardID:  uuid.New(),
		Points:  1,
		ActorID: actorID,
	})

	require.ErrorIs(t, err, domainerrors.ErrRateLimitExceeded)
}

func TestPointsService_AwardPoints_InactiveCard(t *testing.T) {
	service, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()
	fx.card.IsActive = false

	m.rateCounter.EXPECT().Increment(ctx, mock.Anything, time.Minute).Return(1, nil)
	m.cardRepo.EXPECT().FindByID(ctx, fx.card.ID).Return(fx.card, nil)

	_, err := service.AwardPoints(ctx, &usecase.AwardPointsInput{
		CardID:  fx.card.ID,
		Points:  1,
		ActorID: fx.program.BusinessID,
	})

	require.ErrorIs(t, err, domainerrors.ErrCardInactive)
}

func TestPointsService_AwardPoints_InactiveProgram(t *testing.T) {
	service, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()
	fx.program.IsActive = false

	m.rateCounter.EXPECT().Increment(ctx, mock.Anything, time.Minute).Return(1, nil)
	m.cardRepo.EXPECT().FindByID(ctx, fx.card.ID).Return(fx.card, nil)
	m.programRepo.EXPECT().FindByID(ctx, fx.program.ID).Return(fx.program, nil)

	_, err := service.AwardPoints(ctx, &usecase.AwardPointsInput{
		CardID:  fx.card.ID,
		Points:  1,
		ActorID: fx.program.BusinessID,
	})

	require.ErrorIs(t, err, domainerrors.ErrProgramInactive)
}

func TestPointsService_AwardPoints_ActorIsNotProgramOwner(t *testing.T) {
	service, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()

	m.rateCounter.EXPECT().Increment(ctx, mock.Anything, time.Minute).Return(1, nil)
	m.cardRepo.EXPECT().FindByID(ctx, fx.card.ID).Return(fx.card, nil)
	m.programRepo.EXPECT().FindByID(ctx, fx.program.ID).Return(fx.program, nil)

	_, err := service.AwardPoints(ctx, &usecase.AwardPointsInput{
		CardID:  fx.card.ID,
		Points:  1,
		ActorID: uuid.New(),
	})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPointsService_AwardPoints_NotEnrolled(t *testing.T) {
	service, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()

	m.rateCounter.EXPECT().Increment(ctx, mock.Anything, time.Minute).Return(1, nil)
	m.cardRepo.EXPECT().FindByID(ctx, fx.card.ID).Return(fx.card, nil)
	m.programRepo.EXPECT().FindByID(ctx, fx.program.ID).Return(fx.program, nil)
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, fx.card.CustomerID, fx.program.ID).
		Return(nil, repository.ErrEnrollmentNotFound)

	_, err := service.AwardPoints(ctx, &usecase.AwardPointsInput{
		CardID:  fx.card.ID,
		Points:  1,
		ActorID: fx.program.BusinessID,
	})

	require.ErrorIs(t, err, domainerrors.ErrNotEnrolled)
}

func TestPointsService_ListCardLedger_Success(t *testing.T) {
	svc, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()
	entries := []*entity.PointEntry{
		{ID: uuid.New(), CardID: fx.card.ID, Type: entity.PointEntryTypeEarn, Delta: 3},
		{ID: uuid.New(), CardID: fx.card.ID, Type: entity.PointEntryTypeEarn, Delta: 1},
	}

	m.cardRepo.EXPECT().FindByID(ctx, fx.card.ID).Return(fx.card, nil)
	m.ledgerRepo.EXPECT().ListByCard(ctx, fx.card.ID, 20, 0).Return(entries, nil)

	result, err := svc.ListCardLedger(ctx, fx.card.ID, fx.card.CustomerID, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, entries, result)
}

func TestPointsService_ListCardLedger_NotCardHolder(t *testing.T) {
	svc, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()

	m.cardRepo.EXPECT().FindByID(ctx, fx.card.ID).Return(fx.card, nil)

	result, err := svc.ListCardLedger(ctx, fx.card.ID, uuid.New(), 20, 0)

	require.ErrorIs(t, err, domainerrors.ErrCardNotFound)
	assert.Nil(t, result)
}

func TestPointsService_ListCardLedger_CardNotFound(t *testing.T) {
	svc, m := createTestPointsService(t)

	ctx := context.Background()
	cardID := uuid.New()

	m.cardRepo.EXPECT().FindByID(ctx, cardID).Return(nil, repository.ErrCardNotFound)

	_, err := svc.ListCardLedger(ctx, cardID, uuid.New(), 20, 0)

	require.ErrorIs(t, err, domainerrors.ErrCardNotFound)
}

func TestPointsService_AwardFromScan_Success(t *testing.T) {
	svc, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()
	fx.program.PointsPerScan = 3

	m.signer.EXPECT().Verify("signed-token").
		Return(&service.ScanPayload{CardID: fx.card.ID, CustomerID: fx.card.CustomerID, ProgramID: fx.program.ID}, nil)
	m.cardRepo.EXPECT().FindByID(ctx, fx.card.ID).Return(fx.card, nil)
	m.programRepo.EXPECT().FindByID(ctx, fx.program.ID).Return(fx.program, nil)
	m.rateCounter.EXPECT().Increment(ctx, mock.Anything, time.Minute).Return(1, nil)
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, fx.card.CustomerID, fx.program.ID).Return(fx.enrollment, nil)
	m.ledgerRepo.EXPECT().FindByCardAndReference(ctx, fx.card.ID, "scan-1").Return(nil, repository.ErrPointEntryNotFound)
	m.expectTransaction(t)

	m.ledgerRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.cardRepo.EXPECT().IncrementPoints(ctx, fx.card.ID, int64(3)).Return(13, nil)
	m.enrollmentRepo.EXPECT().MirrorPoints(ctx, fx.enrollment.ID, int64(13), mock.Anything).Return(nil)
	m.notificationUC.EXPECT().EmitOrMerge(ctx, fx.card.CustomerID, mock.Anything, mock.Anything, false).Return(uuid.New(), nil)

	output, err := svc.AwardFromScan(ctx, "signed-token", fx.program.BusinessID, "scan-1")

	require.NoError(t, err)
	assert.Equal(t, int64(13), output.NewBalance)
	assert.True(t, output.Applied)
}

func TestPointsService_AwardFromScan_ProvisionsMissingCard(t *testing.T) {
	svc, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()
	fx.program.PointsPerScan = 2
	fx.enrollment.Points = 0

	// The token names a card row that is gone, but the enrollment behind it
	// is still ACTIVE.
	staleCardID := uuid.New()

	m.signer.EXPECT().Verify("orphan-token").
		Return(&service.ScanPayload{CardID: staleCardID, CustomerID: fx.card.CustomerID, ProgramID: fx.program.ID}, nil)
	m.cardRepo.EXPECT().FindByID(ctx, staleCardID).Return(nil, repository.ErrCardNotFound).Once()
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, fx.card.CustomerID, fx.program.ID).Return(fx.enrollment, nil)
	m.expectTransaction(t)

	var created *entity.Card

	m.cardRepo.EXPECT().FindByCustomerAndProgram(ctx, fx.card.CustomerID, fx.program.ID).
		Return(nil, repository.ErrCardNotFound).Once()
	m.cardRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, card *entity.Card) { created = card }).
		Return(nil)
	m.cardRepo.EXPECT().FindByID(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Card, error) { return created, nil })

	m.programRepo.EXPECT().FindByID(ctx, fx.program.ID).Return(fx.program, nil)
	m.rateCounter.EXPECT().Increment(ctx, mock.Anything, time.Minute).Return(1, nil)
	m.ledgerRepo.EXPECT().FindByCardAndReference(ctx, mock.Anything, "scan-3").Return(nil, repository.ErrPointEntryNotFound)

	m.ledgerRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.cardRepo.EXPECT().IncrementPoints(ctx, mock.Anything, int64(2)).Return(2, nil)
	m.enrollmentRepo.EXPECT().MirrorPoints(ctx, fx.enrollment.ID, int64(2), mock.Anything).Return(nil)
	m.notificationUC.EXPECT().EmitOrMerge(ctx, fx.card.CustomerID, mock.Anything, mock.Anything, false).Return(uuid.New(), nil)

	output, err := svc.AwardFromScan(ctx, "orphan-token", fx.program.BusinessID, "scan-3")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, output.CardID)
	assert.Equal(t, int64(2), output.NewBalance)
	assert.True(t, output.Applied)

	assert.Equal(t, fx.card.CustomerID, created.CustomerID)
	assert.Equal(t, fx.program.ID, created.ProgramID)
	assert.NotEmpty(t, created.Number)
	assert.Zero(t, created.Points)
	assert.True(t, created.IsActive)
}

func TestPointsService_AwardFromScan_ProvisionReusesConcurrentCard(t *testing.T) {
	svc, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()
	staleCardID := uuid.New()

	m.signer.EXPECT().Verify("orphan-token").
		Return(&service.ScanPayload{CardID: staleCardID, CustomerID: fx.card.CustomerID, ProgramID: fx.program.ID}, nil)
	m.cardRepo.EXPECT().FindByID(ctx, staleCardID).Return(nil, repository.ErrCardNotFound).Once()
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, fx.card.CustomerID, fx.program.ID).Return(fx.enrollment, nil)
	m.expectTransaction(t)

	// Another scan of the same enrollment won the insert race.
	m.cardRepo.EXPECT().FindByCustomerAndProgram(ctx, fx.card.CustomerID, fx.program.ID).Return(fx.card, nil).Once()

	m.cardRepo.EXPECT().FindByID(ctx, fx.card.ID).Return(fx.card, nil)
	m.programRepo.EXPECT().FindByID(ctx, fx.program.ID).Return(fx.program, nil)
	m.rateCounter.EXPECT().Increment(ctx, mock.Anything, time.Minute).Return(1, nil)
	m.ledgerRepo.EXPECT().FindByCardAndReference(ctx, fx.card.ID, "scan-4").Return(nil, repository.ErrPointEntryNotFound)

	m.ledgerRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.cardRepo.EXPECT().IncrementPoints(ctx, fx.card.ID, int64(1)).Return(11, nil)
	m.enrollmentRepo.EXPECT().MirrorPoints(ctx, fx.enrollment.ID, int64(11), mock.Anything).Return(nil)
	m.notificationUC.EXPECT().EmitOrMerge(ctx, fx.card.CustomerID, mock.Anything, mock.Anything, false).Return(uuid.New(), nil)

	output, err := svc.AwardFromScan(ctx, "orphan-token", fx.program.BusinessID, "scan-4")

	require.NoError(t, err)
	assert.Equal(t, fx.card.ID, output.CardID)
	assert.Equal(t, int64(11), output.NewBalance)
	assert.True(t, output.Applied)
}

func TestPointsService_AwardFromScan_MissingCardWithoutEnrollment(t *testing.T) {
	svc, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()
	staleCardID := uuid.New()

	m.signer.EXPECT().Verify("orphan-token").
		Return(&service.ScanPayload{CardID: staleCardID, CustomerID: fx.card.CustomerID, ProgramID: fx.program.ID}, nil)
	m.cardRepo.EXPECT().FindByID(ctx, staleCardID).Return(nil, repository.ErrCardNotFound)
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, fx.card.CustomerID, fx.program.ID).
		Return(nil, repository.ErrEnrollmentNotFound)

	_, err := svc.AwardFromScan(ctx, "orphan-token", fx.program.BusinessID, "")

	require.ErrorIs(t, err, domainerrors.ErrNotEnrolled)
}

func TestPointsService_AwardFromScan_MissingCardDeclinedEnrollment(t *testing.T) {
	svc, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()
	fx.enrollment.Status = entity.EnrollmentStatusDeclined
	staleCardID := uuid.New()

	m.signer.EXPECT().Verify("orphan-token").
		Return(&service.ScanPayload{CardID: staleCardID, CustomerID: fx.card.CustomerID, ProgramID: fx.program.ID}, nil)
	m.cardRepo.EXPECT().FindByID(ctx, staleCardID).Return(nil, repository.ErrCardNotFound)
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, fx.card.CustomerID, fx.program.ID).Return(fx.enrollment, nil)

	_, err := svc.AwardFromScan(ctx, "orphan-token", fx.program.BusinessID, "")

	require.ErrorIs(t, err, domainerrors.ErrNotEnrolled)
}

func TestPointsService_AwardFromScan_ExpiredToken(t *testing.T) {
	svc, m := createTestPointsService(t)

	m.signer.EXPECT().Verify("stale-token").Return(nil, service.ErrSignatureExpired)

	_, err := svc.AwardFromScan(context.Background(), "stale-token", uuid.New(), "")

	require.ErrorIs(t, err, domainerrors.ErrSignatureExpired)
}

func TestPointsService_AwardFromScan_ProgramMismatch(t *testing.T) {
	svc, m := createTestPointsService(t)

	ctx := context.Background()
	fx := newAwardFixture()

	m.signer.EXPECT().Verify("crossed-token").
		Return(&service.ScanPayload{CardID: fx.card.ID, ProgramID: uuid.New()}, nil)
	m.cardRepo.EXPECT().FindByID(ctx, fx.card.ID).Return(fx.card, nil)

	_, err := svc.AwardFromScan(ctx, "crossed-token", fx.program.BusinessID, "")

	require.ErrorIs(t, err, domainerrors.ErrSignatureInvalid)
}
