package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"perk/internal/domain/entity"
	domainerrors "perk/internal/domain/errors"
	"perk/internal/domain/repository"
	mockRepo "perk/internal/mocks/repository"
	mockUC "perk/internal/mocks/usecase"
	"perk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type enrollmentServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	approvalRepo     *mockRepo.MockApprovalRepository
	accountRepo      *mockRepo.MockAccountRepository
	businessRepo     *mockRepo.MockBusinessRepository
	customerRepo     *mockRepo.MockCustomerRepository
	programRepo      *mockRepo.MockProgramRepository
	enrollmentRepo   *mockRepo.MockEnrollmentRepository
	cardRepo         *mockRepo.MockCardRepository
	relationRepo     *mockRepo.MockRelationRepository
	notificationRepo *mockRepo.MockNotificationRepository
	notificationUC   *mockUC.MockNotificationUsecase
}

func createTestEnrollmentService(t *testing.T) (usecase.EnrollmentUsecase, *enrollmentServiceMocks) {
	m := &enrollmentServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		approvalRepo:     mockRepo.NewMockApprovalRepository(t),
		accountRepo:      mockRepo.NewMockAccountRepository(t),
		businessRepo:     mockRepo.NewMockBusinessRepository(t),
		customerRepo:     mockRepo.NewMockCustomerRepository(t),
		programRepo:      mockRepo.NewMockProgramRepository(t),
		enrollmentRepo:   mockRepo.NewMockEnrollmentRepository(t),
		cardRepo:         mockRepo.NewMockCardRepository(t),
		relationRepo:     mockRepo.NewMockRelationRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		notificationUC:   mockUC.NewMockNotificationUsecase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewEnrollmentService(EnrollmentServiceParams{
		TxManager:      m.txManager,
		ApprovalRepo:   m.approvalRepo,
		AccountRepo:    m.accountRepo,
		BusinessRepo:   m.businessRepo,
		CustomerRepo:   m.customerRepo,
		ProgramRepo:    m.programRepo,
		EnrollmentRepo: m.enrollmentRepo,
		CardRepo:       m.cardRepo,
		NotificationUC: m.notificationUC,
		Logger:         logger,
	})

	return service, m
}

// expectTransaction routes the transactional closure through a factory whose
// accessors hand back the same mocks the service holds directly.
func (m *enrollmentServiceMocks) expectTransaction(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ApprovalRepo().Return(m.approvalRepo).Maybe()
	factory.EXPECT().AccountRepo().Return(m.accountRepo).Maybe()
	factory.EXPECT().CustomerRepo().Return(m.customerRepo).Maybe()
	factory.EXPECT().EnrollmentRepo().Return(m.enrollmentRepo).Maybe()
	factory.EXPECT().CardRepo().Return(m.cardRepo).Maybe()
	factory.EXPECT().RelationRepo().Return(m.relationRepo).Maybe()
	factory.EXPECT().NotificationRepo().Return(m.notificationRepo).Maybe()

	m.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func activeProgram(businessID uuid.UUID) *entity.Program {
	return &entity.Program{
		ID:            uuid.New(),
		BusinessID:    businessID,
		Name:          "早餐集點",
		PointsPerScan: 1,
		IsActive:      true,
	}
}

func TestEnrollmentService_RequestEnrollment_Success(t *testing.T) {
	service, m := createTestEnrollmentService(t)

	ctx := context.Background()
	businessID := uuid.New()
	customerID := uuid.New()
	program := activeProgram(businessID)
	notificationID := uuid.New()

	m.businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID, Name: "好味早餐店"}, nil)
	m.programRepo.EXPECT().FindByID(ctx, program.ID).Return(program, nil)
	m.accountRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Account{ID: customerID}, nil)
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, customerID, program.ID).Return(nil, repository.ErrEnrollmentNotFound)
	m.approvalRepo.EXPECT().FindPendingByParties(ctx, customerID, businessID, program.ID).Return(nil, repository.ErrApprovalNotFound)
	m.notificationUC.EXPECT().EmitOrMerge(ctx, customerID, mock.Anything, mock.Anything, true).Return(notificationID, nil)
	m.approvalRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	request, err := service.RequestEnrollment(ctx, &usecase.RequestEnrollmentInput{
		BusinessID: businessID,
		CustomerID: customerID,
		ProgramID:  program.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusPending, request.Status)
	require.NotNil(t, request.NotificationID)
	assert.Equal(t, notificationID, *request.NotificationID)
}

func TestEnrollmentService_RequestEnrollment_ReusesPendingRequest(t *testing.T) {
	service, m := createTestEnrollmentService(t)

	ctx := context.Background()
	businessID := uuid.New()
	customerID := uuid.New()
	program := activeProgram(businessID)
	existing := &entity.ApprovalRequest{
		ID:         uuid.New(),
		CustomerID: customerID,
		BusinessID: businessID,
		ProgramID:  program.ID,
		Status:     entity.ApprovalStatusPending,
	}

	m.businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID, Name: "好味早餐店"}, nil)
	m.programRepo.EXPECT().FindByID(ctx, program.ID).Return(program, nil)
	m.accountRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Account{ID: customerID}, nil)
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, customerID, program.ID).Return(nil, repository.ErrEnrollmentNotFound)
	m.approvalRepo.EXPECT().FindPendingByParties(ctx, customerID, businessID, program.ID).Return(existing, nil)
	m.notificationUC.EXPECT().EmitOrMerge(ctx, customerID, mock.Anything, mock.Anything, true).Return(uuid.New(), nil)

	request, err := service.RequestEnrollment(ctx, &usecase.RequestEnrollmentInput{
		BusinessID: businessID,
		CustomerID: customerID,
		ProgramID:  program.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, request.ID)
}

func TestEnrollmentService_RequestEnrollment_AlreadyEnrolled(t *testing.T) {
	service, m := createTestEnrollmentService(t)

	ctx := context.Background()
	businessID := uuid.New()
	customerID := uuid.New()
	program := activeProgram(businessID)

	m.businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID}, nil)
	m.programRepo.EXPECT().FindByID(ctx, program.ID).Return(program, nil)
	m.accountRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Account{ID: customerID}, nil)
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, customerID, program.ID).
		Return(&entity.Enrollment{ID: uuid.New(), Status: entity.EnrollmentStatusActive}, nil)

	request, err := service.RequestEnrollment(ctx, &usecase.RequestEnrollmentInput{
		BusinessID: businessID,
		CustomerID: customerID,
		ProgramID:  program.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrConflict)
	assert.Nil(t, request)
}

func TestEnrollmentService_RequestEnrollment_InactiveProgram(t *testing.T) {
	service, m := createTestEnrollmentService(t)

	ctx := context.Background()
	businessID := uuid.New()
	program := activeProgram(businessID)
	program.IsActive = false

	m.businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID}, nil)
	m.programRepo.EXPECT().FindByID(ctx, program.ID).Return(program, nil)

	_, err := service.RequestEnrollment(ctx, &usecase.RequestEnrollmentInput{
		BusinessID: businessID,
		CustomerID: uuid.New(),
		ProgramID:  program.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrProgramInactive)
}

func TestEnrollmentService_RequestEnrollment_ProgramOwnedByOtherBusiness(t *testing.T) {
	service, m := createTestEnrollmentService(t)

	ctx := context.Background()
	businessID := uuid.New()
	program := activeProgram(uuid.New())

	m.businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID}, nil)
	m.programRepo.EXPECT().FindByID(ctx, program.ID).Return(program, nil)

	_, err := service.RequestEnrollment(ctx, &usecase.RequestEnrollmentInput{
		BusinessID: businessID,
		CustomerID: uuid.New(),
		ProgramID:  program.ID,
	})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestEnrollmentService_RequestEnrollment_NotificationFailureStillCreates(t *testing.T) {
	service, m := createTestEnrollmentService(t)

	ctx := context.Background()
	businessID := uuid.New()
	customerID := uuid.New()
	program := activeProgram(businessID)

	m.businessRepo.EXPECT().FindByID(ctx, businessID).Return(&entity.Business{ID: businessID, Name: "好味早餐店"}, nil)
	m.programRepo.EXPECT().FindByID(ctx, program.ID).Return(program, nil)
	m.accountRepo.EXPECT().FindByID(ctx, customerID).Return(&entity.Account{ID: customerID}, nil)
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, customerID, program.ID).Return(nil, repository.ErrEnrollmentNotFound)
	m.approvalRepo.EXPECT().FindPendingByParties(ctx, customerID, businessID, program.ID).Return(nil, repository.ErrApprovalNotFound)
	m.notificationUC.EXPECT().EmitOrMerge(ctx, customerID, mock.Anything, mock.Anything, true).
		Return(uuid.Nil, errors.New("pubsub unavailable"))
	m.approvalRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	request, err := service.RequestEnrollment(ctx, &usecase.RequestEnrollmentInput{
		BusinessID: businessID,
		CustomerID: customerID,
		ProgramID:  program.ID,
	})

	require.NoError(t, err)
	assert.Nil(t, request.NotificationID)
}

func TestEnrollmentService_ResolveApproval_ApproveProvisionsCard(t *testing.T) {
	service, m := createTestEnrollmentService(t)

	ctx := context.Background()
	businessID := uuid.New()
	customerID := uuid.New()
	program := activeProgram(businessID)
	notificationID := uuid.New()
	request := &entity.ApprovalRequest{
		ID:             uuid.New(),
		CustomerID:     customerID,
		BusinessID:     businessID,
		ProgramID:      program.ID,
		Status:         entity.ApprovalStatusPending,
		NotificationID: &notificationID,
	}

	m.approvalRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	m.programRepo.EXPECT().FindByID(ctx, program.ID).Return(program, nil)
	m.expectTransaction(t)

	m.approvalRepo.EXPECT().
		TransitionFromPending(ctx, request.ID, entity.ApprovalStatusApproved, mock.Anything).
		Return(true, nil)
	m.notificationRepo.EXPECT().MarkActioned(ctx, notificationID).Return(nil)
	m.customerRepo.EXPECT().FindByID(ctx, customerID).
		Return(&entity.Customer{ID: customerID, Name: "王小明"}, nil)
	m.relationRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
	m.enrollmentRepo.EXPECT().FindByCustomerAndProgram(ctx, customerID, program.ID).Return(nil, repository.ErrEnrollmentNotFound)
	m.enrollmentRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.cardRepo.EXPECT().FindByCustomerAndProgram(ctx, customerID, program.ID).Return(nil, repository.ErrCardNotFound)
	m.cardRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.approvalRepo.EXPECT().SetCardID(ctx, request.ID, mock.Anything).Return(nil)

	m.cardRepo.EXPECT().FindByID(ctx, mock.Anything).
		Return(&entity.Card{ID: uuid.New(), Number: "PC-1111-2222-3333", IsActive: true}, nil)
	m.notificationUC.EXPECT().EmitOrMerge(ctx, businessID, mock.Anything, mock.Anything, false).Return(uuid.New(), nil)
	m.notificationUC.EXPECT().EmitOrMerge(ctx, customerID, mock.Anything, mock.Anything, false).Return(uuid.New(), nil)

	output, err := service.ResolveApproval(ctx, request.ID, entity.DecisionApprove)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusApproved, output.Status)
	require.NotNil(t, output.CardID)
}

func TestEnrollmentService_ResolveApproval_ReplaySameDecision(t *testing.T) {
	service, m := createTestEnrollmentService(t)

	ctx := context.Background()
	cardID := uuid.New()
	respondedAt := time.Now()
	request := &entity.ApprovalRequest{
		ID:          uuid.New(),
		Status:      entity.ApprovalStatusApproved,
		CardID:      &cardID,
		RespondedAt: &respondedAt,
	}

	m.approvalRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	output, err := service.ResolveApproval(ctx, request.ID, entity.DecisionApprove)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusApproved, output.Status)
	require.NotNil(t, output.CardID)
	assert.Equal(t, cardID, *output.CardID)
}

func TestEnrollmentService_ResolveApproval_ReplayDifferentDecision(t *testing.T) {
	service, m := createTestEnrollmentService(t)

	ctx := context.Background()
	request := &entity.ApprovalRequest{
		ID:     uuid.New(),
		Status: entity.ApprovalStatusRejected,
	}

	m.approvalRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	output, err := service.ResolveApproval(ctx, request.ID, entity.DecisionApprove)

	require.ErrorIs(t, err, domainerrors.ErrDecisionConflict)
	assert.Nil(t, output)
}

func TestEnrollmentService_ResolveApproval_LostRaceReplaysWinner(t *testing.T) {
	service, m := createTestEnrollmentService(t)

	ctx := context.Background()
	businessID := uuid.New()
	program := activeProgram(businessID)
	cardID := uuid.New()
	request := &entity.ApprovalRequest{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		BusinessID: businessID,
		ProgramID:  program.ID,
		Status:     entity.ApprovalStatusPending,
	}
	settled := &entity.ApprovalRequest{
		ID:     request.ID,
		Status: entity.ApprovalStatusApproved,
		CardID: &cardID,
	}

	m.approvalRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil).Once()
	m.programRepo.EXPECT().FindByID(ctx, program.ID).Return(program, nil)
	m.expectTransaction(t)

	m.approvalRepo.EXPECT().
		TransitionFromPending(ctx, request.ID, entity.ApprovalStatusApproved, mock.Anything).
		Return(false, nil)
	m.approvalRepo.EXPECT().FindByID(ctx, request.ID).Return(settled, nil).Once()

	// The winner already notified; this call only reports its outcome.
	m.notificationUC.EXPECT().EmitOrMerge(ctx, businessID, mock.Anything, mock.Anything, false).Return(uuid.New(), nil)
	m.cardRepo.EXPECT().FindByID(ctx, cardID).
		Return(&entity.Card{ID: cardID, Number: "PC-4444-5555-6666"}, nil)
	m.notificationUC.EXPECT().EmitOrMerge(ctx, request.CustomerID, mock.Anything, mock.Anything, false).Return(uuid.New(), nil)

	output, err := service.ResolveApproval(ctx, request.ID, entity.DecisionApprove)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusApproved, output.Status)
	require.NotNil(t, output.CardID)
	assert.Equal(t, cardID, *output.CardID)
}

func TestEnrollmentService_ResolveApproval_DeclineSkipsCustomerMaterialization(t *testing.T) {
	service, m := createTestEnrollmentService(t)

	ctx := context.Background()
	businessID := uuid.New()
	customerID := uuid.New()
	program := activeProgram(businessID)
	request := &entity.ApprovalRequest{
		ID:         uuid.New(),
		CustomerID: customerID,
		BusinessID: businessID,
		ProgramID:  program.ID,
		Status:     entity.ApprovalStatusPending,
	}

	m.approvalRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	m.programRepo.EXPECT().FindByID(ctx, program.ID).Return(program, nil)
	m.expectTransaction(t)

	m.approvalRepo.EXPECT().
		TransitionFromPending(ctx, request.ID, entity.ApprovalStatusRejected, mock.Anything).
		Return(true, nil)
	m.customerRepo.EXPECT().FindByID(ctx, customerID).Return(nil, repository.ErrCustomerNotFound)
	m.relationRepo.EXPECT().FindByCustomerAndBusiness(ctx, customerID, businessID).Return(nil, repository.ErrRelationNotFound)
	m.relationRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

	m.notificationUC.EXPECT().EmitOrMerge(ctx, businessID, mock.Anything, mock.Anything, false).Return(uuid.New(), nil)

	output, err := service.ResolveApproval(ctx, request.ID, entity.DecisionDecline)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusRejected, output.Status)
	assert.Nil(t, output.CardID)
}
