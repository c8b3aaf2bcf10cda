package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"perk/internal/domain/entity"
	domainerrors "perk/internal/domain/errors"
	"perk/internal/domain/repository"
	"perk/internal/domain/service"
	mockRepo "perk/internal/mocks/repository"
	mockSvc "perk/internal/mocks/service"
	"perk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestQRService(t *testing.T) (
	usecase.QRUsecase,
	*mockRepo.MockCardRepository,
	*mockSvc.MockQRTokenSigner,
	*mockSvc.MockQRCodeService,
) {
	cardRepo := mockRepo.NewMockCardRepository(t)
	signer := mockSvc.NewMockQRTokenSigner(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewQRService(QRServiceParams{
		CardRepo:  cardRepo,
		Signer:    signer,
		QRCodeSvc: qrcodeSvc,
		Logger:    logger,
	})

	return svc, cardRepo, signer, qrcodeSvc
}

func TestQRService_IssueCardToken_InactiveCard(t *testing.T) {
	svc, cardRepo, _, _ := createTestQRService(t)

	ctx := context.Background()
	card := &entity.Card{ID: uuid.New(), ProgramID: uuid.New(), IsActive: false}

	cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)

	token, err := svc.IssueCardToken(ctx, card.ID)

	require.ErrorIs(t, err, domainerrors.ErrCardInactive)
	assert.Empty(t, token)
}

func TestQRService_IssueCardToken_CardNotFound(t *testing.T) {
	svc, cardRepo, _, _ := createTestQRService(t)

	ctx := context.Background()
	cardID := uuid.New()

	cardRepo.EXPECT().FindByID(ctx, cardID).Return(nil, repository.ErrCardNotFound)

	_, err := svc.IssueCardToken(ctx, cardID)

	require.ErrorIs(t, err, domainerrors.ErrCardNotFound)
}

func TestQRService_GenerateCardQR_Success(t *testing.T) {
	svc, cardRepo, signer, qrcodeSvc := createTestQRService(t)

	ctx := context.Background()
	card := &entity.Card{ID: uuid.New(), CustomerID: uuid.New(), ProgramID: uuid.New(), IsActive: true}
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)
	signer.EXPECT().Sign(service.ScanPayload{CardID: card.ID, CustomerID: card.CustomerID, ProgramID: card.ProgramID}).
		Return("signed-token", nil)
	qrcodeSvc.EXPECT().GenerateCardQR("signed-token").Return(png, nil)

	image, err := svc.GenerateCardQR(ctx, card.ID)

	require.NoError(t, err)
	assert.Equal(t, png, image)
}

func TestQRService_ValidateToken_Success(t *testing.T) {
	svc, cardRepo, signer, _ := createTestQRService(t)

	ctx := context.Background()
	cardID := uuid.New()
	programID := uuid.New()

	signer.EXPECT().Verify("signed-token").
		Return(&service.ScanPayload{CardID: cardID, ProgramID: programID}, nil)
	cardRepo.EXPECT().FindByID(ctx, cardID).
		Return(&entity.Card{ID: cardID, ProgramID: programID, IsActive: true}, nil)

	payload, err := svc.ValidateToken(ctx, "signed-token")

	require.NoError(t, err)
	assert.Equal(t, cardID, payload.CardID)
	assert.Equal(t, programID, payload.ProgramID)
}

func TestQRService_ValidateToken_Expired(t *testing.T) {
	svc, _, signer, _ := createTestQRService(t)

	signer.EXPECT().Verify("stale-token").Return(nil, service.ErrSignatureExpired)

	_, err := svc.ValidateToken(context.Background(), "stale-token")

	require.ErrorIs(t, err, domainerrors.ErrSignatureExpired)
}
