package impl

import (
	"context"
	"log/slog"

	deliverycontext "perk/internal/delivery/context"
	domainerrors "perk/internal/domain/errors"
	"perk/internal/domain/repository"
	"perk/internal/domain/service"
	"perk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// qrService implements the QRUsecase interface.
type qrService struct {
	cardRepo  repository.CardRepository
	signer    service.QRTokenSigner
	qrcodeSvc service.QRCodeService
	logger    *slog.Logger
}

// QRServiceParams holds dependencies for QRService, injected by Fx.
type QRServiceParams struct {
	fx.In

	CardRepo  repository.CardRepository
	Signer    service.QRTokenSigner
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// NewQRService is the constructor for qrService.
func NewQRService(params QRServiceParams) usecase.QRUsecase {
	return &qrService{
		cardRepo:  params.CardRepo,
		signer:    params.Signer,
		qrcodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// IssueCardToken signs a fresh scan token for an active card. Tokens carry
// their own timestamp, so issuing is stateless and repeatable.
func (srv *qrService) IssueCardToken(ctx context.Context, cardID uuid.UUID) (string, error) {
	card, err := srv.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return "", domainerrors.ErrCardNotFound
		}

		return "", errors.Wrap(err, "failed to find card")
	}

	if !card.IsActive {
		return "", domainerrors.ErrCardInactive
	}

	token, err := srv.signer.Sign(service.ScanPayload{
		CardID:     card.ID,
		CustomerID: card.CustomerID,
		ProgramID:  card.ProgramID,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to sign scan token")
	}

	return token, nil
}

// GenerateCardQR renders a freshly signed scan token into a PNG image.
func (srv *qrService) GenerateCardQR(ctx context.Context, cardID uuid.UUID) ([]byte, error) {
	token, err := srv.IssueCardToken(ctx, cardID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeSvc.GenerateCardQR(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Card QR generated",
		slog.Any("cardID", cardID),
		slog.Int("bytes", len(png)),
	)

	return png, nil
}

// ValidateToken verifies a scan token without consuming it.
func (srv *qrService) ValidateToken(ctx context.Context, token string) (*service.ScanPayload, error) {
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

	if _, err := srv.cardRepo.FindByID(ctx, payload.CardID); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card")
	}

	return payload, nil
}
