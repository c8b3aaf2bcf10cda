package service

// QRCodeService defines the interface for QR code image generation.
type QRCodeService interface {
	// GenerateCardQR renders a signed scan token into a PNG QR code.
	GenerateCardQR(token string) ([]byte, error)
}
