// Package signature implements the signed tokens embedded in card QR codes.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"perk/config"
	"perk/internal/domain/service"

	"github.com/pkg/errors"
)

// hmacSigner signs scan payloads with HMAC-SHA256. Tokens have the form
// "payload.hash.timestamp" where payload is base64url JSON, hash covers the
// payload and the timestamp, and the timestamp is unix seconds at signing.
type hmacSigner struct {
	secret   []byte
	validity time.Duration
}

// NewHMACSigner is the constructor for hmacSigner.
func NewHMACSigner(cfg *config.Config) (service.QRTokenSigner, error) {
	if cfg.Signature == nil || cfg.Signature.Secret == "" {
		return nil, errors.New("signature secret must be provided")
	}

	return &hmacSigner{
		secret:   []byte(cfg.Signature.Secret),
		validity: cfg.Signature.Validity,
	}, nil
}

// Sign produces a token binding the payload to the secret and the current time.
func (s *hmacSigner) Sign(payload service.ScanPayload) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal scan payload")
	}

	encoded := base64.RawURLEncoding.EncodeToString(raw)
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	hash := s.compute(encoded, timestamp)

	return encoded + "." + hash + "." + timestamp, nil
}

// Verify recomputes the hash in constant time and then checks freshness.
// Integrity is checked before expiry so a tampered timestamp can not turn an
// invalid token into a merely expired one.
func (s *hmacSigner) Verify(token string) (*service.ScanPayload, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, service.ErrSignatureInvalid
	}

	encoded, hash, timestamp := parts[0], parts[1], parts[2]

	expected := s.compute(encoded, timestamp)
	if !hmac.Equal([]byte(hash), []byte(expected)) {
		return nil, service.ErrSignatureInvalid
	}

	issuedAt, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return nil, service.ErrSignatureInvalid
	}

	age := time.Since(time.Unix(issuedAt, 0))
	if age > s.validity || age < -s.validity {
		return nil, service.ErrSignatureExpired
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, service.ErrSignatureInvalid
	}

	var payload service.ScanPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, service.ErrSignatureInvalid
	}

	return &payload, nil
}

// compute returns the base64url HMAC-SHA256 of "payload.timestamp".
func (s *hmacSigner) compute(encodedPayload, timestamp string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(encodedPayload))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
