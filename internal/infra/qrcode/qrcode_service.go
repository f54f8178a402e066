// Package qrcode renders scannable door passes.
package qrcode

import (
	"encoding/json"

	"doorman/internal/domain/service"
	"doorman/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PassPayload is the QR payload. Scanning devices post it back verbatim as
// the verification request body.
type PassPayload struct {
	QRSecret string `json:"qrSecret"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePassQR renders the pass PNG for a live secret.
func (s *qrcodeService) GeneratePassQR(secret string) ([]byte, error) {
	payload, err := json.Marshal(PassPayload{QRSecret: secret})
	if err != nil {
		return nil, errors.Wrap(err, "marshal pass payload")
	}

	png, err := qrcode.Encode(string(payload), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode pass qr")
	}

	return png, nil
}
