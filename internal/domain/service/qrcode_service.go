package service

// QRCodeService renders a scannable pass for a live door secret.
type QRCodeService interface {
	// GeneratePassQR returns a PNG image whose payload the scanning device
	// posts back verbatim as the verification request body.
	GeneratePassQR(secret string) ([]byte, error)
}
