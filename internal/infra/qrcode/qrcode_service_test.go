package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GeneratePassQR("secret-123")
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestGeneratePassQR_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GeneratePassQR("secret-123")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestPassPayloadMatchesVerifyRequest(t *testing.T) {
	payload, err := json.Marshal(PassPayload{QRSecret: "secret-123"})
	require.NoError(t, err)

	// The scanning device posts the payload back verbatim, so the field
	// name must stay aligned with the verify endpoint's request body.
	assert.JSONEq(t, `{"qrSecret":"secret-123"}`, string(payload))
}
