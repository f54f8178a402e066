package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doorman/internal/delivery/http/validator"
	"doorman/internal/domain/entity"
	domainerrors "doorman/internal/domain/errors"
	mockUC "doorman/internal/mocks/usecase"
	"doorman/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVerificationHandler(t *testing.T) (*VerificationHandler, *mockUC.MockVerificationUsecase) {
	t.Helper()

	uc := mockUC.NewMockVerificationUsecase(t)
	h := NewVerificationHandler(VerificationHandlerParams{
		VerificationUC: uc,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, uc
}

func postVerify(t *testing.T, h *VerificationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/access/verify", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.VerifySecret(c)
	require.NoError(t, err)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestVerifySecret_MissingSecretIs400(t *testing.T) {
	h, _ := newVerificationHandler(t)

	for _, body := range []string{`{}`, `{"qrSecret":""}`} {
		rec := postVerify(t, h, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "error", decodeEnvelope(t, rec)["status"])
	}
}

func TestVerifySecret_MalformedBodyIs400(t *testing.T) {
	h, _ := newVerificationHandler(t)

	rec := postVerify(t, h, `{"qrSecret": 42`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec)["status"])
}

func TestVerifySecret_AcceptedIs200OK(t *testing.T) {
	h, uc := newVerificationHandler(t)

	uc.EXPECT().
		VerifySecret(mock.Anything, "valid-secret").
		Return(&usecase.VerifyResult{
			Kind:           entity.KindReservation,
			RecordID:       "res-1",
			Holder:         "Lin Wei",
			TriggerEmitted: true,
		}, nil)

	rec := postVerify(t, h, `{"qrSecret":"valid-secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "ok", envelope["status"])
}

func TestVerifySecret_TriggerFailureStillOK(t *testing.T) {
	h, uc := newVerificationHandler(t)

	uc.EXPECT().
		VerifySecret(mock.Anything, "valid-secret").
		Return(&usecase.VerifyResult{
			Kind:           entity.KindTemporaryAccess,
			RecordID:       "grant-1",
			TriggerEmitted: false,
		}, nil)

	rec := postVerify(t, h, `{"qrSecret":"valid-secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeEnvelope(t, rec)["status"])
}

func TestVerifySecret_DeniedIs404(t *testing.T) {
	h, uc := newVerificationHandler(t)

	uc.EXPECT().
		VerifySecret(mock.Anything, "bad-secret").
		Return(nil, domainerrors.ErrAccessDenied)

	rec := postVerify(t, h, `{"qrSecret":"bad-secret"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec)["status"])
}

func TestVerifySecret_StoreUnavailableIs500(t *testing.T) {
	h, uc := newVerificationHandler(t)

	uc.EXPECT().
		VerifySecret(mock.Anything, "any-secret").
		Return(nil, domainerrors.ErrStoreUnavailable)

	rec := postVerify(t, h, `{"qrSecret":"any-secret"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec)["status"])
}

func TestPassQR_ReturnsPNG(t *testing.T) {
	h, uc := newVerificationHandler(t)

	uc.EXPECT().
		PassQR(mock.Anything, "live-secret").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/access/pass/live-secret/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("secret")
	c.SetParamValues("live-secret")

	require.NoError(t, h.PassQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}
