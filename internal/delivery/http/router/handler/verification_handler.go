package handler

import (
	"log/slog"
	"net/http"

	"doorman/internal/delivery/http/response"
	"doorman/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VerificationHandlerParams holds dependencies for VerificationHandler, injected by Fx.
type VerificationHandlerParams struct {
	fx.In

	VerificationUC usecase.VerificationUsecase
	Logger         *slog.Logger
}

// VerificationHandler holds dependencies for door verification handlers
type VerificationHandler struct {
	verificationUC usecase.VerificationUsecase
	logger         *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler
func NewVerificationHandler(params VerificationHandlerParams) *VerificationHandler {
	return &VerificationHandler{
		verificationUC: params.VerificationUC,
		logger:         params.Logger,
	}
}

// VerifyRequest represents the request body posted by a scanning device.
type VerifyRequest struct {
	QRSecret string `json:"qrSecret" validate:"required"`
}

// VerifySecret handles a scanning device presenting a door secret.
func (h *VerificationHandler) VerifySecret(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "MISSING_SECRET", "qrSecret is required")
	}

	result, err := h.verificationUC.VerifySecret(c.Request().Context(), req.QRSecret)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "門禁驗證成功")
}

// PassQR renders the scannable pass PNG for a still-live secret.
func (h *VerificationHandler) PassQR(c echo.Context) error {
	png, err := h.verificationUC.PassQR(c.Request().Context(), c.Param("secret"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=door-pass.png")

	return c.Blob(http.StatusOK, "image/png", png)
}
