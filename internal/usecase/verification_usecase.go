// Package usecase defines the application service interfaces.
package usecase

import (
	"context"

	"doorman/internal/domain/entity"
)

// VerifyResult is the caller-facing result of a successful verification.
// TriggerEmitted records whether the unlock event reached the trigger sink;
// it never affects the verification's success.
type VerifyResult struct {
	Kind           entity.RecordKind `json:"kind"`
	RecordID       string            `json:"record_id"`
	Holder         string            `json:"holder"`
	TriggerEmitted bool              `json:"trigger_emitted"`
}

// VerificationUsecase is the access-control decision engine.
type VerificationUsecase interface {
	// VerifySecret validates a presented single-use secret, consumes the
	// matched record exactly once, and asks the trigger sink to perform the
	// physical action. Rejections surface as domain AppErrors.
	VerifySecret(ctx context.Context, secret string) (*VerifyResult, error)

	// PassQR renders the scannable pass for a secret that is still live
	// (matched and not consumed). Consumed or unknown secrets are rejected
	// the same way verification rejects them.
	PassQR(ctx context.Context, secret string) ([]byte, error)
}
