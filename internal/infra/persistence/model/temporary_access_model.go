package model

import (
	"time"

	"doorman/internal/domain/entity"
)

// TemporaryAccessModel mirrors a temporary access grant document. The
// document ID doubles as the presented secret.
type TemporaryAccessModel struct {
	Status     string    `firestore:"status"`
	ValidFrom  time.Time `firestore:"validFrom"`
	ValidUntil time.Time `firestore:"validUntil"`
	UserEmail  string    `firestore:"userEmail"`
}

// ToEntity converts the document into the domain entity.
func (m *TemporaryAccessModel) ToEntity(id string) *entity.TemporaryAccess {
	return &entity.TemporaryAccess{
		ID:         id,
		Status:     entity.GrantStatus(m.Status),
		ValidFrom:  m.ValidFrom,
		ValidUntil: m.ValidUntil,
		UserEmail:  m.UserEmail,
	}
}
