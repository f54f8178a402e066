package entity

// RecordKind tags which collection a verification outcome was resolved from.
type RecordKind string

const (
	KindReservation     RecordKind = "reservation"
	KindTemporaryAccess RecordKind = "temporary_access"
)

// Decision is the resolver's verdict for a presented secret.
type Decision string

const (
	// DecisionAccepted means the record matched and the current time falls
	// inside its permitted window.
	DecisionAccepted Decision = "accepted"
	// DecisionRejectedExpired means a record matched but the current time is
	// outside its window.
	DecisionRejectedExpired Decision = "rejected_expired"
	// DecisionRejectedInactive means a grant matched but its status is no
	// longer active.
	DecisionRejectedInactive Decision = "rejected_inactive"
	// DecisionNotFound means neither collection holds the secret.
	DecisionNotFound Decision = "not_found"
)

// VerificationOutcome is the resolver's normalized result. Exactly one of
// Reservation or Grant is set when Kind is set; both are nil for NotFound.
// Transient, never persisted.
type VerificationOutcome struct {
	Kind        RecordKind
	Reservation *Reservation
	Grant       *TemporaryAccess
	Decision    Decision
}

// RecordID returns the matched record's document ID, or "" for NotFound.
func (o *VerificationOutcome) RecordID() string {
	switch {
	case o.Reservation != nil:
		return o.Reservation.ID
	case o.Grant != nil:
		return o.Grant.ID
	default:
		return ""
	}
}

// Holder returns the human identifier attached to the matched record.
func (o *VerificationOutcome) Holder() string {
	switch {
	case o.Reservation != nil:
		return o.Reservation.UserName
	case o.Grant != nil:
		return o.Grant.UserEmail
	default:
		return ""
	}
}
