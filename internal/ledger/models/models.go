// Package models holds the registration ledger domain types. Registrations
// and activities are immutable once created; corrections are recorded as new,
// opposite-action entries.
package models

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationAction is the kind of ledger action performed for a member.
type RegistrationAction string

const (
	ActionRegister   RegistrationAction = "Register"
	ActionUnregister RegistrationAction = "Unregister"
)

// ActivityStatus records whether the attempted action was committed.
type ActivityStatus string

const (
	StatusSuccess ActivityStatus = "success"
	StatusFailed  ActivityStatus = "failed"
)

// Registration is one committed ledger action for a (member, event) pair.
type Registration struct {
	ID               uuid.UUID          `json:"id"`
	MemberID         uuid.UUID          `json:"member_id"`
	MemberName       string             `json:"member_name"`
	EventID          uuid.UUID          `json:"event_id"`
	Action           RegistrationAction `json:"action"`
	PerformedBy      string             `json:"performed_by"`
	PerformedByName  string             `json:"performed_by_name"`
	Timestamp        time.Time          `json:"timestamp"`
	RegistrationPass string             `json:"registration_pass,omitempty"`
	QRCode           string             `json:"qr_code,omitempty"`
}

// RegistrationActivity is an append-only audit entry mirroring a ledger
// action, including rejected attempts.
type RegistrationActivity struct {
	ID               uuid.UUID          `json:"id"`
	MemberID         uuid.UUID          `json:"member_id"`
	MemberName       string             `json:"member_name"`
	MemberNationalID string             `json:"member_national_id"`
	Action           RegistrationAction `json:"action"`
	PerformedBy      string             `json:"performed_by"`
	PerformedByName  string             `json:"performed_by_name"`
	Timestamp        time.Time          `json:"timestamp"`
	Status           ActivityStatus     `json:"status"`
	ErrorMessage     string             `json:"error_message,omitempty"`
}

// ActivityFilter narrows an activity query. Non-empty fields combine with
// logical AND; the date range is inclusive on both ends.
type ActivityFilter struct {
	From       *time.Time
	To         *time.Time
	Action     RegistrationAction
	MemberName string
}
