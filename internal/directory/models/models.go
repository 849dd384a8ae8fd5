// Package models holds the member directory domain types. Member identity is
// immutable after creation; only the participation flags, timestamps, and vote
// totals change over an event's lifetime.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MembershipRole is the capacity in which a member holds a company affiliation.
type MembershipRole string

const (
	RoleShareholder   MembershipRole = "Shareholder"
	RoleBoardDirector MembershipRole = "BoardDirector"
)

// Member is a natural person eligible to participate in an event.
type Member struct {
	ID                 uuid.UUID  `json:"id"`
	NationalID         string     `json:"national_id"`
	CRNumber           string     `json:"cr_number,omitempty"`
	MembershipNumber   string     `json:"membership_number"`
	FullName           string     `json:"full_name"`
	FirstName          string     `json:"first_name,omitempty"`
	LastName           string     `json:"last_name,omitempty"`
	Email              string     `json:"email,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	Gender             string     `json:"gender,omitempty"`
	Nationality        string     `json:"nationality,omitempty"`
	PassportNumber     string     `json:"passport_number,omitempty"`
	GCCNumber          string     `json:"gcc_number,omitempty"`
	IsEligible         bool       `json:"is_eligible"`
	IsRegistered       bool       `json:"is_registered"`
	IsAttended         bool       `json:"is_attended"`
	PreRegistration    bool       `json:"pre_registration"`
	IsUnregistered     bool       `json:"is_unregistered"`
	RegistrationDate   *time.Time `json:"registration_date,omitempty"`
	AttendanceDate     *time.Time `json:"attendance_date,omitempty"`
	AttendanceDateTime *time.Time `json:"attendance_date_time,omitempty"`
	TotalVotesTaken    int        `json:"total_votes_taken"`
	EventID            uuid.UUID  `json:"event_id,omitempty"`
	EventName          string     `json:"event_name,omitempty"`

	// Memberships and CRDetails are a read-derived view owned by the member
	// record for the lifetime of a query result, not a persisted relation.
	Memberships []Membership `json:"memberships,omitempty"`
	CRDetails   []CRDetails  `json:"cr_details,omitempty"`
}

// Clone returns a deep copy so store internals never leak to callers.
func (m *Member) Clone() *Member {
	out := *m
	if m.Memberships != nil {
		out.Memberships = make([]Membership, len(m.Memberships))
		copy(out.Memberships, m.Memberships)
	}
	if m.CRDetails != nil {
		out.CRDetails = make([]CRDetails, len(m.CRDetails))
		copy(out.CRDetails, m.CRDetails)
	}
	return &out
}

// Membership is one company affiliation carrying voting rights for an event.
type Membership struct {
	ID                uuid.UUID      `json:"id"`
	CompanyName       string         `json:"company_name"`
	CompanyNameArabic string         `json:"company_name_arabic,omitempty"`
	CompanyCRNumber   string         `json:"company_cr_number"`
	Role              MembershipRole `json:"member_role"`
	SharePercentage   float64        `json:"share_percentage,omitempty"`
	Votes             int            `json:"votes"`
	MembershipNumber  string         `json:"membership_number"`
	StartDate         *time.Time     `json:"membership_start_date,omitempty"`
	EndDate           *time.Time     `json:"membership_end_date,omitempty"`
	CompanyCapital    float64        `json:"company_capital,omitempty"`
	IsAttended        bool           `json:"is_attended"`
	AttendedBy        string         `json:"attended_by,omitempty"`
	EventID           uuid.UUID      `json:"event_id,omitempty"`
	EventName         string         `json:"event_name,omitempty"`
}

// CRDetails is a commercial-registration-level board or shareholder position.
// Unlike Membership it is scoped to the CR, not to an event.
type CRDetails struct {
	ID              uuid.UUID `json:"id"`
	CompanyName     string    `json:"company_name"`
	CompanyCRNumber string    `json:"company_cr_number"`
	Position        string    `json:"position"`
	Votes           int       `json:"votes"`
}

// SearchCriteria narrows a directory lookup. Structured fields match exactly
// (membership number case-insensitively); FreeText matches as a substring
// across name, national-ID, passport, GCC, and membership number. Non-empty
// fields combine with logical AND.
type SearchCriteria struct {
	NationalID       string `json:"national_id,omitempty"`
	CRNumber         string `json:"cr_number,omitempty"`
	MembershipNumber string `json:"membership_number,omitempty"`
	PassportNumber   string `json:"passport_number,omitempty"`
	GCCNumber        string `json:"gcc_number,omitempty"`
	FreeText         string `json:"q,omitempty"`
}

// IsEmpty reports whether no criteria fields are set. Empty criteria are legal
// and return the full directory.
func (c SearchCriteria) IsEmpty() bool {
	return c.NationalID == "" && c.CRNumber == "" && c.MembershipNumber == "" &&
		c.PassportNumber == "" && c.GCCNumber == "" && c.FreeText == ""
}

// ListKind selects which dashboard list a paginated query serves.
type ListKind string

const (
	ListEligible   ListKind = "eligible"
	ListAttendees  ListKind = "attendees"
	ListRegistered ListKind = "registered"
)
