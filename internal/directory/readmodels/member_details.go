// Package readmodels contains query-optimized data structures for read operations.
// These are separate from domain models to allow independent evolution
// and optimization for display/reporting use cases.
package readmodels

import (
	"quorum/internal/directory/models"
)

// MemberDetails aggregates a member with its memberships, CR positions, and
// computed vote totals for the registration detail screen. It is recomputed on
// every detail fetch and never persisted.
type MemberDetails struct {
	models.Member

	EligibleMemberships []models.Membership `json:"eligible_memberships"`
	TotalVotes          int                 `json:"total_votes"`
	TotalMemberships    int                 `json:"total_memberships"`
	MembershipTaken     int                 `json:"membership_taken"`
}
