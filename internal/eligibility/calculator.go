// Package eligibility derives a member's eligible memberships and computes
// voting weight for the selections an operator makes on the registration
// detail screen. Expansion and tally rules live here so presentation surfaces
// never recompute defaults ad hoc.
package eligibility

import (
	"strings"

	"github.com/google/uuid"

	"quorum/internal/directory/models"
	"quorum/internal/directory/readmodels"
)

// Calculator expands members into detail read models. The event identity is
// fixed at construction and fills any membership or member record that does
// not carry one.
type Calculator struct {
	eventID   uuid.UUID
	eventName string
}

func NewCalculator(eventID uuid.UUID, eventName string) *Calculator {
	return &Calculator{eventID: eventID, eventName: eventName}
}

// Expand builds the MemberDetails read model from a member record. It is
// deterministic and idempotent: defaults fill only unset fields and never
// overwrite explicit values, so expanding twice yields identical results.
// The input member is not mutated.
func (c *Calculator) Expand(member *models.Member) *readmodels.MemberDetails {
	m := member.Clone()

	if m.FirstName == "" || m.LastName == "" {
		first, last := splitName(m.FullName)
		if m.FirstName == "" {
			m.FirstName = first
		}
		if m.LastName == "" {
			m.LastName = last
		}
	}
	if m.AttendanceDateTime == nil {
		m.AttendanceDateTime = m.AttendanceDate
	}
	if m.EventID == uuid.Nil {
		m.EventID = c.eventID
	}
	if m.EventName == "" {
		m.EventName = c.eventName
	}

	eligible := make([]models.Membership, 0, len(m.Memberships))
	totalVotes := 0
	taken := 0
	for i := range m.Memberships {
		ms := &m.Memberships[i]
		if ms.EventID == uuid.Nil {
			ms.EventID = c.eventID
		}
		if ms.EventName == "" {
			ms.EventName = c.eventName
		}
		if ms.IsAttended {
			taken++
		}
		if !isEligibleMembership(ms) {
			continue
		}
		entry := *ms
		if entry.AttendedBy == "" {
			entry.AttendedBy = m.FullName
		}
		eligible = append(eligible, entry)
		totalVotes += entry.Votes
	}

	return &readmodels.MemberDetails{
		Member:              *m,
		EligibleMemberships: eligible,
		TotalVotes:          totalVotes,
		TotalMemberships:    len(m.Memberships),
		MembershipTaken:     taken,
	}
}

// isEligibleMembership reports whether a membership carries voting rights for
// the event. Zero-weight affiliations are listed on the member but cannot be
// selected for a tally.
func isEligibleMembership(ms *models.Membership) bool {
	return ms.Votes > 0
}

// splitName derives first/last name on the first space boundary of the full
// name. A single-word name becomes the first name with an empty last name.
func splitName(fullName string) (first, last string) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return "", ""
	}
	first, last, found := strings.Cut(fullName, " ")
	if !found {
		return fullName, ""
	}
	return first, last
}
