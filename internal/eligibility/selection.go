package eligibility

import (
	"github.com/google/uuid"

	"quorum/internal/directory/models"
	"quorum/internal/directory/readmodels"
)

// Selection is the set of membership ids an operator has marked attended for
// the current event. A member's voting weight is the sum of votes across
// exactly this set, never the full membership list.
type Selection map[uuid.UUID]struct{}

// NewSelection builds a selection from the given membership ids.
func NewSelection(ids ...uuid.UUID) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Toggle flips a single membership in or out of the selection. Applying it
// twice with the same id restores the original selection.
func (s Selection) Toggle(id uuid.UUID) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// SelectAll replaces the selection contents with every eligible membership id.
// Repeated calls are idempotent.
func (s Selection) SelectAll(eligible []models.Membership) {
	clear(s)
	for _, ms := range eligible {
		s[ms.ID] = struct{}{}
	}
}

// Clear empties the selection.
func (s Selection) Clear() {
	clear(s)
}

// SelectionState describes how much of the eligible set is selected.
type SelectionState string

const (
	SelectionNone SelectionState = "None"
	SelectionSome SelectionState = "Some"
	SelectionAll  SelectionState = "All"
)

// State reports None, Some, or All for the given eligible memberships.
// An empty eligible set is never reported as All.
func (s Selection) State(eligible []models.Membership) SelectionState {
	if len(s) == 0 {
		return SelectionNone
	}
	if len(eligible) == 0 {
		return SelectionSome
	}
	for _, ms := range eligible {
		if _, ok := s[ms.ID]; !ok {
			return SelectionSome
		}
	}
	return SelectionAll
}

// SelectedVotesTotal sums votes across the eligible memberships whose id is in
// the selection. Ids that do not belong to an eligible membership are ignored;
// an empty selection yields 0. Order of the selection never affects the total.
func SelectedVotesTotal(details *readmodels.MemberDetails, selection Selection) int {
	if details == nil || len(selection) == 0 {
		return 0
	}
	total := 0
	for _, ms := range details.EligibleMemberships {
		if _, ok := selection[ms.ID]; ok {
			total += ms.Votes
		}
	}
	return total
}
