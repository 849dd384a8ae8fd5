// Package idp provides the identity provider directory backing user search.
// The static implementation stands in for the organization's real IdP in
// development and tests.
package idp

import (
	"context"
	"strings"
	"sync"

	"quorum/internal/roster/models"
)

// StaticDirectory serves a fixed set of IdP accounts.
type StaticDirectory struct {
	mu       sync.RWMutex
	accounts []models.IdPUser
}

func NewStaticDirectory(accounts []models.IdPUser) *StaticDirectory {
	return &StaticDirectory{accounts: accounts}
}

// Search matches the term against username, full name, and email. An empty
// term returns the whole directory.
func (d *StaticDirectory) Search(_ context.Context, term string) ([]models.IdPUser, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.IdPUser, 0, len(d.accounts))
	for _, a := range d.accounts {
		if term == "" ||
			strings.Contains(strings.ToLower(a.Username), term) ||
			strings.Contains(strings.ToLower(a.FullName), term) ||
			strings.Contains(strings.ToLower(a.Email), term) {
			out = append(out, a)
		}
	}
	return out, nil
}
