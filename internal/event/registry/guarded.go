package registry

import (
	"context"
	"fmt"

	dirmodels "quorum/internal/directory/models"
	"quorum/internal/sentinel"
	"quorum/pkg/platform/circuit"
)

// GuardedSource wraps a Source with a circuit breaker so repeated registry
// outages fail fast instead of tying up sync requests.
type GuardedSource struct {
	inner   Source
	breaker *circuit.Breaker
}

func NewGuardedSource(inner Source, breaker *circuit.Breaker) *GuardedSource {
	if breaker == nil {
		breaker = circuit.New()
	}
	return &GuardedSource{inner: inner, breaker: breaker}
}

func (g *GuardedSource) FetchMembers(ctx context.Context) ([]*dirmodels.Member, error) {
	if !g.breaker.Allow() {
		return nil, fmt.Errorf("registry circuit open: %w", sentinel.ErrUnavailable)
	}
	members, err := g.inner.FetchMembers(ctx)
	g.breaker.RecordResult(err)
	return members, err
}
