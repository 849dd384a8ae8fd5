// Package registry provides the member registry source the directory is
// synced from. The static source stands in for the organization's CRM in
// development and tests.
package registry

import (
	"context"
	"sync"
	"time"

	dirmodels "quorum/internal/directory/models"
)

// Source fetches the full membership snapshot from the upstream registry.
type Source interface {
	FetchMembers(ctx context.Context) ([]*dirmodels.Member, error)
}

// StaticSource serves a fixed snapshot, optionally with simulated latency so
// sync collapsing is observable in development.
type StaticSource struct {
	mu      sync.RWMutex
	members []*dirmodels.Member
	latency time.Duration
	err     error
}

// StaticOption configures the StaticSource.
type StaticOption func(*StaticSource)

// WithLatency makes each fetch take at least d.
func WithLatency(d time.Duration) StaticOption {
	return func(s *StaticSource) {
		s.latency = d
	}
}

func NewStaticSource(members []*dirmodels.Member, opts ...StaticOption) *StaticSource {
	s := &StaticSource{members: members}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetError makes subsequent fetches fail, for exercising the failure path.
func (s *StaticSource) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// SetMembers replaces the snapshot served by the source.
func (s *StaticSource) SetMembers(members []*dirmodels.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = members
}

func (s *StaticSource) FetchMembers(ctx context.Context) ([]*dirmodels.Member, error) {
	s.mu.RLock()
	latency, err, members := s.latency, s.err, s.members
	s.mu.RUnlock()

	if latency > 0 {
		select {
		case <-time.After(latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dirmodels.Member, 0, len(members))
	for _, m := range members {
		out = append(out, m.Clone())
	}
	return out, nil
}
