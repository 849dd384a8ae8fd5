package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quorum/internal/sentinel"
	"quorum/pkg/platform/circuit"
)

func TestGuardedSourceFailsFastWhenOpen(t *testing.T) {
	ctx := context.Background()
	inner := NewStaticSource(nil)
	inner.SetError(errors.New("crm gateway down"))
	g := NewGuardedSource(inner, circuit.New(circuit.WithFailureThreshold(2), circuit.WithCooldown(time.Hour)))

	_, err := g.FetchMembers(ctx)
	require.Error(t, err)
	_, err = g.FetchMembers(ctx)
	require.Error(t, err)

	// circuit is open now; the inner source is no longer called
	inner.SetError(nil)
	_, err = g.FetchMembers(ctx)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
}

func TestGuardedSourcePassesThroughWhenHealthy(t *testing.T) {
	g := NewGuardedSource(NewStaticSource(snapshotOf(3)), nil)

	members, err := g.FetchMembers(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 3)
}
