package registry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dirmodels "quorum/internal/directory/models"
)

func snapshotOf(n int) []*dirmodels.Member {
	out := make([]*dirmodels.Member, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &dirmodels.Member{ID: uuid.New(), FullName: "Member"})
	}
	return out
}

func TestStaticSourceClonesSnapshot(t *testing.T) {
	src := NewStaticSource(snapshotOf(2))

	first, err := src.FetchMembers(context.Background())
	require.NoError(t, err)
	first[0].FullName = "mutated"

	second, err := src.FetchMembers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Member", second[0].FullName)
}

func TestStaticSourceHonorsContextDuringLatency(t *testing.T) {
	src := NewStaticSource(snapshotOf(1), WithLatency(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := src.FetchMembers(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
