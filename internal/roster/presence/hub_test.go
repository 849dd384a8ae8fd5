package presence

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHubDeliversToAllSinks(t *testing.T) {
	h := NewHub(8)

	var mu sync.Mutex
	var first, second []Update
	h.Subscribe(func(u Update) {
		mu.Lock()
		defer mu.Unlock()
		first = append(first, u)
	})
	h.Subscribe(func(u Update) {
		mu.Lock()
		defer mu.Unlock()
		second = append(second, u)
	})

	h.Emit(Update{ActorID: "staff-17", Device: "Chrome on macOS"})
	h.Emit(Update{ActorID: "staff-20"})
	h.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, first, 2)
	assert.Len(t, second, 2)
	assert.Equal(t, "staff-17", first[0].ActorID)
	assert.False(t, first[0].SeenAt.IsZero(), "SeenAt is stamped when missing")
}

func TestHubEmitAfterCloseIsNoop(t *testing.T) {
	h := NewHub(1)
	h.Close()
	assert.NotPanics(t, func() {
		h.Emit(Update{ActorID: "staff-17", SeenAt: time.Now()})
	})
}

func TestHubEmitRacingCloseDoesNotPanic(t *testing.T) {
	h := NewHub(4)
	h.Subscribe(func(Update) {})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Emit(Update{ActorID: "staff-17"})
			}
		}()
	}
	h.Close()
	wg.Wait()
}
