package usecase

import (
	"errors"
	"sync"
)

var ErrOperationInFlight = errors.New("another operation is in progress for this draft")

// InFlightGuard allows one export or submission per draft at a time. A second
// caller is rejected instead of queued.
type InFlightGuard struct {
	mu       sync.Mutex
	inFlight map[string]string
}

func NewInFlightGuard() *InFlightGuard {
	return &InFlightGuard{inFlight: make(map[string]string)}
}

// Acquire marks draftID busy with op. The returned release must be called once
// the operation finishes, whatever its outcome.
func (g *InFlightGuard) Acquire(draftID, op string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[draftID]; busy {
		return nil, ErrOperationInFlight
	}
	g.inFlight[draftID] = op

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, draftID)
			g.mu.Unlock()
		})
	}, nil
}
