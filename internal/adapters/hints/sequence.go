package hints

import (
	"dispatch-board-service/internal/ports"
	"slices"
	"sync"
)

// Return a deterministic source cycling through seq in order.
// Intended for tests and demos needing reproducible suggestions.
func NewSequenceSource(seq []string) (ports.HintSource, error) {
	if err := validateCatalog(seq); err != nil {
		return nil, err
	}
	seq = slices.Clone(seq)

	var (
		mu   sync.Mutex
		next int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()

		h := seq[next%len(seq)]
		next++
		return h
	}, nil
}
