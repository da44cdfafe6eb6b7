// Package services orchestrates the screens: each service owns one entity's
// session store, its view projection and selection, and pushes mutations
// through the API client. Stores only change on confirmed server responses —
// there are no optimistic writes to roll back.
package services

import (
	"errors"
	"sync"

	"stockpilot/pkg/metrics"
)

// ErrMutationPending is returned when a mutation targets a record that
// already has one outstanding. The caller surfaces it and retries after the
// first mutation settles.
var ErrMutationPending = errors.New("a mutation is already pending for this record")

// guard serialises mutations per record ID. Concurrent mutations on
// different records are fine; a second one on the same record is rejected
// rather than queued, since the client cannot know which response the
// backend would apply last.
type guard struct {
	mu       sync.Mutex
	entity   string
	inFlight map[string]struct{}
}

func newGuard(entity string) *guard {
	return &guard{entity: entity, inFlight: make(map[string]struct{})}
}

// begin claims id for a mutation and returns the release func. Returns
// ErrMutationPending if the id is already claimed.
func (g *guard) begin(id string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[id]; busy {
		metrics.MutationsRejected.WithLabelValues(g.entity).Inc()
		return nil, ErrMutationPending
	}
	g.inFlight[id] = struct{}{}
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.inFlight, id)
	}, nil
}
