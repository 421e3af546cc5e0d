// Package storage keeps the operator's transient room selection.
package storage

import (
	"context"
	"sort"
	"sync"
)

// SelectionStore holds the rooms an operator has picked before check-in.
// Nothing here is durable; a lost selection is simply re-picked.
type SelectionStore interface {
	// Toggle adds roomID when absent and removes it when present.
	// It reports whether the room is selected afterwards.
	Toggle(ctx context.Context, session string, roomID uint) (bool, error)
	Remove(ctx context.Context, session string, roomIDs ...uint) error
	// Members returns the selection in the order rooms were added.
	Members(ctx context.Context, session string) ([]uint, error)
	Clear(ctx context.Context, session string) error
}

type MemorySelectionStore struct {
	mu       sync.Mutex
	sessions map[string][]uint
}

func NewMemorySelectionStore() *MemorySelectionStore {
	return &MemorySelectionStore{sessions: map[string][]uint{}}
}

func (m *MemorySelectionStore) Toggle(_ context.Context, session string, roomID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.sessions[session]
	for i, id := range ids {
		if id == roomID {
			m.sessions[session] = append(ids[:i:i], ids[i+1:]...)
			return false, nil
		}
	}
	m.sessions[session] = append(ids, roomID)
	return true, nil
}

func (m *MemorySelectionStore) Remove(_ context.Context, session string, roomIDs ...uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	drop := make(map[uint]struct{}, len(roomIDs))
	for _, id := range roomIDs {
		drop[id] = struct{}{}
	}
	kept := make([]uint, 0, len(m.sessions[session]))
	for _, id := range m.sessions[session] {
		if _, ok := drop[id]; !ok {
			kept = append(kept, id)
		}
	}
	m.sessions[session] = kept
	return nil
}

func (m *MemorySelectionStore) Members(_ context.Context, session string) ([]uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]uint, len(m.sessions[session]))
	copy(out, m.sessions[session])
	return out, nil
}

func (m *MemorySelectionStore) Clear(_ context.Context, session string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, session)
	return nil
}

// sortByAdded orders room ids by the score they were added with.
func sortByAdded(ids []uint, scores map[uint]float64) []uint {
	sort.SliceStable(ids, func(i, j int) bool { return scores[ids[i]] < scores[ids[j]] })
	return ids
}
