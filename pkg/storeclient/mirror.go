package storeclient

import (
	"sync"

	"github.com/google/uuid"
)

// Mirror is the client-side view of a user's balance and inventory. It is
// updated only from server responses, never from optimistic local guesses,
// so after any completed call it matches what the server committed.
type Mirror struct {
	mu    sync.RWMutex
	cash  int64
	owned map[uuid.UUID]struct{}
}

func NewMirror() *Mirror {
	return &Mirror{
		owned: make(map[uuid.UUID]struct{}),
	}
}

// Reconcile replaces the whole snapshot with the server's authoritative state.
func (m *Mirror) Reconcile(cash int64, ownedIDs []uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cash = cash
	m.owned = make(map[uuid.UUID]struct{}, len(ownedIDs))
	for _, id := range ownedIDs {
		m.owned[id] = struct{}{}
	}
}

// ApplyPurchase folds a confirmed checkout into the snapshot.
func (m *Mirror) ApplyPurchase(newCash int64, purchasedIDs []uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cash = newCash
	for _, id := range purchasedIDs {
		m.owned[id] = struct{}{}
	}
}

func (m *Mirror) Cash() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.cash
}

func (m *Mirror) Owns(productID uuid.UUID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.owned[productID]
	return ok
}

func (m *Mirror) OwnedIDs() []uuid.UUID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(m.owned))
	for id := range m.owned {
		ids = append(ids, id)
	}

	return ids
}
