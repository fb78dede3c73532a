package memory

import (
	"context"
	"sync"
	"time"

	"tamaverse/internal/domain/pet"
)

type cacheRecord struct {
	blob     []byte
	storedAt time.Time
}

type txTokenKey struct{}

// Store backs every memory repo with one mutex, so the TxManager can make a
// whole usecase body atomic the way the gorm transaction does.
type Store struct {
	mu     sync.Mutex
	saves  map[string]pet.PetAggregate
	events map[string][]pet.DomainEvent
}

func NewStore() *Store {
	return &Store{
		saves:  make(map[string]pet.PetAggregate),
		events: make(map[string][]pet.DomainEvent),
	}
}

// enter locks the store unless ctx already carries the transaction token,
// in which case RunInTx holds the mutex and locking again would deadlock.
// The returned func releases whatever enter acquired.
func (s *Store) enter(ctx context.Context) func() {
	if ctx.Value(txTokenKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) SeedSave(state pet.PetAggregate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[state.Slot] = clonePet(state)
}

func clonePet(state pet.PetAggregate) pet.PetAggregate {
	out := state
	out.Inventory = make(map[string]int, len(state.Inventory))
	for k, v := range state.Inventory {
		out.Inventory[k] = v
	}
	return out
}
