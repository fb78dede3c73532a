package ports

import (
	"context"
	"time"

	"tamaverse/internal/domain/pet"
)

// PetSaveRepository holds at most one pet per slot. SaveWithVersion with
// expectedVersion 0 creates; otherwise it is an optimistic update and
// returns ErrConflict on a version mismatch.
type PetSaveRepository interface {
	GetBySlot(ctx context.Context, slot string) (pet.PetAggregate, error)
	SaveWithVersion(ctx context.Context, state pet.PetAggregate, expectedVersion int64) error
	Delete(ctx context.Context, slot string) error
}

type EventRepository interface {
	Append(ctx context.Context, slot string, events []pet.DomainEvent) error
	ListBySlot(ctx context.Context, slot string, limit int) ([]pet.DomainEvent, error)
}

// CatalogCacheStore persists timestamped catalog blobs. A missing entry is
// reported through ok=false, never as an error.
type CatalogCacheStore interface {
	Get(ctx context.Context, key string) (blob []byte, storedAt time.Time, ok bool, err error)
	Save(ctx context.Context, key string, blob []byte, storedAt time.Time) error
}

// PendingPurchase is a quoted checkout awaiting the user's yes/no.
type PendingPurchase struct {
	Token     string
	Items     map[string]int
	Total     int
	CreatedAt time.Time
}

// CartStore owns the process-lifetime cart and the pending checkout quote.
// Neither survives a restart.
type CartStore interface {
	Snapshot() map[string]int
	Add(id string)
	Remove(id string)
	Clear()
	SetPending(p PendingPurchase)
	Pending(token string) (PendingPurchase, bool)
	ClearPending()
}
