package memory

import (
	"context"

	"tamaverse/internal/domain/pet"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, slot string, events []pet.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	defer r.store.enter(ctx)()
	r.store.events[slot] = append(r.store.events[slot], events...)
	return nil
}

// ListBySlot returns newest first, matching the gorm repo's ordering.
func (r EventRepo) ListBySlot(ctx context.Context, slot string, limit int) ([]pet.DomainEvent, error) {
	defer r.store.enter(ctx)()
	stored := r.store.events[slot]
	out := make([]pet.DomainEvent, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
