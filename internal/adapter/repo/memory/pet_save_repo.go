package memory

import (
	"context"

	"tamaverse/internal/app/ports"
	"tamaverse/internal/domain/pet"
)

type PetSaveRepo struct {
	store *Store
}

func NewPetSaveRepo(store *Store) PetSaveRepo {
	return PetSaveRepo{store: store}
}

func (r PetSaveRepo) GetBySlot(ctx context.Context, slot string) (pet.PetAggregate, error) {
	defer r.store.enter(ctx)()
	state, ok := r.store.saves[slot]
	if !ok {
		return pet.PetAggregate{}, ports.ErrNotFound
	}
	return clonePet(state), nil
}

// SaveWithVersion mirrors the postgres repo: expectedVersion 0 means insert
// and anything else is a guarded update against the stored version.
func (r PetSaveRepo) SaveWithVersion(ctx context.Context, state pet.PetAggregate, expectedVersion int64) error {
	defer r.store.enter(ctx)()
	current, ok := r.store.saves[state.Slot]
	if expectedVersion == 0 {
		if ok {
			return ports.ErrConflict
		}
		r.store.saves[state.Slot] = clonePet(state)
		return nil
	}
	if !ok || current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.saves[state.Slot] = clonePet(state)
	return nil
}

func (r PetSaveRepo) Delete(ctx context.Context, slot string) error {
	defer r.store.enter(ctx)()
	if _, ok := r.store.saves[slot]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.saves, slot)
	return nil
}
