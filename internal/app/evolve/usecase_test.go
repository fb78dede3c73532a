package evolve

import (
	"context"
	"errors"
	"testing"
	"time"

	"tamaverse/internal/adapter/repo/memory"
	"tamaverse/internal/domain/catalog"
	"tamaverse/internal/domain/pet"
)

type chainProvider struct {
	chain catalog.EvolutionChain
}

func (p chainProvider) Foods(_ context.Context) (catalog.Catalog, error) {
	return catalog.Fallback(), nil
}

func (p chainProvider) Species(_ context.Context) ([]catalog.SpeciesEntry, error) {
	return catalog.FallbackSpecies(), nil
}

func (p chainProvider) SpeciesSprite(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (p chainProvider) EvolutionChain(_ context.Context, _ string) (catalog.EvolutionChain, error) {
	return p.chain, nil
}

func torchicLine() catalog.EvolutionChain {
	return catalog.EvolutionChain{Stages: []catalog.SpeciesEntry{
		{ID: "torchic", Name: "Torchic"},
		{ID: "combusken", Name: "Combusken", SpriteRef: "sprites/combusken.png"},
		{ID: "blaziken", Name: "Blaziken"},
	}}
}

func newUC(store *memory.Store) UseCase {
	return UseCase{
		TxManager: memory.NewTxManager(store),
		PetRepo:   memory.NewPetSaveRepo(store),
		EventRepo: memory.NewEventRepo(store),
		Catalog:   chainProvider{chain: torchicLine()},
		Tuning:    pet.DefaultTuning(),
		Now:       func() time.Time { return time.Unix(1000, 0) },
	}
}

func readyPet() pet.PetAggregate {
	state := pet.NewPet("Flame", "", "torchic", false, pet.DefaultTuning())
	state.Version = 1
	state.Vitals.Health = pet.HealthMax
	state.FullHealthStreak = pet.DefaultTuning().EvolutionStreakTarget
	return state
}

func TestExecute_AdvancesToNextStage(t *testing.T) {
	store := memory.NewStore()
	store.SeedSave(readyPet())
	uc := newUC(store)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.State.SpeciesID != "combusken" {
		t.Fatalf("expected combusken, got %s", out.State.SpeciesID)
	}
	if out.State.EvolutionStage != 1 {
		t.Fatalf("expected stage 1, got %d", out.State.EvolutionStage)
	}
	if out.State.FullHealthStreak != 0 {
		t.Fatalf("expected streak reset, got %d", out.State.FullHealthStreak)
	}
	if out.State.FinalStage {
		t.Fatalf("combusken is not the final stage")
	}
	if out.State.SpriteRef != "sprites/combusken.png" {
		t.Fatalf("expected sprite updated, got %q", out.State.SpriteRef)
	}
	events, _ := memory.NewEventRepo(store).ListBySlot(context.Background(), pet.DefaultSlot, 0)
	if len(events) != 1 || events[0].Type != pet.EventEvolved {
		t.Fatalf("expected evolved event, got %+v", events)
	}
}

func TestExecute_NotReadyRejected(t *testing.T) {
	store := memory.NewStore()
	state := readyPet()
	state.FullHealthStreak = 3
	store.SeedSave(state)

	if _, err := newUC(store).Execute(context.Background()); !errors.Is(err, pet.ErrEvolutionNotReady) {
		t.Fatalf("expected ErrEvolutionNotReady, got %v", err)
	}
	persisted, _ := memory.NewPetSaveRepo(store).GetBySlot(context.Background(), pet.DefaultSlot)
	if persisted.SpeciesID != "torchic" {
		t.Fatalf("failed evolve must not change species")
	}
}

func TestExecute_FinalStageMarked(t *testing.T) {
	store := memory.NewStore()
	state := readyPet()
	state.SpeciesID = "combusken"
	state.EvolutionStage = 1
	store.SeedSave(state)

	out, err := newUC(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.State.SpeciesID != "blaziken" || !out.State.FinalStage {
		t.Fatalf("expected final-stage blaziken, got %+v", out.State)
	}
}
