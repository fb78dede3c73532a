package tick

import (
	"context"
	"errors"
	"testing"
	"time"

	"tamaverse/internal/adapter/repo/memory"
	"tamaverse/internal/app/ports"
	"tamaverse/internal/domain/pet"
)

type fakeMetrics struct {
	success   int
	rewarded  int
	conflicts int
	failures  int
}

func (m *fakeMetrics) RecordSuccess(rewardPaid bool) {
	m.success++
	if rewardPaid {
		m.rewarded++
	}
}
func (m *fakeMetrics) RecordConflict() { m.conflicts++ }
func (m *fakeMetrics) RecordFailure()  { m.failures++ }

func newUC(store *memory.Store, metrics ports.TickMetrics) UseCase {
	return UseCase{
		TxManager: memory.NewTxManager(store),
		PetRepo:   memory.NewPetSaveRepo(store),
		EventRepo: memory.NewEventRepo(store),
		Metrics:   metrics,
		Tuning:    pet.DefaultTuning(),
		Now:       func() time.Time { return time.Unix(1000, 0) },
	}
}

func TestExecute_AppliesDecayAndPersists(t *testing.T) {
	store := memory.NewStore()
	state := pet.NewPet("Blu", "", "mudkip", false, pet.DefaultTuning())
	state.Version = 1
	store.SeedSave(state)
	metrics := &fakeMetrics{}

	out, err := newUC(store, metrics).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.Before.Satiation != 10 || out.After.Satiation != 8 {
		t.Fatalf("unexpected satiation: before=%d after=%d", out.Before.Satiation, out.After.Satiation)
	}
	if out.After.Happiness != 9 {
		t.Fatalf("unexpected happiness: %d", out.After.Happiness)
	}
	if out.MoneyDelta != 0 {
		t.Fatalf("expected no reward below thresholds, got delta %d", out.MoneyDelta)
	}
	if metrics.success != 1 || metrics.rewarded != 0 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}

	persisted, _ := memory.NewPetSaveRepo(store).GetBySlot(context.Background(), pet.DefaultSlot)
	if persisted.Vitals != out.After {
		t.Fatalf("persisted vitals diverge: %+v vs %+v", persisted.Vitals, out.After)
	}
	if persisted.Version != state.Version+1 {
		t.Fatalf("expected version bump, got %d", persisted.Version)
	}
}

func TestExecute_WellKeptPetEarnsReward(t *testing.T) {
	store := memory.NewStore()
	state := pet.NewPet("Blu", "", "mudkip", false, pet.DefaultTuning())
	state.Version = 1
	state.Vitals = pet.Vitals{Health: 100, Satiation: 20, Happiness: 20}
	store.SeedSave(state)
	metrics := &fakeMetrics{}

	out, err := newUC(store, metrics).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.MoneyDelta <= 0 {
		t.Fatalf("expected a reward payout, got delta %d", out.MoneyDelta)
	}
	if metrics.rewarded != 1 {
		t.Fatalf("expected rewarded tick recorded, got %d", metrics.rewarded)
	}
}

func TestExecute_NoSaveSkipsFailureMetric(t *testing.T) {
	store := memory.NewStore()
	metrics := &fakeMetrics{}

	_, err := newUC(store, metrics).Execute(context.Background())
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if metrics.failures != 0 || metrics.conflicts != 0 {
		t.Fatalf("idle tick must not count as failure: %+v", metrics)
	}
}

type conflictRepo struct {
	ports.PetSaveRepository
}

func (r conflictRepo) SaveWithVersion(_ context.Context, _ pet.PetAggregate, _ int64) error {
	return ports.ErrConflict
}

func TestExecute_ConcurrentWriteCountsAsConflict(t *testing.T) {
	store := memory.NewStore()
	seed := pet.NewPet("Blu", "", "mudkip", false, pet.DefaultTuning())
	seed.Version = 1
	store.SeedSave(seed)
	metrics := &fakeMetrics{}

	uc := newUC(store, metrics)
	uc.PetRepo = conflictRepo{PetSaveRepository: memory.NewPetSaveRepo(store)}

	_, err := uc.Execute(context.Background())
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if metrics.conflicts != 1 || metrics.failures != 0 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}
}
