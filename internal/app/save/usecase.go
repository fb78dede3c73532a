package save

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"tamaverse/internal/app/ports"
	"tamaverse/internal/domain/pet"
)

var (
	ErrInvalidRequest = errors.New("invalid save request")
	ErrSaveExists     = errors.New("a save already exists")
)

// One in 64 newborns comes out shiny. Cosmetic only.
const shinyOdds = 64

type CreateUseCase struct {
	TxManager ports.TxManager
	PetRepo   ports.PetSaveRepository
	EventRepo ports.EventRepository
	Catalog   ports.CatalogProvider
	Scheduler ports.Pauser
	Tuning    pet.Tuning
	Now       func() time.Time
	ShinyRoll func() bool
}

func (u CreateUseCase) Execute(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.SpeciesID = strings.TrimSpace(req.SpeciesID)
	if req.Name == "" || req.SpeciesID == "" {
		return CreateResponse{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	roll := u.ShinyRoll
	if roll == nil {
		roll = func() bool { return rand.Intn(shinyOdds) == 0 }
	}

	// Sprite lookup is best effort: a spriteless pet is still a pet.
	spriteRef, err := u.Catalog.SpeciesSprite(ctx, req.SpeciesID)
	if err != nil {
		spriteRef = ""
	}

	foods, err := u.Catalog.Foods(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	var out CreateResponse
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := u.PetRepo.GetBySlot(txCtx, pet.DefaultSlot)
		if err == nil {
			return ErrSaveExists
		}
		if !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		state := pet.NewPet(req.Name, spriteRef, req.SpeciesID, roll(), u.Tuning)
		state.Version = 1
		state.UpdatedAt = nowFn()
		// One unit of every catalog food to get started.
		for _, item := range foods.Items {
			state.AddItem(item.ID, 1)
		}

		if err := u.PetRepo.SaveWithVersion(txCtx, state, 0); err != nil {
			return err
		}
		evt := pet.DomainEvent{
			Type:       pet.EventPetCreated,
			OccurredAt: nowFn(),
			Payload:    map[string]any{"name": state.Name, "species_id": state.SpeciesID, "shiny": state.Shiny},
		}
		if err := u.EventRepo.Append(txCtx, state.Slot, []pet.DomainEvent{evt}); err != nil {
			return err
		}
		out = CreateResponse{State: state}
		return nil
	})
	if err != nil {
		return CreateResponse{}, err
	}

	if u.Scheduler != nil {
		u.Scheduler.Resume()
	}
	return out, nil
}

type LoadUseCase struct {
	PetRepo ports.PetSaveRepository
	Tuning  pet.Tuning
}

// Execute reads the save and migrates older records field by field instead
// of failing: missing inventory becomes empty, missing money becomes the
// starting amount, pre-evolution schemas keep stage and streak at zero.
func (u LoadUseCase) Execute(ctx context.Context) (LoadResponse, error) {
	state, err := u.PetRepo.GetBySlot(ctx, pet.DefaultSlot)
	if err != nil {
		return LoadResponse{}, err
	}
	return LoadResponse{State: Migrate(state, u.Tuning)}, nil
}

// Migrate normalizes a loaded aggregate from any older schema version.
func Migrate(state pet.PetAggregate, tun pet.Tuning) pet.PetAggregate {
	if state.Inventory == nil {
		state.Inventory = map[string]int{}
	}
	if state.SchemaVersion < pet.SchemaVersionCurrent {
		if state.Money <= 0 {
			state.Money = tun.StartingMoney
		}
		if state.FullHealthStreak < 0 {
			state.FullHealthStreak = 0
		}
		if state.EvolutionStage < 0 {
			state.EvolutionStage = 0
		}
		state.SchemaVersion = pet.SchemaVersionCurrent
	}
	state.Clamp()
	return state
}

type DeleteUseCase struct {
	TxManager ports.TxManager
	PetRepo   ports.PetSaveRepository
	EventRepo ports.EventRepository
	Cart      ports.CartStore
	Scheduler ports.Pauser
	Now       func() time.Time
}

func (u DeleteUseCase) Execute(ctx context.Context) error {
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.PetRepo.GetBySlot(txCtx, pet.DefaultSlot)
		if err != nil {
			return err
		}
		evt := pet.DomainEvent{
			Type:       pet.EventSaveDeleted,
			OccurredAt: nowFn(),
			Payload:    map[string]any{"name": state.Name, "species_id": state.SpeciesID},
		}
		if err := u.EventRepo.Append(txCtx, state.Slot, []pet.DomainEvent{evt}); err != nil {
			return err
		}
		return u.PetRepo.Delete(txCtx, pet.DefaultSlot)
	})
	if err != nil {
		return err
	}

	if u.Cart != nil {
		u.Cart.Clear()
		u.Cart.ClearPending()
	}
	if u.Scheduler != nil {
		u.Scheduler.Pause()
	}
	return nil
}
