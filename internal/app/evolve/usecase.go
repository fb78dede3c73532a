package evolve

import (
	"context"
	"time"

	"tamaverse/internal/app/ports"
	"tamaverse/internal/domain/pet"
)

type UseCase struct {
	TxManager ports.TxManager
	PetRepo   ports.PetSaveRepository
	EventRepo ports.EventRepository
	Catalog   ports.CatalogProvider
	Tuning    pet.Tuning
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context) (Response, error) {
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.PetRepo.GetBySlot(txCtx, pet.DefaultSlot)
		if err != nil {
			return err
		}

		chain, err := u.Catalog.EvolutionChain(txCtx, state.SpeciesID)
		if err != nil {
			return err
		}

		next, evt, err := pet.Evolve(state, chain, nowFn(), u.Tuning)
		if err != nil {
			return err
		}
		if err := u.PetRepo.SaveWithVersion(txCtx, next, state.Version); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, next.Slot, []pet.DomainEvent{evt}); err != nil {
			return err
		}
		out = Response{State: next}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
