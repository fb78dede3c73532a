package status

import (
	"context"

	"tamaverse/internal/app/ports"
	"tamaverse/internal/app/save"
	"tamaverse/internal/domain/pet"
)

type UseCase struct {
	PetRepo   ports.PetSaveRepository
	Catalog   ports.CatalogProvider
	Cart      ports.CartStore
	Scheduler ports.Pauser
	Tuning    pet.Tuning
}

func (u UseCase) Execute(ctx context.Context) (Response, error) {
	state, err := u.PetRepo.GetBySlot(ctx, pet.DefaultSlot)
	if err != nil {
		return Response{}, err
	}
	state = save.Migrate(state, u.Tuning)

	foods, err := u.Catalog.Foods(ctx)
	if err != nil {
		return Response{}, err
	}

	resp := Response{
		State:          state,
		WellbeingScore: pet.WellbeingScore(state.Vitals),
		Catalog:        foods.Items,
		Cart:           map[string]int{},
	}
	if u.Cart != nil {
		resp.Cart = u.Cart.Snapshot()
	}
	if u.Scheduler != nil {
		resp.Paused = u.Scheduler.Paused()
	}
	return resp, nil
}
