package care

import (
	"context"
	"errors"
	"strings"
	"time"

	"tamaverse/internal/app/ports"
	"tamaverse/internal/domain/pet"
)

var ErrInvalidRequest = errors.New("invalid care request")

type UseCase struct {
	TxManager ports.TxManager
	PetRepo   ports.PetSaveRepository
	EventRepo ports.EventRepository
	Catalog   ports.CatalogProvider
	Tuning    pet.Tuning
	Now       func() time.Time
}

func (u UseCase) Feed(ctx context.Context, req FeedRequest) (Response, error) {
	req.FoodID = strings.TrimSpace(req.FoodID)
	if req.FoodID == "" {
		return Response{}, ErrInvalidRequest
	}

	foods, err := u.Catalog.Foods(ctx)
	if err != nil {
		return Response{}, err
	}
	item, ok := foods.Lookup(req.FoodID)
	if !ok {
		return Response{}, pet.ErrUnknownFood
	}

	nowFn := u.now()
	var out Response
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.PetRepo.GetBySlot(txCtx, pet.DefaultSlot)
		if err != nil {
			return err
		}
		expected := state.Version
		if err := state.Feed(item); err != nil {
			return err
		}
		state.Version++
		state.UpdatedAt = nowFn()
		if err := u.PetRepo.SaveWithVersion(txCtx, state, expected); err != nil {
			return err
		}
		evt := pet.DomainEvent{
			Type:       pet.EventFed,
			OccurredAt: nowFn(),
			Payload: map[string]any{
				"food_id":   item.ID,
				"flavor":    item.Flavor,
				"satiation": state.Vitals.Satiation,
				"happiness": state.Vitals.Happiness,
			},
		}
		if err := u.EventRepo.Append(txCtx, state.Slot, []pet.DomainEvent{evt}); err != nil {
			return err
		}
		out = Response{State: state}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func (u UseCase) Play(ctx context.Context) (Response, error) {
	nowFn := u.now()
	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.PetRepo.GetBySlot(txCtx, pet.DefaultSlot)
		if err != nil {
			return err
		}
		expected := state.Version
		state.Play(u.Tuning)
		state.Version++
		state.UpdatedAt = nowFn()
		if err := u.PetRepo.SaveWithVersion(txCtx, state, expected); err != nil {
			return err
		}
		evt := pet.DomainEvent{
			Type:       pet.EventPlayed,
			OccurredAt: nowFn(),
			Payload: map[string]any{
				"satiation": state.Vitals.Satiation,
				"happiness": state.Vitals.Happiness,
			},
		}
		if err := u.EventRepo.Append(txCtx, state.Slot, []pet.DomainEvent{evt}); err != nil {
			return err
		}
		out = Response{State: state}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func (u UseCase) now() func() time.Time {
	if u.Now != nil {
		return u.Now
	}
	return time.Now
}
