package tick

import (
	"context"
	"errors"
	"time"

	"tamaverse/internal/app/ports"
	"tamaverse/internal/domain/pet"
)

// UseCase applies one tick. The scheduler and the explicit "let time pass"
// action both call Execute, so their effects are identical by construction.
type UseCase struct {
	TxManager ports.TxManager
	PetRepo   ports.PetSaveRepository
	EventRepo ports.EventRepository
	Metrics   ports.TickMetrics
	Settle    pet.TickService
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

		result := u.Settle.Settle(state, nowFn(), u.Tuning)

		if err := u.PetRepo.SaveWithVersion(txCtx, result.UpdatedState, state.Version); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, state.Slot, result.Events); err != nil {
			return err
		}

		out = Response{
			UpdatedState: result.UpdatedState,
			Events:       result.Events,
			Before:       state.Vitals,
			After:        result.UpdatedState.Vitals,
			MoneyDelta:   result.UpdatedState.Money - state.Money,
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else if !errors.Is(err, ports.ErrNotFound) {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(out.MoneyDelta > 0)
	}
	return out, nil
}
