package replay

import (
	"context"

	"tamaverse/internal/app/ports"
	"tamaverse/internal/domain/pet"
)

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	events, err := u.Events.ListBySlot(ctx, pet.DefaultSlot, req.Limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Events: filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)}, nil
}

func filterByTimeWindow(events []pet.DomainEvent, from, to int64) []pet.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]pet.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}
