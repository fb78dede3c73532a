package pet

import (
	"errors"
	"time"

	"tamaverse/internal/domain/catalog"
)

var (
	ErrEvolutionNotReady = errors.New("evolution preconditions not met")
	ErrUnknownSpecies    = errors.New("species not in evolution chain")
)

// Evolve advances the pet to the next stage of its evolution chain. It
// requires a full-health streak at the configured target and full health
// right now. A chain without a next stage leaves the state unchanged.
func Evolve(state PetAggregate, chain catalog.EvolutionChain, now time.Time, tun Tuning) (PetAggregate, DomainEvent, error) {
	if state.FinalStage || state.Vitals.Health != HealthMax || state.FullHealthStreak < tun.EvolutionStreakTarget {
		return state, DomainEvent{}, ErrEvolutionNotReady
	}

	nextStage, isLast, ok := chain.Next(state.SpeciesID)
	if !ok {
		return state, DomainEvent{}, ErrUnknownSpecies
	}

	next := state
	next.SpeciesID = nextStage.ID
	next.Name = nextStage.Name
	if nextStage.SpriteRef != "" {
		next.SpriteRef = nextStage.SpriteRef
	}
	next.EvolutionStage++
	next.FullHealthStreak = 0
	next.FinalStage = isLast
	next.UpdatedAt = now
	next.Version++

	evt := DomainEvent{
		Type:       EventEvolved,
		OccurredAt: now,
		Payload: map[string]any{
			"from_species": state.SpeciesID,
			"to_species":   next.SpeciesID,
			"stage":        next.EvolutionStage,
			"final_stage":  next.FinalStage,
		},
	}
	return next, evt, nil
}
