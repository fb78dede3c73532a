package staticcatalog

import (
	"context"

	"tamaverse/internal/domain/catalog"
)

// Provider serves the fixed offline catalog. It backs the remote provider
// as its fallback and stands alone when no network source is configured.
type Provider struct{}

func (Provider) Foods(_ context.Context) (catalog.Catalog, error) {
	return catalog.Fallback(), nil
}

func (Provider) Species(_ context.Context) ([]catalog.SpeciesEntry, error) {
	return catalog.FallbackSpecies(), nil
}

func (Provider) SpeciesSprite(_ context.Context, _ string) (string, error) {
	return "", nil
}

// EvolutionChain returns a single-stage chain: without the remote graph the
// pet simply has nowhere to evolve to.
func (Provider) EvolutionChain(_ context.Context, speciesID string) (catalog.EvolutionChain, error) {
	return catalog.EvolutionChain{Stages: []catalog.SpeciesEntry{{ID: speciesID, Name: speciesID}}}, nil
}
