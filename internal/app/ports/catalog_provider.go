package ports

import (
	"context"

	"tamaverse/internal/domain/catalog"
)

// CatalogProvider supplies the food catalog and the species data backing
// creation and evolution. Implementations degrade to the fixed fallback
// catalog instead of failing hard; only Foods is allowed to mask upstream
// errors that way.
type CatalogProvider interface {
	Foods(ctx context.Context) (catalog.Catalog, error)
	Species(ctx context.Context) ([]catalog.SpeciesEntry, error)
	SpeciesSprite(ctx context.Context, speciesID string) (string, error)
	EvolutionChain(ctx context.Context, speciesID string) (catalog.EvolutionChain, error)
}
