package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	staticcatalog "tamaverse/internal/adapter/catalog/static"
	"tamaverse/internal/app/ports"
	"tamaverse/internal/domain/catalog"
)

// Cache keys carry a version suffix: bumping it invalidates blobs written
// by incompatible older builds.
const (
	foodsCacheKey   = "berries_cache_v2"
	speciesCacheKey = "pokemon_list_cache_v2"
)

const (
	berryListLimit   = 64
	pokemonListLimit = 386 // gen 1-3 by national dex
)

type Config struct {
	Client     Client
	Cache      ports.CatalogCacheStore
	FoodCount  int
	FoodsTTL   time.Duration
	SpeciesTTL time.Duration
	Now        func() time.Time
	// OnFallback is invoked when the remote source fails and the fixed
	// catalog is served instead. Never fatal.
	OnFallback func(err error)
}

// Provider loads the food catalog and species data from PokeAPI, caching
// each list with its own TTL and degrading to the static catalog whenever
// the remote source misbehaves.
type Provider struct {
	cfg      Config
	fallback staticcatalog.Provider
}

func DefaultConfig() Config {
	return Config{
		Client:     NewClient(DefaultBaseURL, nil),
		FoodCount:  6,
		FoodsTTL:   24 * time.Hour,
		SpeciesTTL: 7 * 24 * time.Hour,
		Now:        time.Now,
	}
}

func NewProvider(cfg Config) Provider {
	def := DefaultConfig()
	if cfg.Client.HTTPClient == nil {
		cfg.Client = NewClient(cfg.Client.BaseURL, nil)
	}
	if cfg.FoodCount <= 0 {
		cfg.FoodCount = def.FoodCount
	}
	if cfg.FoodsTTL <= 0 {
		cfg.FoodsTTL = def.FoodsTTL
	}
	if cfg.SpeciesTTL <= 0 {
		cfg.SpeciesTTL = def.SpeciesTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return Provider{cfg: cfg}
}

func (p Provider) Foods(ctx context.Context) (catalog.Catalog, error) {
	var cached []catalog.FoodItem
	if p.readCache(ctx, foodsCacheKey, p.cfg.FoodsTTL, &cached) && len(cached) > 0 {
		return catalog.New(cached), nil
	}

	items, err := p.fetchFoods(ctx)
	if err != nil {
		if p.cfg.OnFallback != nil {
			p.cfg.OnFallback(err)
		}
		return p.fallback.Foods(ctx)
	}
	p.writeCache(ctx, foodsCacheKey, items)
	return catalog.New(items), nil
}

func (p Provider) Species(ctx context.Context) ([]catalog.SpeciesEntry, error) {
	var cached []catalog.SpeciesEntry
	if p.readCache(ctx, speciesCacheKey, p.cfg.SpeciesTTL, &cached) && len(cached) > 0 {
		return cached, nil
	}

	list, err := p.cfg.Client.pokemonList(ctx, pokemonListLimit)
	if err != nil {
		if p.cfg.OnFallback != nil {
			p.cfg.OnFallback(err)
		}
		return p.fallback.Species(ctx)
	}
	entries := make([]catalog.SpeciesEntry, 0, len(list.Results))
	for _, res := range list.Results {
		entries = append(entries, catalog.SpeciesEntry{ID: res.Name, Name: prettyLabel(res.Name)})
	}
	p.writeCache(ctx, speciesCacheKey, entries)
	return entries, nil
}

func (p Provider) SpeciesSprite(ctx context.Context, speciesID string) (string, error) {
	detail, err := p.cfg.Client.pokemon(ctx, speciesID)
	if err != nil {
		return "", err
	}
	return detail.Sprites.FrontDefault, nil
}

func (p Provider) EvolutionChain(ctx context.Context, speciesID string) (catalog.EvolutionChain, error) {
	species, err := p.cfg.Client.species(ctx, speciesID)
	if err != nil {
		return catalog.EvolutionChain{}, err
	}
	detail, err := p.cfg.Client.evolutionChain(ctx, species.EvolutionChain.URL)
	if err != nil {
		return catalog.EvolutionChain{}, err
	}

	// Branching chains (Eevee and friends) follow the first branch.
	stages := make([]catalog.SpeciesEntry, 0, 3)
	for link := &detail.Chain; link != nil; {
		entry := catalog.SpeciesEntry{ID: link.Species.Name, Name: prettyLabel(link.Species.Name)}
		if sprite, err := p.SpeciesSprite(ctx, link.Species.Name); err == nil {
			entry.SpriteRef = sprite
		}
		stages = append(stages, entry)
		if len(link.EvolvesTo) == 0 {
			break
		}
		link = &link.EvolvesTo[0]
	}
	return catalog.EvolutionChain{Stages: stages}, nil
}

func (p Provider) fetchFoods(ctx context.Context) ([]catalog.FoodItem, error) {
	list, err := p.cfg.Client.berryList(ctx, berryListLimit)
	if err != nil {
		return nil, err
	}
	picks := list.Results
	if len(picks) > p.cfg.FoodCount {
		picks = picks[:p.cfg.FoodCount]
	}
	if len(picks) == 0 {
		return nil, fmt.Errorf("pokeapi: empty berry list")
	}

	items := make([]catalog.FoodItem, 0, len(picks))
	for _, pick := range picks {
		berry, err := p.cfg.Client.berry(ctx, pick.URL)
		if err != nil {
			return nil, err
		}
		item, err := p.cfg.Client.item(ctx, berry.Item.URL)
		if err != nil {
			return nil, err
		}
		items = append(items, mapBerryToFood(berry, item))
	}
	return items, nil
}

func mapBerryToFood(berry berryDetail, item itemDetail) catalog.FoodItem {
	totalPotency := 0
	for _, f := range berry.Flavors {
		totalPotency += f.Potency
	}
	satiation, happiness := catalog.DeriveEffects(berry.Size, totalPotency)
	firmness := catalog.Firmness(berry.Firmness.Name)
	if berry.Firmness.Name == "" {
		firmness = catalog.FirmnessSoft
	}

	return catalog.FoodItem{
		ID:             berry.Name,
		Label:          prettyLabel(berry.Name),
		SatiationDelta: satiation,
		HappinessDelta: happiness,
		Flavor:         fmt.Sprintf("A nutritious %s!", prettyLabel(item.Name)),
		SpriteRef:      item.Sprites.Default,
		Price:          catalog.Price(satiation, happiness, firmness, berry.GrowthTime),
	}
}

// readCache reports whether key held a fresh, well-formed blob. Expired or
// malformed entries count as a miss, never as an error.
func (p Provider) readCache(ctx context.Context, key string, ttl time.Duration, out any) bool {
	if p.cfg.Cache == nil {
		return false
	}
	blob, storedAt, ok, err := p.cfg.Cache.Get(ctx, key)
	if err != nil || !ok {
		return false
	}
	if p.cfg.Now().Sub(storedAt) >= ttl {
		return false
	}
	return json.Unmarshal(blob, out) == nil
}

func (p Provider) writeCache(ctx context.Context, key string, value any) {
	if p.cfg.Cache == nil {
		return
	}
	blob, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = p.cfg.Cache.Save(ctx, key, blob, p.cfg.Now())
}

func prettyLabel(name string) string {
	parts := strings.Split(name, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
