package catalog

// FoodItem is one purchasable, feedable entry of the loaded catalog.
// Deltas follow the satiation-up-is-good convention: both are positive.
type FoodItem struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	SatiationDelta int    `json:"satiation_delta"`
	HappinessDelta int    `json:"happiness_delta"`
	Flavor         string `json:"flavor"`
	SpriteRef      string `json:"sprite_ref"`
	Price          int    `json:"price"`
}

type Catalog struct {
	Items []FoodItem
	index map[string]int
}

func New(items []FoodItem) Catalog {
	c := Catalog{Items: items, index: make(map[string]int, len(items))}
	for i, item := range items {
		c.index[item.ID] = i
	}
	return c
}

func (c Catalog) Lookup(id string) (FoodItem, bool) {
	i, ok := c.index[id]
	if !ok {
		return FoodItem{}, false
	}
	return c.Items[i], true
}

func (c Catalog) Len() int {
	return len(c.Items)
}

type SpeciesEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SpriteRef string `json:"sprite_ref"`
}

// EvolutionChain is a species' evolution line flattened to ordered stages,
// earliest form first.
type EvolutionChain struct {
	Stages []SpeciesEntry `json:"stages"`
}

// Next returns the stage that follows speciesID in the chain, and whether
// that stage is the last one.
func (c EvolutionChain) Next(speciesID string) (SpeciesEntry, bool, bool) {
	for i, stage := range c.Stages {
		if stage.ID == speciesID && i+1 < len(c.Stages) {
			return c.Stages[i+1], i+2 == len(c.Stages), true
		}
	}
	return SpeciesEntry{}, false, false
}

// Final reports whether speciesID has no further stage in the chain.
func (c EvolutionChain) Final(speciesID string) bool {
	for i, stage := range c.Stages {
		if stage.ID == speciesID {
			return i+1 == len(c.Stages)
		}
	}
	return true
}
