package catalog

// Fallback is the fixed offline catalog used whenever the remote source is
// unavailable. Prices match what Price would derive for soft firmness and
// zero growth time.
func Fallback() Catalog {
	return New([]FoodItem{
		{ID: "berry", Label: "Berry", SatiationDelta: 8, HappinessDelta: 2, Flavor: "A wholesome berry!", Price: 27},
		{ID: "apple", Label: "Apple", SatiationDelta: 8, HappinessDelta: 2, Flavor: "A crisp apple!", Price: 27},
		{ID: "candy", Label: "Candy", SatiationDelta: 3, HappinessDelta: 6, Flavor: "A delicious candy!", Price: 29},
	})
}

// FallbackSpecies backs the creation flow when the remote species list
// cannot be fetched.
func FallbackSpecies() []SpeciesEntry {
	return []SpeciesEntry{
		{ID: "mudkip", Name: "Mudkip"},
		{ID: "torchic", Name: "Torchic"},
		{ID: "treecko", Name: "Treecko"},
	}
}
