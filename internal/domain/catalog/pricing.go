package catalog

import "math"

const (
	FloorPrice = 5

	priceBaseOffset     = 5
	priceSatietyWeight  = 2
	priceJoyWeight      = 3
	growthFactorDivisor = 50.0
	growthFactorMax     = 1.5
)

// Firmness is the discrete rarity-like category of a catalog source entry.
// It only influences the derived price and is never shown to the user.
type Firmness string

const (
	FirmnessVerySoft  Firmness = "very-soft"
	FirmnessSoft      Firmness = "soft"
	FirmnessHard      Firmness = "hard"
	FirmnessVeryHard  Firmness = "very-hard"
	FirmnessSuperHard Firmness = "super-hard"
)

var firmnessFactors = map[Firmness]float64{
	FirmnessVerySoft:  0.95,
	FirmnessSoft:      1.00,
	FirmnessHard:      1.10,
	FirmnessVeryHard:  1.20,
	FirmnessSuperHard: 1.30,
}

// Price derives a deterministic price from catalog source attributes.
// It is computed once at catalog load, never at purchase time.
func Price(satiationDelta, happinessDelta int, firmness Firmness, growthTime int) int {
	base := float64(priceBaseOffset + satiationDelta*priceSatietyWeight + happinessDelta*priceJoyWeight)
	price := int(math.Round(base * firmnessFactor(firmness) * GrowthFactor(growthTime)))
	if price < FloorPrice {
		return FloorPrice
	}
	return price
}

func firmnessFactor(f Firmness) float64 {
	if factor, ok := firmnessFactors[f]; ok {
		return factor
	}
	return 1.0
}

func GrowthFactor(growthTime int) float64 {
	factor := 1 + float64(growthTime)/growthFactorDivisor
	if factor < 1 {
		return 1
	}
	if factor > growthFactorMax {
		return growthFactorMax
	}
	return factor
}

// DeriveEffects maps raw source attributes (berry size and summed flavor
// potency) to the in-game stat deltas.
func DeriveEffects(size, totalFlavorPotency int) (satiationDelta, happinessDelta int) {
	satiationDelta = clampInt(int(math.Round(float64(size)/30))+2, 2, 10)
	happinessDelta = int(math.Round(float64(totalFlavorPotency) / 12))
	if happinessDelta == 0 {
		happinessDelta = 1
	}
	happinessDelta = clampInt(happinessDelta, 1, 8)
	return satiationDelta, happinessDelta
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
