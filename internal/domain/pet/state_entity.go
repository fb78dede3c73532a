package pet

import (
	"errors"

	"tamaverse/internal/domain/catalog"
)

var (
	ErrNoStock     = errors.New("no stock for food item")
	ErrUnknownFood = errors.New("food item not in catalog")
)

func NewPet(name, spriteRef, speciesID string, shiny bool, tun Tuning) PetAggregate {
	return PetAggregate{
		Slot:      DefaultSlot,
		Name:      name,
		SpriteRef: spriteRef,
		SpeciesID: speciesID,
		Vitals: Vitals{
			Health:    HealthMax,
			Satiation: tun.StartingSatiation,
			Happiness: tun.StartingHappiness,
		},
		Money:         tun.StartingMoney,
		Inventory:     map[string]int{},
		Shiny:         shiny,
		SchemaVersion: SchemaVersionCurrent,
	}
}

func (s *PetAggregate) AddItem(item string, amount int) {
	if amount <= 0 || item == "" {
		return
	}
	if s.Inventory == nil {
		s.Inventory = map[string]int{}
	}
	s.Inventory[item] += amount
}

func (s *PetAggregate) ConsumeItem(item string, amount int) bool {
	if amount <= 0 || item == "" || s.Inventory == nil {
		return false
	}
	current := s.Inventory[item]
	if current < amount {
		return false
	}
	s.Inventory[item] = current - amount
	return true
}

// Feed consumes one unit of the item and applies its deltas. On error the
// aggregate is left untouched.
func (s *PetAggregate) Feed(item catalog.FoodItem) error {
	if s.Inventory[item.ID] <= 0 {
		return ErrNoStock
	}
	s.Inventory[item.ID]--
	s.Vitals.Satiation += item.SatiationDelta
	s.Vitals.Happiness += item.HappinessDelta
	s.Clamp()
	return nil
}

// Play trades a bit of satiation for happiness.
func (s *PetAggregate) Play(tun Tuning) {
	s.Vitals.Happiness += tun.PlayHappinessGain
	s.Vitals.Satiation -= tun.PlaySatiationCost
	s.Clamp()
}

// Clamp normalizes every bounded field into its declared range.
func (s *PetAggregate) Clamp() {
	s.Vitals.Satiation = clamp(s.Vitals.Satiation, 0, SatiationMax)
	s.Vitals.Happiness = clamp(s.Vitals.Happiness, 0, HappinessMax)
	s.Vitals.Health = clamp(s.Vitals.Health, HealthFloor, HealthMax)
	if s.Money < 0 {
		s.Money = 0
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
