package status

import (
	"tamaverse/internal/domain/catalog"
	"tamaverse/internal/domain/pet"
)

type Response struct {
	State          pet.PetAggregate   `json:"state"`
	WellbeingScore int                `json:"wellbeing_score"`
	Catalog        []catalog.FoodItem `json:"catalog"`
	Cart           map[string]int     `json:"cart"`
	Paused         bool               `json:"paused"`
}
