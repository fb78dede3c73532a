package shop

import (
	"tamaverse/internal/domain/catalog"
	"tamaverse/internal/domain/pet"
)

type CartRequest struct {
	FoodID string `json:"food_id"`
}

type CartView struct {
	Items map[string]int `json:"items"`
	Total int            `json:"total"`
}

type Quote struct {
	Token string         `json:"token"`
	Items map[string]int `json:"items"`
	Total int            `json:"total"`
}

type ConfirmRequest struct {
	Token string `json:"token"`
}

type ConfirmResponse struct {
	State pet.PetAggregate `json:"state"`
	Spent int              `json:"spent"`
}

type CatalogView struct {
	Items []catalog.FoodItem `json:"items"`
}
