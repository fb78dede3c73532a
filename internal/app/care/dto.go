package care

import "tamaverse/internal/domain/pet"

type FeedRequest struct {
	FoodID string `json:"food_id"`
}

type Response struct {
	State pet.PetAggregate `json:"state"`
}
