package tick

import "tamaverse/internal/domain/pet"

type Response struct {
	UpdatedState pet.PetAggregate  `json:"updated_state"`
	Events       []pet.DomainEvent `json:"events"`
	Before       pet.Vitals        `json:"before"`
	After        pet.Vitals        `json:"after"`
	MoneyDelta   int               `json:"money_delta"`
}
