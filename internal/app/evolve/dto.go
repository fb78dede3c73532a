package evolve

import "tamaverse/internal/domain/pet"

type Response struct {
	State pet.PetAggregate `json:"state"`
}
