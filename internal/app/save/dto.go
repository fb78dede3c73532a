package save

import "tamaverse/internal/domain/pet"

type CreateRequest struct {
	Name      string `json:"name"`
	SpeciesID string `json:"species_id"`
}

type CreateResponse struct {
	State pet.PetAggregate `json:"state"`
}

type LoadResponse struct {
	State pet.PetAggregate `json:"state"`
}
