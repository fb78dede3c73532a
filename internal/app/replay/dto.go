package replay

import "tamaverse/internal/domain/pet"

type Request struct {
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Events []pet.DomainEvent `json:"events"`
}
