package pet

import "time"

type Vitals struct {
	Health    int `json:"health"`
	Satiation int `json:"satiation"`
	Happiness int `json:"happiness"`
}

// PetAggregate is the single long-lived save-slot aggregate. All bounded
// fields are re-clamped after every mutation; inventory counts and money
// never go negative.
type PetAggregate struct {
	Slot             string         `json:"slot"`
	Name             string         `json:"name"`
	SpriteRef        string         `json:"sprite_ref"`
	SpeciesID        string         `json:"species_id"`
	Vitals           Vitals         `json:"vitals"`
	Money            int            `json:"money"`
	Inventory        map[string]int `json:"inventory"`
	EvolutionStage   int            `json:"evolution_stage"`
	FullHealthStreak int            `json:"full_health_streak"`
	FinalStage       bool           `json:"final_stage"`
	Shiny            bool           `json:"shiny"`
	SchemaVersion    int            `json:"schema_version"`
	Version          int64          `json:"version"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// DefaultSlot names the single save slot the store holds.
const DefaultSlot = "primary"

// SchemaVersionCurrent is bumped whenever the persisted shape changes;
// older records are migrated field by field on load.
const SchemaVersionCurrent = 6

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventPetCreated           = "pet_created"
	EventFed                  = "fed"
	EventPlayed               = "played"
	EventTickSettled          = "tick_settled"
	EventNeglectPenalty       = "neglect_penalty"
	EventGoodCareRecovery     = "good_care_recovery"
	EventEvolutionStreakReset = "evolution_streak_reset"
	EventRewardPaid           = "reward_paid"
	EventEvolved              = "evolved"
	EventPurchaseCompleted    = "purchase_completed"
	EventSaveDeleted          = "save_deleted"
)

type TickResult struct {
	UpdatedState PetAggregate  `json:"updated_state"`
	Events       []DomainEvent `json:"events"`
	RewardPaid   int           `json:"reward_paid"`
}
