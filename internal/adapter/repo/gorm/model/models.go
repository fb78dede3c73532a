package model

import "time"

// PetSave is the single-slot persisted pet record. Inventory is a JSON
// blob; SchemaVersion drives field-by-field migration on load.
type PetSave struct {
	Slot             string `gorm:"primaryKey"`
	Name             string
	SpriteRef        string
	SpeciesID        string
	Health           int32
	Satiation        int32
	Happiness        int32
	Money            int32
	Inventory        []byte `gorm:"type:jsonb"`
	EvolutionStage   int32
	FullHealthStreak int32
	FinalStage       bool
	Shiny            bool
	SchemaVersion    int32
	Version          int64
	UpdatedAt        time.Time
}

func (PetSave) TableName() string { return "pet_saves" }

type DomainEvent struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Slot       string `gorm:"index"`
	Type       string
	OccurredAt time.Time
	Payload    []byte `gorm:"type:jsonb"`
}

func (DomainEvent) TableName() string { return "domain_events" }

// CatalogCache holds one timestamped catalog blob per cache key.
type CatalogCache struct {
	Key      string `gorm:"primaryKey"`
	Payload  []byte `gorm:"type:jsonb"`
	StoredAt time.Time
}

func (CatalogCache) TableName() string { return "catalog_cache" }
