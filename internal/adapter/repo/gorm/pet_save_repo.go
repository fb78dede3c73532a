package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"tamaverse/internal/adapter/repo/gorm/model"
	"tamaverse/internal/app/ports"
	"tamaverse/internal/domain/pet"

	"gorm.io/gorm"
)

type PetSaveRepo struct {
	db *gorm.DB
}

func NewPetSaveRepo(db *gorm.DB) PetSaveRepo {
	return PetSaveRepo{db: db}
}

func (r PetSaveRepo) GetBySlot(ctx context.Context, slot string) (pet.PetAggregate, error) {
	var m model.PetSave
	if err := getDBFromCtx(ctx, r.db).Where("slot = ?", slot).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pet.PetAggregate{}, ports.ErrNotFound
		}
		return pet.PetAggregate{}, err
	}

	inventory := map[string]int{}
	if len(m.Inventory) > 0 {
		// A corrupt blob is treated as "no save present", not a failure.
		if err := json.Unmarshal(m.Inventory, &inventory); err != nil {
			return pet.PetAggregate{}, ports.ErrNotFound
		}
	}

	return pet.PetAggregate{
		Slot:      m.Slot,
		Name:      m.Name,
		SpriteRef: m.SpriteRef,
		SpeciesID: m.SpeciesID,
		Vitals: pet.Vitals{
			Health:    int(m.Health),
			Satiation: int(m.Satiation),
			Happiness: int(m.Happiness),
		},
		Money:            int(m.Money),
		Inventory:        inventory,
		EvolutionStage:   int(m.EvolutionStage),
		FullHealthStreak: int(m.FullHealthStreak),
		FinalStage:       m.FinalStage,
		Shiny:            m.Shiny,
		SchemaVersion:    int(m.SchemaVersion),
		Version:          m.Version,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}

func (r PetSaveRepo) SaveWithVersion(ctx context.Context, state pet.PetAggregate, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	inventory, err := json.Marshal(state.Inventory)
	if err != nil {
		return err
	}

	if expectedVersion == 0 {
		m := model.PetSave{
			Slot:             state.Slot,
			Name:             state.Name,
			SpriteRef:        state.SpriteRef,
			SpeciesID:        state.SpeciesID,
			Health:           int32(state.Vitals.Health),
			Satiation:        int32(state.Vitals.Satiation),
			Happiness:        int32(state.Vitals.Happiness),
			Money:            int32(state.Money),
			Inventory:        inventory,
			EvolutionStage:   int32(state.EvolutionStage),
			FullHealthStreak: int32(state.FullHealthStreak),
			FinalStage:       state.FinalStage,
			Shiny:            state.Shiny,
			SchemaVersion:    int32(state.SchemaVersion),
			Version:          state.Version,
			UpdatedAt:        state.UpdatedAt,
		}
		return db.Create(&m).Error
	}

	updates := map[string]any{
		"name":               state.Name,
		"sprite_ref":         state.SpriteRef,
		"species_id":         state.SpeciesID,
		"health":             int32(state.Vitals.Health),
		"satiation":          int32(state.Vitals.Satiation),
		"happiness":          int32(state.Vitals.Happiness),
		"money":              int32(state.Money),
		"inventory":          inventory,
		"evolution_stage":    int32(state.EvolutionStage),
		"full_health_streak": int32(state.FullHealthStreak),
		"final_stage":        state.FinalStage,
		"shiny":              state.Shiny,
		"schema_version":     int32(state.SchemaVersion),
		"version":            state.Version,
		"updated_at":         state.UpdatedAt,
	}

	res := db.Model(&model.PetSave{}).
		Where("slot = ? AND version = ?", state.Slot, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r PetSaveRepo) Delete(ctx context.Context, slot string) error {
	res := getDBFromCtx(ctx, r.db).Where("slot = ?", slot).Delete(&model.PetSave{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
