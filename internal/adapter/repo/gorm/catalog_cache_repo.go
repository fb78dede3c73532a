package gormrepo

import (
	"context"
	"errors"
	"time"

	"tamaverse/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogCacheRepo struct {
	db *gorm.DB
}

func NewCatalogCacheRepo(db *gorm.DB) CatalogCacheRepo {
	return CatalogCacheRepo{db: db}
}

func (r CatalogCacheRepo) Get(ctx context.Context, key string) ([]byte, time.Time, bool, error) {
	var m model.CatalogCache
	if err := getDBFromCtx(ctx, r.db).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, time.Time{}, false, nil
		}
		return nil, time.Time{}, false, err
	}
	return m.Payload, m.StoredAt, true, nil
}

func (r CatalogCacheRepo) Save(ctx context.Context, key string, blob []byte, storedAt time.Time) error {
	m := model.CatalogCache{Key: key, Payload: blob, StoredAt: storedAt}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "stored_at"}),
		}).
		Create(&m).Error
}
