// Package store keeps update records in a single relational table.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/bdpublic/updates-api/models"
	"gorm.io/gorm"
)

const (
	newestFirst = "created_at DESC, id DESC"
	hotCategory = "hot"
)

type UpdateStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewUpdateStore(db *gorm.DB) *UpdateStore {
	return &UpdateStore{db: db, now: time.Now}
}

// Init creates the updates table if needed and loads the seed records into an
// empty table. It is safe to call on every start.
func (s *UpdateStore) Init(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Update{}); err != nil {
		return wrap("migrate", err)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Update{}).Count(&n).Error; err != nil {
			return wrap("count", err)
		}
		if n > 0 {
			return nil
		}
		for _, in := range seedUpdates {
			u := s.build(in)
			if err := tx.Create(&u).Error; err != nil {
				return wrap("seed", err)
			}
		}
		return nil
	})
}

func (s *UpdateStore) build(in models.NewUpdate) models.Update {
	return models.Update{
		Title:     in.Title,
		Summary:   in.Summary,
		URL:       in.URL,
		Source:    in.Source,
		Category:  in.Category,
		Date:      in.Date,
		CreatedAt: s.now(),
	}
}

// Insert stores a new record and returns its id.
func (s *UpdateStore) Insert(ctx context.Context, in models.NewUpdate) (uint, error) {
	u := s.build(in)
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return 0, wrap("insert", err)
	}
	return u.ID, nil
}

func (s *UpdateStore) ListAll(ctx context.Context) ([]models.Update, error) {
	updates := []models.Update{}
	if err := s.db.WithContext(ctx).Order(newestFirst).Find(&updates).Error; err != nil {
		return nil, wrap("list", err)
	}
	return updates, nil
}

// ListByCategory matches the category exactly, without any normalization.
func (s *UpdateStore) ListByCategory(ctx context.Context, category string) ([]models.Update, error) {
	updates := []models.Update{}
	err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order(newestFirst).
		Find(&updates).Error
	if err != nil {
		return nil, wrap("list by category", err)
	}
	return updates, nil
}

func (s *UpdateStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Update{}).Count(&n).Error; err != nil {
		return 0, wrap("count", err)
	}
	return n, nil
}

func (s *UpdateStore) ExistsURL(ctx context.Context, url string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Update{}).Where("url = ?", url).Limit(1).Count(&n).Error
	if err != nil {
		return false, wrap("exists", err)
	}
	return n > 0, nil
}

type categoryCount struct {
	Category *string
	Count    int64
}

// Stats aggregates the table. SourcesCount and Views are left for the caller.
func (s *UpdateStore) Stats(ctx context.Context) (models.Stats, error) {
	stats := models.Stats{ByCategory: map[string]int64{}}
	db := s.db.WithContext(ctx)

	var rows []categoryCount
	err := db.Model(&models.Update{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return stats, wrap("stats", err)
	}
	for _, r := range rows {
		key := ""
		if r.Category != nil {
			key = *r.Category
		}
		stats.ByCategory[key] += r.Count
		stats.TotalUpdates += r.Count
	}
	stats.HotUpdates = stats.ByCategory[hotCategory]

	var latest models.Update
	err = db.Order(newestFirst).Take(&latest).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return stats, wrap("stats", err)
	default:
		stats.LastUpdated = &latest.CreatedAt
	}
	return stats, nil
}
