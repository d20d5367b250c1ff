package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-matchmaking/internal/db"
)

// QuotaRepository stores per-day like counters.
type QuotaRepository struct {
	db *gorm.DB
}

// NewQuotaRepository creates a new repository bound to the given DB connection.
func NewQuotaRepository(database *gorm.DB) *QuotaRepository {
	return &QuotaRepository{db: database}
}

// GetCount returns how many likes uid sent on day. A missing row counts as 0.
func (r *QuotaRepository) GetCount(ctx context.Context, uid, day string) (int, error) {
	var row db.DailyLikeCount
	err := r.db.WithContext(ctx).
		Where("uid = ? AND day = ?", uid, day).
		First(&row).Error
	ok, err := found(err)
	if !ok {
		return 0, err
	}
	return row.Count, nil
}

// Increment adds one to uid's counter for day, creating it at 1 if absent,
// and returns the new value.
//
// The increment is a single upsert (count = count + 1) so concurrent callers
// never lose an update.
func (r *QuotaRepository) Increment(ctx context.Context, uid, day string) (int, error) {
	var row db.DailyLikeCount

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "uid"}, {Name: "day"}},
			DoUpdates: clause.Assignments(map[string]any{
				"count":      gorm.Expr("count + 1"),
				"updated_at": time.Now().UTC(),
			}),
		}).Create(&db.DailyLikeCount{UID: uid, Day: day, Count: 1}).Error; err != nil {
			return fmt.Errorf("increment daily like count: %w", err)
		}
		return tx.Where("uid = ? AND day = ?", uid, day).First(&row).Error
	})
	if err != nil {
		return 0, err
	}
	return row.Count, nil
}
