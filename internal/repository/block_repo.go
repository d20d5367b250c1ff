package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-matchmaking/internal/db"
)

// BlockRepository provides directional block queries.
type BlockRepository struct {
	db *gorm.DB
}

// NewBlockRepository creates a new repository bound to the given DB connection.
func NewBlockRepository(database *gorm.DB) *BlockRepository {
	return &BlockRepository{db: database}
}

// Create records blocker -> blocked. Blocking twice is a no-op.
func (r *BlockRepository) Create(ctx context.Context, blockerUID, blockedUID string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&db.Block{BlockerUID: blockerUID, BlockedUID: blockedUID}).Error
}

// Exists checks whether blocker has blocked blocked.
func (r *BlockRepository) Exists(ctx context.Context, blockerUID, blockedUID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Block{}).
		Where("blocker_uid = ? AND blocked_uid = ?", blockerUID, blockedUID).
		Count(&count).Error
	return count > 0, err
}

// ListBlockedBy returns everyone uid has blocked.
func (r *BlockRepository) ListBlockedBy(ctx context.Context, uid string) ([]string, error) {
	var uids []string
	err := r.db.WithContext(ctx).
		Model(&db.Block{}).
		Where("blocker_uid = ?", uid).
		Pluck("blocked_uid", &uids).Error
	return uids, err
}

// ListBlockersOf returns everyone who has blocked uid.
func (r *BlockRepository) ListBlockersOf(ctx context.Context, uid string) ([]string, error) {
	var uids []string
	err := r.db.WithContext(ctx).
		Model(&db.Block{}).
		Where("blocked_uid = ?", uid).
		Pluck("blocker_uid", &uids).Error
	return uids, err
}
