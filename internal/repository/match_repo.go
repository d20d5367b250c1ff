package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-matchmaking/internal/db"
)

// MatchRepository provides data access methods for the Match model.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new repository bound to the given DB connection.
func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// CreateConsumingLikes persists match and retires the two likes that formed it,
// in a single transaction.
//
// Behavior:
//   - Insert is ON CONFLICT DO NOTHING on match_id, so a second former of the
//     same pair leaves the first row untouched.
//   - The stored row is read back and returned; created reports whether this
//     call inserted it.
//   - Both likes (UserA -> UserB, UserB -> UserA) are deleted; already-deleted
//     likes are a no-op.
//   - Any failure rolls back, leaving both likes in place for a retry.
func (r *MatchRepository) CreateConsumingLikes(ctx context.Context, match *db.Match) (*db.Match, bool, error) {
	var (
		stored  db.Match
		created bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(match)
		if res.Error != nil {
			return fmt.Errorf("insert match: %w", res.Error)
		}
		created = res.RowsAffected > 0

		if err := tx.Where("match_id = ?", match.MatchID).First(&stored).Error; err != nil {
			return fmt.Errorf("read match: %w", err)
		}

		if err := tx.
			Where("(from_uid = ? AND to_uid = ?) OR (from_uid = ? AND to_uid = ?)",
				match.UserA, match.UserB, match.UserB, match.UserA).
			Delete(&db.Like{}).Error; err != nil {
			return fmt.Errorf("retire likes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &stored, created, nil
}

// Get returns the match with the given id, or nil when there is none.
func (r *MatchRepository) Get(ctx context.Context, matchID string) (*db.Match, error) {
	var m db.Match
	err := r.db.WithContext(ctx).Where("match_id = ?", matchID).First(&m).Error
	ok, err := found(err)
	if !ok {
		return nil, err
	}
	return &m, nil
}

// Exists checks whether a match with the given id exists.
func (r *MatchRepository) Exists(ctx context.Context, matchID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("match_id = ?", matchID).
		Count(&count).Error
	return count > 0, err
}

// ListForUser returns every match uid participates in, in either slot,
// newest first.
func (r *MatchRepository) ListForUser(ctx context.Context, uid string) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("user_a = ? OR user_b = ?", uid, uid).
		Order("matched_at DESC, match_id DESC").
		Find(&matches).Error
	return matches, err
}

// ListPartners returns the other participant of every match uid is in.
func (r *MatchRepository) ListPartners(ctx context.Context, uid string) ([]string, error) {
	var asA, asB []string
	if err := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("user_a = ?", uid).
		Pluck("user_b", &asA).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("user_b = ?", uid).
		Pluck("user_a", &asB).Error; err != nil {
		return nil, err
	}
	return append(asA, asB...), nil
}
