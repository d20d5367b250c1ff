package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-matchmaking/internal/db"
	"github.com/oggyb/muzz-matchmaking/internal/utils/pagination"
)

// LikeRepository provides data access methods for the Like model.
// It encapsulates all queries related to directed likes between users.
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new repository bound to the given DB connection.
func NewLikeRepository(database *gorm.DB) *LikeRepository {
	return &LikeRepository{db: database}
}

// Upsert stores the like from -> to.
//
// Behavior:
//   - If (from_uid, to_uid) exists → target, comment and created_at are overwritten.
//   - If it doesn’t exist → a new row is inserted.
//   - Composite PK ensures at most one like per ordered pair.
//
// Example:
//
//	repo.Upsert(ctx, &db.Like{FromUID: "a", ToUID: "b", TargetType: "photo", TargetID: "p1"})
func (r *LikeRepository) Upsert(ctx context.Context, like *db.Like) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "from_uid"}, {Name: "to_uid"}},
			DoUpdates: clause.AssignmentColumns([]string{"target_type", "target_id", "comment", "created_at"}),
		}).
		Create(like).Error
}

// Get returns the like from -> to, or nil when there is none.
func (r *LikeRepository) Get(ctx context.Context, fromUID, toUID string) (*db.Like, error) {
	var like db.Like
	err := r.db.WithContext(ctx).
		Where("from_uid = ? AND to_uid = ?", fromUID, toUID).
		First(&like).Error
	ok, err := found(err)
	if !ok {
		return nil, err
	}
	return &like, nil
}

// Exists checks whether from has a live like on to.
func (r *LikeRepository) Exists(ctx context.Context, fromUID, toUID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("from_uid = ? AND to_uid = ?", fromUID, toUID).
		Count(&count).Error
	return count > 0, err
}

// ListRecipients returns every user fromUID currently has a like on.
func (r *LikeRepository) ListRecipients(ctx context.Context, fromUID string) ([]string, error) {
	var uids []string
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("from_uid = ?", fromUID).
		Pluck("to_uid", &uids).Error
	return uids, err
}

// ListIncoming returns likes addressed to the recipient.
//
// Behavior:
//   - Only likes where to_uid = X are returned.
//   - Excludes senders the recipient has blocked.
//   - Ordered by created_at DESC, from_uid DESC.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.ListIncoming(ctx, "alice", nil, 20) // first 20 people who liked alice
func (r *LikeRepository) ListIncoming(
	ctx context.Context,
	toUID string,
	paginationToken *string,
	limit int,
) ([]db.Like, *string, error) {
	var likes []db.Like

	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Table("likes l").
		Where("l.to_uid = ?", toUID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM blocks b
				WHERE b.blocker_uid = ?
				  AND b.blocked_uid = l.from_uid
			)`, toUID).
		Order("l.created_at DESC, l.from_uid DESC").
		Limit(limit + 1)

	if !cursor.IsZero() {
		ts := time.UnixMilli(cursor.CreatedUnix).UTC()
		query = query.Where(
			"(l.created_at < ? OR (l.created_at = ? AND l.from_uid < ?))",
			ts, ts, cursor.FromUID,
		)
	}

	if err := query.Find(&likes).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(likes) > limit {
		last := likes[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			FromUID:     last.FromUID,
			CreatedUnix: last.CreatedAt.UnixMilli(),
		})
		nextToken = &token
		likes = likes[:limit]
	}

	return likes, nextToken, nil
}
