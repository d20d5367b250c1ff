package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/muzz-matchmaking/internal/db"
)

// ProfileRepository reads and writes user profiles.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// Get returns uid's profile, or nil when uid has not onboarded yet.
func (r *ProfileRepository) Get(ctx context.Context, uid string) (*db.Profile, error) {
	var p db.Profile
	err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&p).Error
	ok, err := found(err)
	if !ok {
		return nil, err
	}
	return &p, nil
}

// Create inserts p unless uid already has a profile. It reports false,
// leaving the stored row untouched, when one exists.
func (r *ProfileRepository) Create(ctx context.Context, p *db.Profile) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(p)
	return res.RowsAffected > 0, res.Error
}

// Save writes the full profile, inserting or replacing by uid.
func (r *ProfileRepository) Save(ctx context.Context, p *db.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// ListCandidates returns complete profiles with the given intent, best
// engaged first, skipping any uid in exclude.
//
// Behavior:
//   - intent = X AND profile_complete = true.
//   - Ordered by reply_rate DESC, ghosting_count ASC, uid ASC.
//   - At most limit rows.
func (r *ProfileRepository) ListCandidates(
	ctx context.Context,
	intent string,
	exclude []string,
	limit int,
) ([]db.Profile, error) {
	var profiles []db.Profile

	query := r.db.WithContext(ctx).
		Where("intent = ? AND profile_complete = ?", intent, true)
	if len(exclude) > 0 {
		query = query.Where("uid NOT IN ?", exclude)
	}

	err := query.
		Order("reply_rate DESC, ghosting_count ASC, uid ASC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}
