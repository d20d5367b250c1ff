package matchmaking

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/oggyb/muzz-matchmaking/internal/db"
	svcErr "github.com/oggyb/muzz-matchmaking/internal/errors"
)

const (
	minAge           = 18
	maxAge           = 100
	maxPhotos        = 3
	maxPrompts       = 3
	maxPlaces        = 5
	minPlaces        = 3
	minPhotos        = 1
	minPrompts       = 1
	initialReplyRate = 1.0
)

// ProfileInput is the onboarding payload written once the user finishes
// every step.
type ProfileInput struct {
	UID          string      `validate:"required,excludes=_,max=128"`
	Name         string      `validate:"required,max=64"`
	Age          int         `validate:"min=18,max=100"`
	Gender       string      `validate:"oneof=male female non-binary"`
	Intent       string      `validate:"oneof=casual serious marriage"`
	City         string      `validate:"required,max=64"`
	Neighborhood string      `validate:"max=64"`
	Photos       []db.Photo  `validate:"min=1,dive"`
	Prompts      []db.Prompt `validate:"min=1,dive"`
	Places       []db.Place  `validate:"min=3,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// IsComplete reports whether p has everything discovery needs.
func IsComplete(p *db.Profile) bool {
	if p == nil {
		return false
	}
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.City) == "" || p.Gender == "" {
		return false
	}
	if p.Age < minAge || p.Age > maxAge {
		return false
	}
	if _, ok := validIntents[p.Intent]; !ok {
		return false
	}
	return len(p.Places) >= minPlaces && len(p.Photos) >= minPhotos && len(p.Prompts) >= minPrompts
}

// CreateProfile validates the onboarding payload and writes the profile in a
// single save. Photos are ordered by Order; extra photos, prompts and places
// beyond the caps are dropped. A uid that already has a profile is rejected
// with ErrAlreadyExists so its ranking signals cannot be reset.
func (s *Service) CreateProfile(ctx context.Context, in ProfileInput) (*db.Profile, error) {
	p, err := buildProfile(in)
	if err != nil {
		return nil, err
	}
	p.ReplyRate = initialReplyRate
	p.GhostingCount = 0

	created, err := s.profiles.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	if !created {
		return nil, fmt.Errorf("profile %s: %w", in.UID, svcErr.ErrAlreadyExists)
	}
	return p, nil
}

// UpdateProfile replaces the editable content of an existing profile.
// ReplyRate and GhostingCount are carried over from the stored row.
//
// Likes already sent on photos or prompts that the edit removes stay in
// place; a match formed from them snapshots empty content.
func (s *Service) UpdateProfile(ctx context.Context, in ProfileInput) (*db.Profile, error) {
	p, err := buildProfile(in)
	if err != nil {
		return nil, err
	}

	existing, err := s.profiles.Get(ctx, in.UID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("profile %s: %w", in.UID, svcErr.ErrNotFound)
	}
	p.ReplyRate = existing.ReplyRate
	p.GhostingCount = existing.GhostingCount
	p.CreatedAt = existing.CreatedAt

	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

func buildProfile(in ProfileInput) (*db.Profile, error) {
	in.Photos = capped(byOrder(in.Photos), maxPhotos)
	in.Prompts = capped(in.Prompts, maxPrompts)
	in.Places = capped(in.Places, maxPlaces)

	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	p := &db.Profile{
		UID:          in.UID,
		Name:         strings.TrimSpace(in.Name),
		Age:          in.Age,
		Gender:       in.Gender,
		Intent:       in.Intent,
		City:         strings.TrimSpace(in.City),
		Neighborhood: strings.TrimSpace(in.Neighborhood),
		Photos:       in.Photos,
		Prompts:      in.Prompts,
		Places:       in.Places,
	}
	p.ProfileComplete = IsComplete(p)
	return p, nil
}

// byOrder returns a copy of photos sorted by Order, ties kept in input order.
func byOrder(photos []db.Photo) []db.Photo {
	sorted := slices.Clone(photos)
	slices.SortStableFunc(sorted, func(a, b db.Photo) int { return cmp.Compare(a.Order, b.Order) })
	return sorted
}

// GetProfile returns uid's profile, or nil when there is none.
func (s *Service) GetProfile(ctx context.Context, uid string) (*db.Profile, error) {
	if err := validateUID("uid", uid); err != nil {
		return nil, err
	}
	return s.profiles.Get(ctx, uid)
}

func capped[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return svcErr.Invalid("%v", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return svcErr.Invalid("%s", strings.Join(fields, "; "))
}
