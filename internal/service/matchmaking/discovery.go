package matchmaking

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/oggyb/muzz-matchmaking/internal/db"
	svcErr "github.com/oggyb/muzz-matchmaking/internal/errors"
)

// DefaultDiscoveryPageSize caps candidates returned per discovery fetch.
const DefaultDiscoveryPageSize = 20

// Intents a profile may declare. Discovery only pairs equal intents.
var validIntents = map[string]struct{}{
	"casual":   {},
	"serious":  {},
	"marriage": {},
}

// DiscoverySelector picks the next candidate profiles for a user.
type DiscoverySelector struct {
	profiles  ProfileStore
	exclusion *ExclusionResolver
	pageSize  int
}

func NewDiscoverySelector(profiles ProfileStore, exclusion *ExclusionResolver, pageSize int) *DiscoverySelector {
	if pageSize <= 0 {
		pageSize = DefaultDiscoveryPageSize
	}
	return &DiscoverySelector{profiles: profiles, exclusion: exclusion, pageSize: pageSize}
}

// NextProfiles returns up to one page of complete profiles sharing intent,
// best engaged first, with every excluded user removed. An empty result means
// there is nobody left to show.
func (d *DiscoverySelector) NextProfiles(ctx context.Context, uid, intent string) ([]db.Profile, error) {
	if _, ok := validIntents[intent]; !ok {
		return nil, svcErr.Invalid("unknown intent %q", intent)
	}

	excluded, err := d.exclusion.ExcludedUserIDs(ctx, uid)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(excluded))
	for id := range excluded {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	candidates, err := d.profiles.ListCandidates(ctx, intent, ids, d.pageSize)
	if err != nil {
		return nil, fmt.Errorf("list discovery candidates: %w", err)
	}

	out := make([]db.Profile, 0, len(candidates))
	for _, p := range candidates {
		if _, skip := excluded[p.UID]; skip {
			continue
		}
		if p.Intent != intent || !p.ProfileComplete {
			continue
		}
		out = append(out, p)
	}
	sortCandidates(out)

	if len(out) > d.pageSize {
		out = out[:d.pageSize]
	}
	return out, nil
}

// sortCandidates orders by reply rate descending, then ghosting count
// ascending, then uid for a stable page.
func sortCandidates(profiles []db.Profile) {
	slices.SortStableFunc(profiles, func(a, b db.Profile) int {
		if c := cmp.Compare(b.ReplyRate, a.ReplyRate); c != 0 {
			return c
		}
		if c := cmp.Compare(a.GhostingCount, b.GhostingCount); c != 0 {
			return c
		}
		return cmp.Compare(a.UID, b.UID)
	})
}
