package matchmaking

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ExclusionResolver computes who a user must never see again in discovery.
type ExclusionResolver struct {
	likes   LikeStore
	blocks  BlockStore
	matches MatchStore
}

func NewExclusionResolver(likes LikeStore, blocks BlockStore, matches MatchStore) *ExclusionResolver {
	return &ExclusionResolver{likes: likes, blocks: blocks, matches: matches}
}

// ExcludedUserIDs returns uid itself plus everyone uid has liked, blocked,
// been blocked by, or matched with.
//
// The four reads are independent and run concurrently; the first failure
// fails the whole call. The result is never cached: a block or match can land
// between two discovery loads.
func (r *ExclusionResolver) ExcludedUserIDs(ctx context.Context, uid string) (map[string]struct{}, error) {
	var liked, blockedByMe, blockedMe, matched []string

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		liked, err = r.likes.ListRecipients(gCtx, uid)
		return wrap("list liked users", err)
	})
	g.Go(func() (err error) {
		blockedByMe, err = r.blocks.ListBlockedBy(gCtx, uid)
		return wrap("list blocked users", err)
	})
	g.Go(func() (err error) {
		blockedMe, err = r.blocks.ListBlockersOf(gCtx, uid)
		return wrap("list blockers", err)
	})
	g.Go(func() (err error) {
		matched, err = r.matches.ListPartners(gCtx, uid)
		return wrap("list matched users", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, 1+len(liked)+len(blockedByMe)+len(blockedMe)+len(matched))
	excluded[uid] = struct{}{}
	for _, group := range [][]string{liked, blockedByMe, blockedMe, matched} {
		for _, id := range group {
			excluded[id] = struct{}{}
		}
	}
	return excluded, nil
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
