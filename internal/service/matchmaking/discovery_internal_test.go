package matchmaking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/muzz-matchmaking/internal/db"
)

func TestSortCandidates(t *testing.T) {
	profiles := []db.Profile{
		{UID: "d", ReplyRate: 0.5, GhostingCount: 0},
		{UID: "c", ReplyRate: 0.9, GhostingCount: 2},
		{UID: "b", ReplyRate: 0.9, GhostingCount: 1},
		{UID: "a", ReplyRate: 0.9, GhostingCount: 1},
	}
	sortCandidates(profiles)

	uids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		uids = append(uids, p.UID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, uids)
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget("prompt", "q1")
	require.NoError(t, err)
	assert.Equal(t, PromptTarget{PromptID: "q1"}, target)

	target, err = ParseTarget("photo", "p1")
	require.NoError(t, err)
	assert.Equal(t, TargetPhoto, target.Kind())
	assert.Equal(t, "p1", target.ID())

	_, err = ParseTarget("video", "v1")
	assert.Error(t, err)
	_, err = ParseTarget("photo", "")
	assert.Error(t, err)
}

func TestNormalizeComment(t *testing.T) {
	assert.Nil(t, normalizeComment(nil))
	blank := " \t "
	assert.Nil(t, normalizeComment(&blank))
	padded := "  hi  "
	got := normalizeComment(&padded)
	require.NotNil(t, got)
	assert.Equal(t, "hi", *got)
}
