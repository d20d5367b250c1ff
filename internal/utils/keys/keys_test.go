package keys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatchID_OrderIndependent(t *testing.T) {
	assert.Equal(t, "alice_bob", MatchID("alice", "bob"))
	assert.Equal(t, "alice_bob", MatchID("bob", "alice"))
	assert.Equal(t, MatchID("u10", "u9"), MatchID("u9", "u10"))
	assert.Equal(t, "u10_u9", MatchID("u9", "u10")) // lexicographic, not numeric
}

func TestSplitMatchID(t *testing.T) {
	a, b, ok := SplitMatchID(MatchID("zed", "amy"))
	assert.True(t, ok)
	assert.Equal(t, "amy", a)
	assert.Equal(t, "zed", b)

	for _, bad := range []string{"", "nosep", "_b", "a_", "a_b_c"} {
		_, _, ok := SplitMatchID(bad)
		assert.False(t, ok, bad)
	}
}

func TestValidateUserID(t *testing.T) {
	assert.NoError(t, ValidateUserID("user-1"))
	assert.ErrorIs(t, ValidateUserID(""), ErrEmptyUserID)
	assert.ErrorIs(t, ValidateUserID("   "), ErrEmptyUserID)
	assert.ErrorIs(t, ValidateUserID("a_b"), ErrInvalidUserID)
}

func TestDayKey_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2024-03-10 08:00 at +10 is still 2024-03-09 in UTC.
	local := time.Date(2024, 3, 10, 8, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-09", DayKey(local))
	assert.Equal(t, "alice_2024-03-09", DailyCountKey("alice", DayKey(local)))
}

func TestEndOfDay(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), EndOfDay(now))
}
