// Package keys builds every identifier derived from user ids. Likes, matches,
// exclusion and lookups must all agree on these derivations, so nothing else
// in the module concatenates ids by hand.
package keys

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// Separator joins user ids inside composite identifiers. User ids must never
// contain it, otherwise two different pairs could produce the same key.
const Separator = "_"

// dayLayout is the calendar-day partition format for daily counters.
const dayLayout = "2006-01-02"

var (
	ErrEmptyUserID   = errors.New("user id is empty")
	ErrInvalidUserID = errors.New("user id must not contain " + Separator)
)

// ValidateUserID rejects ids that would make derived keys ambiguous.
func ValidateUserID(uid string) error {
	if strings.TrimSpace(uid) == "" {
		return ErrEmptyUserID
	}
	if strings.Contains(uid, Separator) {
		return ErrInvalidUserID
	}
	return nil
}

// MatchID is the canonical, order-independent identifier of the pair:
// both ids sorted ascending and joined by Separator.
//
//	MatchID("bob", "alice") == MatchID("alice", "bob") == "alice_bob"
func MatchID(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, Separator)
}

// SplitMatchID returns the two participants encoded in a match id.
func SplitMatchID(matchID string) (string, string, bool) {
	a, b, ok := strings.Cut(matchID, Separator)
	if !ok || a == "" || b == "" || strings.Contains(b, Separator) {
		return "", "", false
	}
	return a, b, true
}

// DayKey is the UTC calendar date of t, e.g. "2024-03-09".
func DayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// EndOfDay is the first instant of the UTC day after t.
func EndOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day()+1, 0, 0, 0, 0, time.UTC)
}

// DailyCountKey identifies uid's like counter for day.
func DailyCountKey(uid, day string) string {
	return uid + Separator + day
}
