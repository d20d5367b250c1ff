package db

import (
	"time"
)

// Photo is one of up to three ordered profile pictures.
type Photo struct {
	ID    string `json:"id" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
	Order int    `json:"order" validate:"min=0"`
}

// Prompt is a question/answer pair shown on a profile.
type Prompt struct {
	ID       string `json:"id" validate:"required"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// Place is a routine spot the user frequents.
type Place struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category,omitempty"`
}

// Profile is the discoverable user profile.
//
// Nested lists (photos, prompts, places) are stored as JSON columns since they
// are only ever read and written together with the profile.
//
// Indexes:
//   - idx_discovery(intent, profile_complete, reply_rate, ghosting_count)
//     Serves the discovery query: equality on intent + completeness, ordered by
//     ranking signals.
type Profile struct {
	UID             string    `gorm:"primaryKey;size:128"`
	Name            string    `gorm:"size:64;not null"`
	Age             int       `gorm:"not null"`
	Gender          string    `gorm:"size:16;not null"`
	Intent          string    `gorm:"size:16;not null;index:idx_discovery,priority:1"`
	City            string    `gorm:"size:64;not null"`
	Neighborhood    string    `gorm:"size:64"`
	Photos          []Photo   `gorm:"serializer:json;type:text"`
	Prompts         []Prompt  `gorm:"serializer:json;type:text"`
	Places          []Place   `gorm:"serializer:json;type:text"`
	ProfileComplete bool      `gorm:"not null;index:idx_discovery,priority:2"`
	ReplyRate       float64   `gorm:"not null;index:idx_discovery,priority:3,sort:desc"`
	GhostingCount   int       `gorm:"not null;index:idx_discovery,priority:4"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// Like is a directed endorsement of one element of the recipient's profile.
//
// Composite PK: (FromUID, ToUID)
//   - At most one live like per ordered pair; a repeat like overwrites.
//
// Indexes:
//   - idx_to_created(to_uid, created_at DESC)
//     Serves the "who liked me" listing.
type Like struct {
	FromUID    string    `gorm:"primaryKey;size:128"`
	ToUID      string    `gorm:"primaryKey;size:128;index:idx_to_created,priority:1"`
	TargetType string    `gorm:"size:16;not null"`
	TargetID   string    `gorm:"size:128;not null"`
	Comment    *string   `gorm:"size:512"`
	CreatedAt  time.Time `gorm:"index:idx_to_created,priority:2,sort:desc"`
}

// DailyLikeCount counts likes sent by UID on one UTC calendar day.
//
// Composite PK: (UID, Day)
//   - Day is "YYYY-MM-DD"; a new day starts a new row, rows are never reset.
type DailyLikeCount struct {
	UID       string    `gorm:"primaryKey;size:128"`
	Day       string    `gorm:"primaryKey;size:10"`
	Count     int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Match is the durable record of a reciprocal like.
//
// MatchID is both user ids sorted and joined by "_", so either participant
// derives the same key. UserA/UserB hold the pair in the order the match was
// formed; lookups by participant must check both columns.
//
// Target* fields snapshot the like that completed the pair, since the liked
// prompt or photo may change later.
type Match struct {
	MatchID       string    `gorm:"primaryKey;size:257"`
	UserA         string    `gorm:"size:128;not null;index"`
	UserB         string    `gorm:"size:128;not null;index"`
	MatchedAt     time.Time `gorm:"not null"`
	TargetType    string    `gorm:"size:16;not null"`
	TargetID      string    `gorm:"size:128;not null"`
	TargetContent string    `gorm:"type:text"`
}

// Block is a directed block edge. Either direction hides the pair from each
// other's discovery.
type Block struct {
	BlockerUID string    `gorm:"primaryKey;size:128"`
	BlockedUID string    `gorm:"primaryKey;size:128;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// Models lists every table for AutoMigrate.
func Models() []any {
	return []any{&Profile{}, &Like{}, &DailyLikeCount{}, &Match{}, &Block{}}
}
