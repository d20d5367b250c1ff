package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	seedIntents = []string{"casual", "serious", "marriage"}
	seedGenders = []string{"male", "female", "non-binary"}
	seedCities  = []string{"London", "Manchester", "Bristol"}

	seedPlaces = []Place{
		{Name: "Monmouth Coffee", Category: "cafe"},
		{Name: "Hampstead Heath", Category: "park"},
		{Name: "The Pineapple", Category: "pub"},
		{Name: "Barbican Centre", Category: "arts"},
		{Name: "Borough Market", Category: "market"},
	}

	seedQuestions = []string{
		"A perfect Sunday looks like...",
		"My most irrational fear is...",
		"I'm looking for someone who...",
	}
)

// clearAll removes every row, children first.
func clearAll(db *gorm.DB) error {
	for _, table := range []string{"matches", "likes", "blocks", "daily_like_counts", "profiles"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// SeedTestData resets the database and populates it with demo profiles,
// likes and blocks.
//
// Behavior:
//  1. Clears every matchmaking table.
//  2. Creates 24 complete profiles (user1..user24) spread over intents, plus
//     one incomplete profile (user25) that discovery must skip.
//  3. Generates one-directional likes (never a reciprocal pair, which would
//     be an unformed match) and a handful of blocks.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := clearAll(db); err != nil {
		return err
	}
	log.Println("Cleared existing data")

	const users = 24
	for i := 1; i <= users; i++ {
		p := demoProfile(i, r)
		if err := db.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	incomplete := Profile{
		UID:    fmt.Sprintf("user%d", users+1),
		Name:   "Unfinished",
		Age:    30,
		Gender: "female",
		Intent: "casual",
		City:   "London",
	}
	if err := db.Create(&incomplete).Error; err != nil {
		return fmt.Errorf("failed to seed profile: %w", err)
	}
	log.Printf("Seeded %d profiles.", users+1)

	liked := map[[2]int]bool{}
	count := 0
	for from := 1; from <= users; from++ {
		for j := 0; j < 4; j++ {
			to := r.Intn(users) + 1
			if to == from || liked[[2]int{to, from}] || liked[[2]int{from, to}] {
				continue
			}
			liked[[2]int{from, to}] = true

			like := Like{
				FromUID:    fmt.Sprintf("user%d", from),
				ToUID:      fmt.Sprintf("user%d", to),
				TargetType: "photo",
				TargetID:   fmt.Sprintf("user%d-photo-1", to),
				CreatedAt:  time.Now().UTC().Add(-time.Duration(r.Intn(72)) * time.Hour).Truncate(time.Millisecond),
			}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return fmt.Errorf("failed to seed like: %w", err)
			}
			count++
		}
	}
	log.Printf("Seeded %d likes.", count)

	for i := 1; i <= 3; i++ {
		b := Block{BlockerUID: fmt.Sprintf("user%d", i), BlockedUID: fmt.Sprintf("user%d", users-i)}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&b).Error; err != nil {
			return fmt.Errorf("failed to seed block: %w", err)
		}
	}

	return nil
}

func demoProfile(i int, r *rand.Rand) Profile {
	uid := fmt.Sprintf("user%d", i)
	prompts := make([]Prompt, 0, len(seedQuestions))
	for _, q := range seedQuestions {
		prompts = append(prompts, Prompt{ID: uuid.NewString(), Question: q, Answer: "Ask me about it"})
	}
	return Profile{
		UID:    uid,
		Name:   fmt.Sprintf("User %d", i),
		Age:    18 + r.Intn(40),
		Gender: seedGenders[i%len(seedGenders)],
		Intent: seedIntents[i%len(seedIntents)],
		City:   seedCities[i%len(seedCities)],
		Photos: []Photo{
			{ID: uid + "-photo-1", URL: fmt.Sprintf("https://cdn.example.com/%s/1.jpg", uid), Order: 0},
		},
		Prompts:         prompts,
		Places:          seedPlaces[:3+r.Intn(3)],
		ProfileComplete: true,
		ReplyRate:       float64(r.Intn(101)) / 100,
		GhostingCount:   r.Intn(5),
	}
}

// SeedMinimalTestData writes a small deterministic fixture:
//
//	user1, user2, user3  complete, intent "serious"
//	user4                complete, intent "casual"
//	user5                incomplete, intent "serious"
//	user3 -> user1       like on a prompt (pending)
//	user2 blocks user4
func SeedMinimalTestData(db *gorm.DB) error {
	if err := clearAll(db); err != nil {
		return err
	}

	profiles := []Profile{
		minimalProfile("user1", "serious", 0.9, 0),
		minimalProfile("user2", "serious", 0.8, 1),
		minimalProfile("user3", "serious", 0.8, 0),
		minimalProfile("user4", "casual", 1.0, 0),
		{UID: "user5", Name: "Five", Age: 25, Gender: "male", Intent: "serious", City: "London"},
	}
	if err := db.Create(&profiles).Error; err != nil {
		return err
	}

	like := Like{
		FromUID:    "user3",
		ToUID:      "user1",
		TargetType: "prompt",
		TargetID:   "user1-prompt-1",
		CreatedAt:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&like).Error; err != nil {
		return err
	}

	return db.Create(&Block{BlockerUID: "user2", BlockedUID: "user4"}).Error
}

func minimalProfile(uid, intent string, replyRate float64, ghosting int) Profile {
	return Profile{
		UID:             uid,
		Name:            uid,
		Age:             30,
		Gender:          "female",
		Intent:          intent,
		City:            "London",
		Photos:          []Photo{{ID: uid + "-photo-1", URL: "https://cdn.example.com/" + uid + ".jpg"}},
		Prompts:         []Prompt{{ID: uid + "-prompt-1", Question: "A perfect Sunday looks like...", Answer: "Coffee and a long walk"}},
		Places:          seedPlaces[:3],
		ProfileComplete: true,
		ReplyRate:       replyRate,
		GhostingCount:   ghosting,
	}
}
