// Package seed provides helpers to create test and demo data for the post
// index. These helpers are intended for development and testing only; the
// production tables are owned by the syncer.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/f-r00t/hugin-api/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Boards mirror the boards commonly seen on the live network.
var boards = []string{"Home", "Hugin", "Kryptokrona", "Mining", "Privacy", "Fika"}

// Options control the shape of a seeded dataset.
type Options struct {
	Posts          int
	EncryptedPosts int
	// ReplyRatio is the fraction of posts that reply to an earlier post.
	ReplyRatio float64
	Clean      bool
}

// Seeder builds and persists demo rows.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Seeder{db: db, rng: rand.New(rand.NewSource(seed))}
}

// ClearAll removes all seeded rows.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"hashtag", "post_encrypted_group", "post"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Run populates the database per the options. Posts come first so replies can
// point at real hashes; hashtags are extracted from the generated messages.
func (s *Seeder) Run(opts Options) error {
	if opts.Clean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	posts, err := s.seedPosts(opts.Posts, opts.ReplyRatio)
	if err != nil {
		return err
	}
	if err := s.seedEncryptedGroupPosts(opts.EncryptedPosts); err != nil {
		return err
	}
	return s.seedHashtags(posts)
}

// BuildPost constructs an unsaved post. Parent may be nil for a top-level post.
func (s *Seeder) BuildPost(parent *models.Post) *models.Post {
	message := gofakeit.Sentence(s.rng.Intn(12) + 3)
	if s.rng.Intn(4) == 0 {
		message += " #" + strings.ToLower(gofakeit.BuzzWord())
	}

	post := &models.Post{
		Message:   message,
		Key:       hexString(s.rng, 64),
		Signature: hexString(s.rng, 128),
		Board:     boards[s.rng.Intn(len(boards))],
		Time:      s.spreadTime().Unix(),
		Nickname:  gofakeit.Username(),
		TxHash:    hexString(s.rng, 64),
	}
	if parent != nil {
		post.Reply = parent.TxHash
		post.Board = parent.Board
	}
	if s.rng.Intn(3) == 0 {
		avatar := gofakeit.LetterN(512)
		post.Avatar = &avatar
	}
	post.CreatedAt = time.Unix(post.Time, 0)
	post.UpdatedAt = post.CreatedAt
	return post
}

func (s *Seeder) seedPosts(count int, replyRatio float64) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		var parent *models.Post
		if len(posts) > 0 && s.rng.Float64() < replyRatio {
			parent = posts[s.rng.Intn(len(posts))]
		}
		posts = append(posts, s.BuildPost(parent))
	}
	if len(posts) == 0 {
		return posts, nil
	}
	if err := s.db.CreateInBatches(posts, 100).Error; err != nil {
		return nil, fmt.Errorf("failed to seed posts: %w", err)
	}
	return posts, nil
}

func (s *Seeder) seedEncryptedGroupPosts(count int) error {
	rows := make([]*models.PostEncryptedGroup, 0, count)
	for i := 0; i < count; i++ {
		t := s.spreadTime()
		rows = append(rows, &models.PostEncryptedGroup{
			TxBox:     gofakeit.LetterN(256),
			TxHash:    hexString(s.rng, 64),
			Time:      t.Unix(),
			CreatedAt: t,
			UpdatedAt: t,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.CreateInBatches(rows, 100).Error; err != nil {
		return fmt.Errorf("failed to seed encrypted group posts: %w", err)
	}
	return nil
}

// seedHashtags extracts #tags from the seeded messages, mimicking what the
// syncer does on ingestion.
func (s *Seeder) seedHashtags(posts []*models.Post) error {
	seen := map[string]bool{}
	var tags []*models.Hashtag
	for _, post := range posts {
		for _, word := range strings.Fields(post.Message) {
			if !strings.HasPrefix(word, "#") || len(word) < 2 {
				continue
			}
			name := strings.ToLower(strings.Trim(word[1:], ".,!?"))
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			tags = append(tags, &models.Hashtag{Name: name})
		}
	}
	if len(tags) == 0 {
		return nil
	}
	if err := s.db.CreateInBatches(tags, 100).Error; err != nil {
		return fmt.Errorf("failed to seed hashtags: %w", err)
	}
	return nil
}

// spreadTime picks a timestamp within the last 90 days.
func (s *Seeder) spreadTime() time.Time {
	back := time.Duration(s.rng.Intn(90*24)) * time.Hour
	return time.Now().Add(-back).Truncate(time.Second)
}

const hexDigits = "0123456789abcdef"

func hexString(rng *rand.Rand, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(hexDigits[rng.Intn(len(hexDigits))])
	}
	return b.String()
}
