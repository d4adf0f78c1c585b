// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"inkwell/internal/models"
	"inkwell/internal/validation"
)

// Options tunes the seeder's output.
type Options struct {
	// SkipBcrypt stores the plaintext password, for fast local reseeds.
	SkipBcrypt bool
	// MaxDays spreads created_at over the last N days. Defaults to 90.
	MaxDays int
}

// Seeder populates the database with fake blog data.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll wipes users, posts, and comments. Order matters because of the
// foreign keys.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"comments", "posts", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("✓ Cleared existing data")
	return nil
}

// Seed creates the requested number of users, posts, and comments.
func (s *Seeder) Seed(numUsers, numPosts int) error {
	log.Println("🌱 Starting database seeding...")

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ Created %d users", len(users))

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.rng.Intn(len(users))]
		post, err := s.CreatePost(author)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("✓ Created %d posts", len(posts))

	commentCount := 0
	for _, post := range posts {
		for i := 0; i < s.rng.Intn(6); i++ {
			commenter := users[s.rng.Intn(len(users))]
			if _, err := s.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			commentCount++
		}
	}
	log.Printf("✓ Created %d comments", commentCount)

	return nil
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
		Img:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if s.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashed)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post for the given author.
func (s *Seeder) CreatePost(author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	title := strings.TrimSuffix(gofakeit.Sentence(6), ".")
	post := &models.Post{
		UserID:    author.ID,
		Title:     title,
		Slug:      validation.Slugify(title),
		Content:   gofakeit.Paragraph(2, 4, 8, "\n\n"),
		Desc:      gofakeit.Sentence(12),
		Tags:      []string{gofakeit.Word(), gofakeit.Word(), gofakeit.Word()},
		Category:  models.Categories[s.rng.Intn(len(models.Categories))],
		Img:       fmt.Sprintf("https://picsum.photos/seed/%s/1200/630", gofakeit.UUID()),
		ViewCount: int64(s.rng.Intn(500)),
	}
	post.CreatedAt = s.spreadTime()

	for _, override := range overrides {
		override(post)
	}

	if err := s.db.Create(post).Error; err != nil {
		// Slug collisions are possible with random sentences; retry with a suffix.
		post.Slug = fmt.Sprintf("%s-%d", post.Slug, s.rng.Intn(10000))
		if err := s.db.Create(post).Error; err != nil {
			return nil, err
		}
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment.
func (s *Seeder) CreateComment(author *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(10),
		UserID:  author.ID,
		PostID:  post.ID,
	}
	comment.CreatedAt = s.spreadTime()

	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// spreadTime returns a timestamp in the recent past so listings look lived-in.
func (s *Seeder) spreadTime() time.Time {
	maxDays := s.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := s.rng.Intn(maxDays)
	hoursBack := s.rng.Intn(24)
	minsBack := s.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}
