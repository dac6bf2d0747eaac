package store

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogicum/internal/models"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// newTestStore opens an in-memory database with the real schema so the
// feed queries run against actual SQL, and pins the clock.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Location{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	s := New(db)
	s.now = func() time.Time { return testNow }
	return s
}

func seedUser(t *testing.T, s *Store, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "x"}
	if err := s.db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedCategory(t *testing.T, s *Store, slug string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{Title: slug, Slug: slug, Published: published}
	if err := s.db.Create(category).Error; err != nil {
		t.Fatalf("seed category %s: %v", slug, err)
	}
	return category
}

func seedPost(t *testing.T, s *Store, author *models.User, category *models.Category, title string, pubDate time.Time, published bool) *models.Post {
	t.Helper()
	post := &models.Post{
		AuthorID:  author.ID,
		Title:     title,
		Text:      "body",
		PubDate:   pubDate,
		Published: published,
	}
	if category != nil {
		post.CategoryID = &category.ID
	}
	if err := s.db.Create(post).Error; err != nil {
		t.Fatalf("seed post %s: %v", title, err)
	}
	return post
}

func seedComment(t *testing.T, s *Store, post *models.Post, author *models.User, text string, published bool) *models.Comment {
	t.Helper()
	comment := &models.Comment{PostID: post.ID, AuthorID: author.ID, Text: text, Published: published}
	if err := s.db.Create(comment).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	return comment
}

func postTitles(page Page) []string {
	titles := make([]string, len(page.Posts))
	for i, p := range page.Posts {
		titles[i] = p.Title
	}
	return titles
}
