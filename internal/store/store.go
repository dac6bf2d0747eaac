// Package store is the repository over the relational entity store. All
// feed composition and mutation queries live here so the handlers stay free
// of SQL and the rules can be exercised against the interface in tests.
package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"blogicum/internal/models"
)

var (
	// ErrNotFound means no entity exists for the given identifier.
	ErrNotFound = errors.New("store: not found")
	// ErrPermissionDenied means the viewer may not see the requested post.
	ErrPermissionDenied = errors.New("store: permission denied")
)

type Store struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// livePosts scopes a posts query down to what anonymous readers may see:
// published, publication date reached, category itself published. The inner
// join drops posts whose category was deleted.
func (s *Store) livePosts(now time.Time) *gorm.DB {
	return s.db.Model(&models.Post{}).
		Joins("JOIN categories ON categories.id = posts.category_id AND categories.published = ?", true).
		Where("posts.published = ? AND posts.pub_date <= ?", true, now)
}
