package store

import (
	"errors"

	"gorm.io/gorm"

	"blogicum/internal/access"
	"blogicum/internal/models"
)

// PostForView loads a post for its detail page. ErrNotFound if the id does
// not exist, ErrPermissionDenied if the viewer may not see it. On success
// the post carries its published comments, oldest first.
func (s *Store) PostForView(id uint, viewer *models.User) (*models.Post, []models.Comment, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, nil, err
	}

	if !access.CanView(post, viewer, s.now()) {
		return nil, nil, ErrPermissionDenied
	}

	comments, err := s.PublishedComments(post.ID)
	if err != nil {
		return nil, nil, err
	}
	post.CommentCount = len(comments)
	return post, comments, nil
}

// GetPost loads a post with its relations, without any visibility check.
// Mutation handlers use it before their own ownership checks.
func (s *Store) GetPost(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Author").Preload("Category").Preload("Location").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Store) CreatePost(post *models.Post) error {
	return s.db.Create(post).Error
}

func (s *Store) UpdatePost(post *models.Post) error {
	return s.db.Save(post).Error
}

// DeletePost removes the post; its comments go with it via the cascade.
func (s *Store) DeletePost(post *models.Post) error {
	return s.db.Unscoped().Delete(post).Error
}
