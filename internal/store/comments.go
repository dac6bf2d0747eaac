package store

import (
	"errors"

	"gorm.io/gorm"

	"blogicum/internal/models"
)

// PublishedComments lists a post's published comments, oldest first.
func (s *Store) PublishedComments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Preload("Author").
		Where("post_id = ? AND published = ?", postID, true).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// GetComment loads one comment of the given post. A comment id that exists
// under a different post is still ErrNotFound.
func (s *Store) GetComment(postID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Preload("Author").
		Where("id = ? AND post_id = ?", commentID, postID).
		First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *Store) CreateComment(comment *models.Comment) error {
	return s.db.Create(comment).Error
}

func (s *Store) UpdateComment(comment *models.Comment) error {
	return s.db.Save(comment).Error
}

func (s *Store) DeleteComment(comment *models.Comment) error {
	return s.db.Unscoped().Delete(comment).Error
}
