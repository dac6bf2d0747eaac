package store

import (
	"blogicum/internal/models"
)

// PublishedCategories lists the categories offered in the post form.
func (s *Store) PublishedCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Where("published = ?", true).Order("title ASC").Find(&categories).Error
	return categories, err
}

// PublishedLocations lists the locations offered in the post form.
func (s *Store) PublishedLocations() ([]models.Location, error) {
	var locations []models.Location
	err := s.db.Where("published = ?", true).Order("name ASC").Find(&locations).Error
	return locations, err
}
