package handlers

import (
	"github.com/stretchr/testify/mock"

	"blogicum/internal/models"
	"blogicum/internal/store"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FeedHome(page int) (store.Page, error) {
	args := m.Called(page)
	return args.Get(0).(store.Page), args.Error(1)
}

func (m *MockRepository) FeedCategory(slug string, page int) (*models.Category, store.Page, error) {
	args := m.Called(slug, page)
	if args.Get(0) == nil {
		return nil, store.Page{}, args.Error(2)
	}
	return args.Get(0).(*models.Category), args.Get(1).(store.Page), args.Error(2)
}

func (m *MockRepository) FeedProfile(username string, viewer *models.User, page int) (*models.User, store.Page, error) {
	args := m.Called(username, viewer, page)
	if args.Get(0) == nil {
		return nil, store.Page{}, args.Error(2)
	}
	return args.Get(0).(*models.User), args.Get(1).(store.Page), args.Error(2)
}

func (m *MockRepository) PostForView(id uint, viewer *models.User) (*models.Post, []models.Comment, error) {
	args := m.Called(id, viewer)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Post), args.Get(1).([]models.Comment), args.Error(2)
}

func (m *MockRepository) GetPost(id uint) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockRepository) CreatePost(post *models.Post) error {
	return m.Called(post).Error(0)
}

func (m *MockRepository) UpdatePost(post *models.Post) error {
	return m.Called(post).Error(0)
}

func (m *MockRepository) DeletePost(post *models.Post) error {
	return m.Called(post).Error(0)
}

func (m *MockRepository) PublishedComments(postID uint) ([]models.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockRepository) GetComment(postID, commentID uint) (*models.Comment, error) {
	args := m.Called(postID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockRepository) CreateComment(comment *models.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *MockRepository) UpdateComment(comment *models.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *MockRepository) DeleteComment(comment *models.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *MockRepository) GetUser(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) CreateUser(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockRepository) UpdateUser(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockRepository) PublishedCategories() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockRepository) PublishedLocations() ([]models.Location, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Location), args.Error(1)
}

var _ Repository = (*MockRepository)(nil)
