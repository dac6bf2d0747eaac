package handlers

import (
	"blogicum/internal/middleware"
	"blogicum/internal/models"
	"blogicum/internal/store"

	"github.com/gin-gonic/gin"
)

// Repository is the store surface the handlers consume. *store.Store
// implements it; tests substitute a mock.
type Repository interface {
	FeedHome(page int) (store.Page, error)
	FeedCategory(slug string, page int) (*models.Category, store.Page, error)
	FeedProfile(username string, viewer *models.User, page int) (*models.User, store.Page, error)

	PostForView(id uint, viewer *models.User) (*models.Post, []models.Comment, error)
	GetPost(id uint) (*models.Post, error)
	CreatePost(post *models.Post) error
	UpdatePost(post *models.Post) error
	DeletePost(post *models.Post) error

	PublishedComments(postID uint) ([]models.Comment, error)
	GetComment(postID, commentID uint) (*models.Comment, error)
	CreateComment(comment *models.Comment) error
	UpdateComment(comment *models.Comment) error
	DeleteComment(comment *models.Comment) error

	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(user *models.User) error

	PublishedCategories() ([]models.Category, error)
	PublishedLocations() ([]models.Location, error)
}

var _ Repository = (*store.Store)(nil)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if user := middleware.CurrentUser(c); user != nil {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError renders the shared error page.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}
