package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"blogicum/internal/models"
	"blogicum/internal/store"
)

func TestProfile_NotFound(t *testing.T) {
	repo := new(MockRepository)
	h := NewUserHandler(repo)

	repo.On("FeedProfile", "ghost", (*models.User)(nil), 1).Return(nil, store.Page{}, store.ErrNotFound)

	r := setupTestRouter()
	r.GET("/profile/:username", h.Profile)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile/ghost", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfile_PassesViewerToFeed(t *testing.T) {
	owner := &models.User{ID: 1, Username: "alice"}

	repo := new(MockRepository)
	h := NewUserHandler(repo)

	repo.On("FeedProfile", "alice", owner, 1).Return(owner, store.Page{Number: 1, TotalPages: 1}, nil)

	r := setupTestRouter()
	r.GET("/profile/:username", asUser(owner, h.Profile))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile/alice", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestEditProfile_InvalidEmailRerendersForm(t *testing.T) {
	owner := &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}

	repo := new(MockRepository)
	h := NewUserHandler(repo)

	r := setupTestRouter()
	r.POST("/profile/edit", asUser(owner, h.Edit))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/profile/edit", "username=alice&email=not-an-email"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "UpdateUser")
}

func TestEditProfile_SavesAndRedirects(t *testing.T) {
	owner := &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}

	repo := new(MockRepository)
	h := NewUserHandler(repo)

	repo.On("UpdateUser", owner).Return(nil)

	r := setupTestRouter()
	r.POST("/profile/edit", asUser(owner, h.Edit))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/profile/edit", "username=alicia&email=alice@example.com&first_name=Alice"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/alicia", w.Header().Get("Location"))
	assert.Equal(t, "Alice", owner.FirstName)
	repo.AssertExpectations(t)
}
