package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogicum/internal/forms"
	"blogicum/internal/middleware"
	"blogicum/internal/models"
	"blogicum/internal/store"
)

type UserHandler struct {
	repo Repository
}

func NewUserHandler(repo Repository) *UserHandler {
	return &UserHandler{repo: repo}
}

// Profile - GET /profile/:username
func (h *UserHandler) Profile(c *gin.Context) {
	username := c.Param("username")
	viewer := middleware.CurrentUser(c)

	profile, feed, err := h.repo.FeedProfile(username, viewer, pageParam(c))
	if errors.Is(err, store.ErrNotFound) {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the profile")
		return
	}

	isOwner := viewer != nil && viewer.ID == profile.ID

	Render(c, http.StatusOK, "blog/profile.html", gin.H{
		"Title":   profile.Username,
		"Profile": profile,
		"Page":    feed,
		"IsOwner": isOwner,
	})
}

// ShowEdit - GET /profile/edit
func (h *UserHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	Render(c, http.StatusOK, "blog/user.html", gin.H{
		"Title": "Edit profile",
		"Form": forms.ProfileForm{
			Username:  user.Username,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	})
}

// Edit - POST /profile/edit
func (h *UserHandler) Edit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var form forms.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		RenderError(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if errs := forms.Validate(&form); len(errs) > 0 {
		Render(c, http.StatusBadRequest, "blog/user.html", gin.H{
			"Title":  "Edit profile",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	user.Username = form.Username
	user.Email = form.Email
	user.FirstName = form.FirstName
	user.LastName = form.LastName

	if err := h.repo.UpdateUser(user); err != nil {
		// Unique index on username/email is the likely culprit
		Render(c, http.StatusConflict, "blog/user.html", gin.H{
			"Title":  "Edit profile",
			"Form":   form,
			"Errors": map[string]string{"form": "That username or email is already taken."},
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}
