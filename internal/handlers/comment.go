package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blogicum/internal/access"
	"blogicum/internal/forms"
	"blogicum/internal/middleware"
	"blogicum/internal/models"
	"blogicum/internal/services"
	"blogicum/internal/store"
	"blogicum/internal/utils"
)

type CommentHandler struct {
	repo Repository
	mail *services.MailService
	now  func() time.Time
}

func NewCommentHandler(repo Repository, mail *services.MailService) *CommentHandler {
	return &CommentHandler{repo: repo, mail: mail, now: time.Now}
}

// Create - POST /posts/:id/comment
func (h *CommentHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	postID := utils.StringToUint(c.Param("id"))

	post, err := h.repo.GetPost(postID)
	if errors.Is(err, store.ErrNotFound) || postID == 0 {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the post")
		return
	}

	if !access.CanComment(post, user, h.now()) {
		c.Redirect(http.StatusFound, postDetailPath(post.ID))
		return
	}

	var form forms.CommentForm
	if bindErr := c.ShouldBind(&form); bindErr != nil || len(forms.Validate(&form)) > 0 {
		c.Redirect(http.StatusFound, postDetailPath(post.ID))
		return
	}

	comment := models.Comment{
		PostID:    post.ID,
		AuthorID:  user.ID,
		Text:      form.Text,
		Published: true,
	}
	if err := h.repo.CreateComment(&comment); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save the comment")
		return
	}

	// Best-effort author notification; the comment stands either way.
	if post.AuthorID != user.ID && post.Author.Email != "" {
		h.mail.SendCommentNotification(
			post.Author.Email,
			user.Username,
			post.Title,
			comment.Text,
			siteURL()+postDetailPath(post.ID),
		)
	}

	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}

// ShowEdit - GET /posts/:id/comment/:comment_id/edit
func (h *CommentHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	comment, ok := h.ownComment(c, user)
	if !ok {
		return
	}

	Render(c, http.StatusOK, "blog/comment.html", gin.H{
		"Title":   "Edit comment",
		"Comment": comment,
		"Form":    forms.CommentForm{Text: comment.Text},
	})
}

// Edit - POST /posts/:id/comment/:comment_id/edit
func (h *CommentHandler) Edit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	comment, ok := h.ownComment(c, user)
	if !ok {
		return
	}

	var form forms.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		RenderError(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if errs := forms.Validate(&form); len(errs) > 0 {
		Render(c, http.StatusBadRequest, "blog/comment.html", gin.H{
			"Title":   "Edit comment",
			"Comment": comment,
			"Form":    form,
			"Errors":  errs,
		})
		return
	}

	comment.Text = form.Text
	if err := h.repo.UpdateComment(comment); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save the comment")
		return
	}

	c.Redirect(http.StatusFound, postDetailPath(comment.PostID))
}

// Delete - POST /posts/:id/comment/:comment_id/delete
func (h *CommentHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	comment, ok := h.ownComment(c, user)
	if !ok {
		return
	}

	if err := h.repo.DeleteComment(comment); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete the comment")
		return
	}

	c.Redirect(http.StatusFound, postDetailPath(comment.PostID))
}

// ownComment mirrors ownPost: a comment owned by someone else redirects to
// the post detail page without touching anything.
func (h *CommentHandler) ownComment(c *gin.Context, user *models.User) (*models.Comment, bool) {
	postID := utils.StringToUint(c.Param("id"))
	commentID := utils.StringToUint(c.Param("comment_id"))

	comment, err := h.repo.GetComment(postID, commentID)
	if errors.Is(err, store.ErrNotFound) || postID == 0 || commentID == 0 {
		RenderError(c, http.StatusNotFound, "Comment not found")
		return nil, false
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the comment")
		return nil, false
	}

	if comment.AuthorID != user.ID {
		c.Redirect(http.StatusFound, postDetailPath(comment.PostID))
		return nil, false
	}
	return comment, true
}
