package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"blogicum/internal/access"
	"blogicum/internal/forms"
	"blogicum/internal/middleware"
	"blogicum/internal/models"
	"blogicum/internal/store"
	"blogicum/internal/utils"
)

type PostHandler struct {
	repo Repository
	now  func() time.Time
}

func NewPostHandler(repo Repository) *PostHandler {
	return &PostHandler{repo: repo, now: time.Now}
}

func postDetailPath(id uint) string {
	return fmt.Sprintf("/posts/%d", id)
}

func pageParam(c *gin.Context) int {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	if page == 0 {
		page = 1
	}
	return page
}

// Home - GET /
func (h *PostHandler) Home(c *gin.Context) {
	feed, err := h.repo.FeedHome(pageParam(c))
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the feed")
		return
	}

	Render(c, http.StatusOK, "blog/index.html", gin.H{
		"Title": "Latest posts",
		"Page":  feed,
	})
}

// Category - GET /category/:slug
func (h *PostHandler) Category(c *gin.Context) {
	slug := c.Param("slug")

	category, feed, err := h.repo.FeedCategory(slug, pageParam(c))
	if errors.Is(err, store.ErrNotFound) {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the feed")
		return
	}

	Render(c, http.StatusOK, "blog/category.html", gin.H{
		"Title":    category.Title,
		"Category": category,
		"Page":     feed,
	})
}

// Detail - GET /posts/:id
func (h *PostHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	viewer := middleware.CurrentUser(c)

	post, comments, err := h.repo.PostForView(id, viewer)
	if errors.Is(err, store.ErrNotFound) || id == 0 {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}
	if errors.Is(err, store.ErrPermissionDenied) {
		RenderError(c, http.StatusForbidden, "This post is not available")
		return
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the post")
		return
	}

	type renderedComment struct {
		models.Comment
		TextHTML template.HTML
	}
	rendered := make([]renderedComment, len(comments))
	for i, comment := range comments {
		rendered[i] = renderedComment{
			Comment:  comment,
			TextHTML: utils.RenderMarkdown(comment.Text),
		}
	}

	Render(c, http.StatusOK, "blog/detail.html", gin.H{
		"Title":      post.Title,
		"Post":       post,
		"PostText":   utils.RenderMarkdown(post.Text),
		"Comments":   rendered,
		"CanComment": access.CanComment(post, viewer, h.now()),
	})
}

// ShowCreate - GET /posts/create
func (h *PostHandler) ShowCreate(c *gin.Context) {
	h.renderPostForm(c, http.StatusOK, gin.H{
		"Title": "New post",
		"Form": forms.PostForm{
			PubDate:   h.now().Format(forms.PubDateLayout),
			Published: true,
		},
	})
}

// Create - POST /posts/create
func (h *PostHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	form, pubDate, errs := h.bindPostForm(c)
	if len(errs) > 0 {
		h.renderPostForm(c, http.StatusBadRequest, gin.H{
			"Title":  "New post",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	categoryID := form.CategoryID
	post := models.Post{
		AuthorID:   user.ID,
		CategoryID: &categoryID,
		Title:      form.Title,
		Text:       form.Text,
		PubDate:    pubDate,
		Published:  form.Published,
		Image:      form.Image,
	}
	if form.LocationID != 0 {
		locationID := form.LocationID
		post.LocationID = &locationID
	}

	if err := h.repo.CreatePost(&post); err != nil {
		h.renderPostForm(c, http.StatusInternalServerError, gin.H{
			"Title":  "New post",
			"Form":   form,
			"Errors": map[string]string{"form": "Could not save the post."},
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

// ShowEdit - GET /posts/:id/edit
func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	post, ok := h.ownPost(c, user)
	if !ok {
		return
	}

	form := forms.PostForm{
		Title:     post.Title,
		Text:      post.Text,
		PubDate:   post.PubDate.In(time.Local).Format(forms.PubDateLayout),
		Published: post.Published,
		Image:     post.Image,
	}
	if post.CategoryID != nil {
		form.CategoryID = *post.CategoryID
	}
	if post.LocationID != nil {
		form.LocationID = *post.LocationID
	}

	h.renderPostForm(c, http.StatusOK, gin.H{
		"Title": "Edit post",
		"Post":  post,
		"Form":  form,
	})
}

// Update - POST /posts/:id/edit
func (h *PostHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	post, ok := h.ownPost(c, user)
	if !ok {
		return
	}

	form, pubDate, errs := h.bindPostForm(c)
	if len(errs) > 0 {
		h.renderPostForm(c, http.StatusBadRequest, gin.H{
			"Title":  "Edit post",
			"Post":   post,
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	categoryID := form.CategoryID
	post.Title = form.Title
	post.Text = form.Text
	post.CategoryID = &categoryID
	post.LocationID = nil
	if form.LocationID != 0 {
		locationID := form.LocationID
		post.LocationID = &locationID
	}
	post.PubDate = pubDate
	post.Published = form.Published
	post.Image = form.Image

	if err := h.repo.UpdatePost(post); err != nil {
		h.renderPostForm(c, http.StatusInternalServerError, gin.H{
			"Title":  "Edit post",
			"Post":   post,
			"Form":   form,
			"Errors": map[string]string{"form": "Could not save the post."},
		})
		return
	}

	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}

// ShowDelete - GET /posts/:id/delete
func (h *PostHandler) ShowDelete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	post, ok := h.ownPost(c, user)
	if !ok {
		return
	}

	Render(c, http.StatusOK, "blog/create.html", gin.H{
		"Title":         "Delete post",
		"Post":          post,
		"ConfirmDelete": true,
	})
}

// Delete - POST /posts/:id/delete
func (h *PostHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	post, ok := h.ownPost(c, user)
	if !ok {
		return
	}

	if err := h.repo.DeletePost(post); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete the post")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

// ownPost loads the post and enforces the ownership policy: an existing post
// that belongs to someone else sends a redirect to its detail page, never an
// error, so the response leaks nothing about ownership.
func (h *PostHandler) ownPost(c *gin.Context, user *models.User) (*models.Post, bool) {
	id := utils.StringToUint(c.Param("id"))

	post, err := h.repo.GetPost(id)
	if errors.Is(err, store.ErrNotFound) || id == 0 {
		RenderError(c, http.StatusNotFound, "Post not found")
		return nil, false
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the post")
		return nil, false
	}

	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, postDetailPath(post.ID))
		return nil, false
	}
	return post, true
}

func (h *PostHandler) bindPostForm(c *gin.Context) (forms.PostForm, time.Time, map[string]string) {
	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		return form, time.Time{}, map[string]string{"form": "Invalid input."}
	}

	errs := forms.Validate(&form)

	var pubDate time.Time
	if errs["pub_date"] == "" {
		var err error
		pubDate, err = form.ParsedPubDate()
		if err != nil {
			errs["pub_date"] = "Enter a valid date and time."
		}
	}
	return form, pubDate, errs
}

func (h *PostHandler) renderPostForm(c *gin.Context, code int, obj gin.H) {
	categories, err := h.repo.PublishedCategories()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the post form")
		return
	}
	locations, err := h.repo.PublishedLocations()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the post form")
		return
	}
	obj["Categories"] = categories
	obj["Locations"] = locations
	Render(c, code, "blog/create.html", obj)
}

func siteURL() string {
	url := os.Getenv("SITE_URL")
	if url == "" {
		url = "http://localhost:8080"
	}
	return url
}
