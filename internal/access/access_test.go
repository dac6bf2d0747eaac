package access

import (
	"testing"
	"time"

	"blogicum/internal/models"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func makePost(published bool, pubDate time.Time, category *models.Category) *models.Post {
	return &models.Post{
		ID:        1,
		AuthorID:  10,
		Published: published,
		PubDate:   pubDate,
		Category:  category,
	}
}

func TestIsLive(t *testing.T) {
	pubCat := &models.Category{ID: 1, Published: true}
	hiddenCat := &models.Category{ID: 2, Published: false}

	cases := []struct {
		name string
		post *models.Post
		want bool
	}{
		{"published past post in published category", makePost(true, now.Add(-time.Hour), pubCat), true},
		{"pub date exactly now", makePost(true, now, pubCat), true},
		{"unpublished post", makePost(false, now.Add(-time.Hour), pubCat), false},
		{"future dated post", makePost(true, now.Add(time.Hour), pubCat), false},
		{"hidden category", makePost(true, now.Add(-time.Hour), hiddenCat), false},
		{"category deleted", makePost(true, now.Add(-time.Hour), nil), false},
	}

	for _, tc := range cases {
		if got := IsLive(tc.post, now); got != tc.want {
			t.Errorf("%s: IsLive = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanView(t *testing.T) {
	pubCat := &models.Category{ID: 1, Published: true}
	author := &models.User{ID: 10}
	other := &models.User{ID: 11}

	live := makePost(true, now.Add(-time.Hour), pubCat)
	deferred := makePost(true, now.Add(time.Hour), pubCat)
	draft := makePost(false, now.Add(-time.Hour), pubCat)

	if !CanView(live, nil, now) {
		t.Error("anonymous viewer should see a live post")
	}
	if !CanView(live, other, now) {
		t.Error("any viewer should see a live post")
	}
	if CanView(deferred, nil, now) {
		t.Error("anonymous viewer must not see a deferred post")
	}
	if CanView(deferred, other, now) {
		t.Error("non-author must not see a deferred post")
	}
	if !CanView(deferred, author, now) {
		t.Error("author should see own deferred post")
	}
	if !CanView(draft, author, now) {
		t.Error("author should see own draft")
	}
	if CanView(draft, other, now) {
		t.Error("non-author must not see a draft")
	}
}

func TestCanComment(t *testing.T) {
	pubCat := &models.Category{ID: 1, Published: true}
	author := &models.User{ID: 10}
	other := &models.User{ID: 11}

	live := makePost(true, now.Add(-time.Hour), pubCat)
	deferred := makePost(true, now.Add(time.Hour), pubCat)

	if CanComment(live, nil, now) {
		t.Error("anonymous viewer must never comment")
	}
	if !CanComment(live, other, now) {
		t.Error("authenticated viewer should comment on a live post")
	}
	if !CanComment(deferred, author, now) {
		t.Error("author should be able to comment on own deferred post")
	}
	if CanComment(deferred, other, now) {
		t.Error("non-author must not comment on a deferred post")
	}
}
