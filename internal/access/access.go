// Package access holds the visibility rules for posts. The predicates are
// pure functions over already-loaded entities so the same rules can back
// both single-post checks and the SQL feed filters in the store package.
package access

import (
	"time"

	"blogicum/internal/models"
)

// IsLive reports whether a post is publicly visible at the given instant:
// the post is published, its publication date has passed, and it sits in a
// published category. A post whose category was deleted (nil) is never live.
func IsLive(post *models.Post, now time.Time) bool {
	if !post.Published {
		return false
	}
	if post.PubDate.After(now) {
		return false
	}
	return post.Category != nil && post.Category.Published
}

// CanView reports whether viewer may open the post detail page.
// Authors always see their own posts, drafts and deferred ones included.
// viewer is nil for anonymous requests.
func CanView(post *models.Post, viewer *models.User, now time.Time) bool {
	if IsLive(post, now) {
		return true
	}
	return viewer != nil && viewer.ID == post.AuthorID
}

// CanComment reports whether viewer may comment on the post. Commenting
// requires an authenticated viewer and inherits the view rule, nothing more.
func CanComment(post *models.Post, viewer *models.User, now time.Time) bool {
	return viewer != nil && CanView(post, viewer, now)
}
