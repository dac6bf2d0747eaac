package store

import (
	"errors"

	"gorm.io/gorm"

	"blogicum/internal/models"
)

// FeedHome returns one page of live posts, newest publication date first.
// The home feed never shows drafts or deferred posts, not even to their
// authors.
func (s *Store) FeedHome(page int) (Page, error) {
	now := s.now()
	return s.paginate(s.livePosts(now), page)
}

// FeedCategory returns one page of live posts in the category with the
// given slug. An absent or unpublished category is ErrNotFound. The live
// filter applies to everyone here, authors included.
func (s *Store) FeedCategory(slug string, page int) (*models.Category, Page, error) {
	var category models.Category
	err := s.db.Where("slug = ? AND published = ?", slug, true).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Page{}, ErrNotFound
	}
	if err != nil {
		return nil, Page{}, err
	}

	now := s.now()
	feed, err := s.paginate(s.livePosts(now).Where("posts.category_id = ?", category.ID), page)
	return &category, feed, err
}

// FeedProfile returns one page of the profile user's posts. The owner sees
// every post they authored; anyone else gets the live subset only.
func (s *Store) FeedProfile(username string, viewer *models.User, page int) (*models.User, Page, error) {
	var profile models.User
	err := s.db.Where("username = ?", username).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Page{}, ErrNotFound
	}
	if err != nil {
		return nil, Page{}, err
	}

	var query *gorm.DB
	if viewer != nil && viewer.ID == profile.ID {
		query = s.db.Model(&models.Post{}).Where("posts.author_id = ?", profile.ID)
	} else {
		query = s.livePosts(s.now()).Where("posts.author_id = ?", profile.ID)
	}

	feed, err := s.paginate(query, page)
	return &profile, feed, err
}

// paginate counts, clamps the requested page into range and fetches one
// page ordered by publication date descending, comment counts filled in.
func (s *Store) paginate(query *gorm.DB, page int) (Page, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page{}, err
	}

	pages := totalPages(total)
	number := clampPage(page, pages)

	var posts []models.Post
	err := query.
		Preload("Author").Preload("Category").Preload("Location").
		Order("posts.pub_date DESC").
		Limit(PageSize).
		Offset((number - 1) * PageSize).
		Find(&posts).Error
	if err != nil {
		return Page{}, err
	}

	if err := s.fillCommentCounts(posts); err != nil {
		return Page{}, err
	}

	return Page{Posts: posts, Number: number, TotalPages: pages, Total: total}, nil
}

// fillCommentCounts annotates posts with the number of their published
// comments in a single grouped query. Unpublished comments never count.
func (s *Store) fillCommentCounts(posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countRow struct {
		PostID uint
		Count  int
	}
	var rows []countRow
	err := s.db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ? AND published = ?", postIDs, true).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.PostID] = r.Count
	}
	for i := range posts {
		posts[i].CommentCount = counts[posts[i].ID]
	}
	return nil
}
