package store

import (
	"math"

	"blogicum/internal/models"
)

// PageSize is fixed for every feed.
const PageSize = 10

// Page is one feed page plus the numbers the pagination controls need.
type Page struct {
	Posts      []models.Post
	Number     int
	TotalPages int
	Total      int64
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }
func (p Page) PrevPage() int { return p.Number - 1 }
func (p Page) NextPage() int { return p.Number + 1 }

// totalPages never reports less than one page, even for an empty feed.
func totalPages(total int64) int {
	pages := int(math.Ceil(float64(total) / float64(PageSize)))
	if pages == 0 {
		pages = 1
	}
	return pages
}

// clampPage snaps an out-of-range page number to the nearest valid page
// instead of failing the request.
func clampPage(page, total int) int {
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
