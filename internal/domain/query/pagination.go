package query

import (
	"bytes"
	"time"

	"autoconnect/internal/domain/entity"
)

// Pagination describes where a page sits within the full result.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination computes page metadata from the total matched by the page's filter.
func NewPagination(page Page, total int64) Pagination {
	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}

	return Pagination{
		CurrentPage: page.Number,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNextPage: page.Number < totalPages,
		HasPrevPage: page.Number > 1,
	}
}

// Compare orders two requests under s, returning a negative number when a sorts first.
// A missing scheduledDate sorts after every date ascending and before every date
// descending, as PostgreSQL does by default.
func (s Sort) Compare(a, b *entity.AddedVehicleRequest) int {
	c := compareField(s.Field, a, b)
	if c == 0 {
		c = bytes.Compare(a.ID[:], b.ID[:])
	}
	if s.Desc {
		return -c
	}

	return c
}

func compareField(field SortField, a, b *entity.AddedVehicleRequest) int {
	switch field {
	case SortCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case SortUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case SortScheduledDate:
		return compareOptionalTime(a.ScheduledDate, b.ScheduledDate)
	case SortPriority:
		return a.Priority.Rank() - b.Priority.Rank()
	case SortStatus:
		return compareString(string(a.Status), string(b.Status))
	case SortPurpose:
		return compareString(string(a.Purpose), string(b.Purpose))
	}

	return 0
}

func compareOptionalTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	return a.Compare(*b)
}

func compareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
