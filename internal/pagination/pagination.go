// Package pagination implements offset-based pagination over ordered result
// sets: page/size normalization, ordering validation, and the response
// envelope with absolute previous/next links.
package pagination

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/labelforge/annotate-backend/internal/apperr"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params is a normalized page request. PageIndex is 1-based.
type Params struct {
	PageIndex int
	PageSize  int
	Ordering  string
}

// ParseParams reads page_index, page_size and ordering from the query string.
// page_index values below 1 normalize to 1; page_size is clamped to [1,100].
// Unparsable numbers fall back to the defaults.
func ParseParams(c *gin.Context) Params {
	p := Params{
		PageIndex: 1,
		PageSize:  DefaultPageSize,
		Ordering:  strings.TrimSpace(c.Query("ordering")),
	}

	if v, err := strconv.Atoi(c.Query("page_index")); err == nil && v > 1 {
		p.PageIndex = v
	}
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil {
		switch {
		case v < 1:
			p.PageSize = 1
		case v > MaxPageSize:
			p.PageSize = MaxPageSize
		default:
			p.PageSize = v
		}
	}

	return p
}

func (p Params) Offset() int {
	return (p.PageIndex - 1) * p.PageSize
}

// OrderClause resolves the ordering field against the sortable columns of a
// collection. A leading '-' means descending. The sortable map translates
// exposed field names to SQL columns. An unknown field is an InvalidInput
// error naming the field; an empty ordering returns the fallback clause.
func (p Params) OrderClause(sortable map[string]string, fallback string) (string, error) {
	if p.Ordering == "" {
		return fallback, nil
	}

	field := p.Ordering
	desc := false
	if strings.HasPrefix(field, "-") {
		field = field[1:]
		desc = true
	}

	col, ok := sortable[field]
	if !ok {
		return "", apperr.InvalidInput(fmt.Sprintf("Ordering Field '%s'", p.Ordering))
	}
	if desc {
		return col + " DESC", nil
	}
	return col + " ASC", nil
}

// Page is the paginated response envelope.
type Page[T any] struct {
	Message   *string `json:"message"`
	Success   bool    `json:"success"`
	Total     int     `json:"total"`
	PageSize  int     `json:"page_size"`
	PageIndex int     `json:"page_index"`
	NbPages   int     `json:"nb_pages"`
	Previous  *string `json:"previous"`
	Next      *string `json:"next"`
	Data      []T     `json:"data"`
}

// NewPage builds the envelope around one window of data. total is the count of
// the full filtered collection. Links are absolute: liveURL + path +
// ?page_index=N&page_size=M. previous exists only past the first page; next
// only while another window remains.
func NewPage[T any](liveURL, path string, p Params, total int, data []T) Page[T] {
	if data == nil {
		data = []T{}
	}

	page := Page[T]{
		Success:   true,
		Total:     total,
		PageSize:  p.PageSize,
		PageIndex: p.PageIndex,
		NbPages:   (total + p.PageSize - 1) / p.PageSize,
		Data:      data,
	}

	if p.PageIndex > 1 {
		prev := pageLink(liveURL, path, p.PageIndex-1, p.PageSize)
		page.Previous = &prev
	}
	if p.Offset()+p.PageSize < total {
		next := pageLink(liveURL, path, p.PageIndex+1, p.PageSize)
		page.Next = &next
	}

	return page
}

func pageLink(liveURL, path string, index, size int) string {
	return fmt.Sprintf("%s%s?page_index=%d&page_size=%d", liveURL, path, index, size)
}
