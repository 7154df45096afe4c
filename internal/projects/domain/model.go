package domain

import (
	"errors"
	"time"

	taskdomain "github.com/labelforge/annotate-backend/internal/tasks/domain"
)

var ErrNotFound = errors.New("project not found")

type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      int64     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Detail is a project with its tasks and their annotations eagerly loaded.
type Detail struct {
	Project
	Tasks []taskdomain.Detail `json:"tasks"`
}

// Update carries the optional fields of a partial update. Nil means "leave
// unchanged".
type Update struct {
	Name        *string
	Description *string
}
