package domain

import (
	"errors"
	"time"

	anndomain "github.com/labelforge/annotate-backend/internal/annotations/domain"
)

var (
	ErrNotFound        = errors.New("task not found")
	ErrProjectNotFound = errors.New("project not found")
)

type Task struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	ProjectID int64     `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Detail is a task with its annotations eagerly loaded, as nested inside a
// project detail response.
type Detail struct {
	Task
	Annotations []anndomain.Annotation `json:"annotations"`
}
