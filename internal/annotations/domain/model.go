package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("annotation not found")
	ErrTaskNotFound = errors.New("task not found")
)

type Annotation struct {
	ID          int64          `json:"id"`
	TaskID      int64          `json:"task_id"`
	Coordinates string         `json:"coordinates"`
	Labels      string         `json:"labels"`
	Data        map[string]any `json:"data"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Update carries the optional fields of a partial update. Nil means "leave
// unchanged".
type Update struct {
	Coordinates *string
	Labels      *string
	Data        map[string]any
}
