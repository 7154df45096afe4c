package domain

import "time"

// RecentAnnotation is the reduced annotation shape shown on the dashboard.
type RecentAnnotation struct {
	Coordinates string    `json:"coordinates"`
	Labels      string    `json:"labels"`
	CreatedAt   time.Time `json:"created_at"`
}

// Metrics aggregates everything the acting user owns, transitively through
// the project chain.
type Metrics struct {
	TotalProjects     int                `json:"total_projects"`
	TotalTasks        int                `json:"total_tasks"`
	TotalAnnotations  int                `json:"total_annotations"`
	RecentAnnotations []RecentAnnotation `json:"recent_annotations"`
}
