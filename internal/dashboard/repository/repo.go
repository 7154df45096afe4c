package repository

import (
	"context"
	"database/sql"

	"github.com/labelforge/annotate-backend/internal/dashboard/domain"
)

const recentAnnotationsLimit = 5

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Metrics counts the user's projects, tasks and annotations and fetches the
// most recently created annotations under the user's projects.
func (r *Repo) Metrics(ctx context.Context, userID int64) (*domain.Metrics, error) {
	m := &domain.Metrics{RecentAnnotations: []domain.RecentAnnotation{}}

	const countsQ = `
SELECT
    (SELECT count(*) FROM projects WHERE user_id = $1),
    (SELECT count(*) FROM tasks t JOIN projects p ON p.id = t.project_id WHERE p.user_id = $1),
    (SELECT count(*)
     FROM annotations a
     JOIN tasks t ON t.id = a.task_id
     JOIN projects p ON p.id = t.project_id
     WHERE p.user_id = $1);
`
	err := r.db.QueryRowContext(ctx, countsQ, userID).
		Scan(&m.TotalProjects, &m.TotalTasks, &m.TotalAnnotations)
	if err != nil {
		return nil, err
	}

	const recentQ = `
SELECT a.coordinates, a.labels, a.created_at
FROM annotations a
JOIN tasks t ON t.id = a.task_id
JOIN projects p ON p.id = t.project_id
WHERE p.user_id = $1
ORDER BY a.created_at DESC
LIMIT $2;
`
	rows, err := r.db.QueryContext(ctx, recentQ, userID, recentAnnotationsLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.RecentAnnotation
		if err := rows.Scan(&a.Coordinates, &a.Labels, &a.CreatedAt); err != nil {
			return nil, err
		}
		m.RecentAnnotations = append(m.RecentAnnotations, a)
	}
	return m, rows.Err()
}
