package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	anndomain "github.com/labelforge/annotate-backend/internal/annotations/domain"
	"github.com/labelforge/annotate-backend/internal/pagination"
	"github.com/labelforge/annotate-backend/internal/projects/domain"
	taskdomain "github.com/labelforge/annotate-backend/internal/tasks/domain"
)

var sortable = map[string]string{
	"id":          "id",
	"name":        "name",
	"description": "description",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a new project owned by the given user.
func (r *Repo) Create(ctx context.Context, userID int64, name, description string) (*domain.Project, error) {
	const q = `
INSERT INTO projects (user_id, name, description)
VALUES ($1, $2, $3)
RETURNING id, name, description, user_id, created_at, updated_at;
`
	var p domain.Project
	err := r.db.QueryRowContext(ctx, q, userID, name, description).
		Scan(&p.ID, &p.Name, &p.Description, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns one page of the user's projects plus the total count.
func (r *Repo) List(ctx context.Context, userID int64, p pagination.Params) ([]domain.Project, int, error) {
	order, err := p.OrderClause(sortable, "id ASC")
	if err != nil {
		return nil, 0, err
	}

	var total int
	const countQ = `SELECT count(*) FROM projects WHERE user_id = $1;`
	if err := r.db.QueryRowContext(ctx, countQ, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `
SELECT id, name, description, user_id, created_at, updated_at
FROM projects
WHERE user_id = $1
ORDER BY ` + order + `
LIMIT $2 OFFSET $3;
`
	rows, err := r.db.QueryContext(ctx, q, userID, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, p.PageSize)
	for rows.Next() {
		var pr domain.Project
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Description, &pr.UserID, &pr.CreatedAt, &pr.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, pr)
	}
	return out, total, rows.Err()
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `
SELECT id, name, description, user_id, created_at, updated_at
FROM projects
WHERE id = $1;
`
	var p domain.Project
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetDetail loads a project with its tasks and each task's annotations.
func (r *Repo) GetDetail(ctx context.Context, id int64) (*domain.Detail, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.Detail{Project: *p, Tasks: []taskdomain.Detail{}}

	const tasksQ = `
SELECT id, url, project_id, created_at, updated_at
FROM tasks
WHERE project_id = $1
ORDER BY id ASC;
`
	rows, err := r.db.QueryContext(ctx, tasksQ, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byTask := map[int64]int{}
	for rows.Next() {
		var t taskdomain.Task
		if err := rows.Scan(&t.ID, &t.URL, &t.ProjectID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		byTask[t.ID] = len(detail.Tasks)
		detail.Tasks = append(detail.Tasks, taskdomain.Detail{
			Task:        t,
			Annotations: []anndomain.Annotation{},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const annQ = `
SELECT a.id, a.task_id, a.coordinates, a.labels, a.data, a.created_at, a.updated_at
FROM annotations a
JOIN tasks t ON t.id = a.task_id
WHERE t.project_id = $1
ORDER BY a.id ASC;
`
	annRows, err := r.db.QueryContext(ctx, annQ, id)
	if err != nil {
		return nil, err
	}
	defer annRows.Close()

	for annRows.Next() {
		var a anndomain.Annotation
		var raw []byte
		if err := annRows.Scan(&a.ID, &a.TaskID, &a.Coordinates, &a.Labels, &raw, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &a.Data); err != nil {
				return nil, err
			}
		}
		if a.Data == nil {
			a.Data = map[string]any{}
		}
		if i, ok := byTask[a.TaskID]; ok {
			detail.Tasks[i].Annotations = append(detail.Tasks[i].Annotations, a)
		}
	}
	return detail, annRows.Err()
}

// Update applies only the provided fields and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, id int64, upd domain.Update) (*domain.Project, error) {
	const q = `
UPDATE projects
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    updated_at = now()
WHERE id = $1
RETURNING id, name, description, user_id, created_at, updated_at;
`
	var p domain.Project
	err := r.db.QueryRowContext(ctx, q, id, upd.Name, upd.Description).
		Scan(&p.ID, &p.Name, &p.Description, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes the project; tasks and annotations go with it via the
// cascading foreign keys.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM projects WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
