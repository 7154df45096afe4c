package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/labelforge/annotate-backend/internal/pagination"
	"github.com/labelforge/annotate-backend/internal/tasks/domain"
)

var sortable = map[string]string{
	"id":         "id",
	"url":        "url",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a task under the given project. A missing project surfaces
// as ErrProjectNotFound via the foreign key.
func (r *Repo) Create(ctx context.Context, projectID int64, url string) (*domain.Task, error) {
	const q = `
INSERT INTO tasks (project_id, url)
VALUES ($1, $2)
RETURNING id, url, project_id, created_at, updated_at;
`
	var t domain.Task
	err := r.db.QueryRowContext(ctx, q, projectID, url).
		Scan(&t.ID, &t.URL, &t.ProjectID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListByProject returns one page of a project's tasks plus the total count.
func (r *Repo) ListByProject(ctx context.Context, projectID int64, p pagination.Params) ([]domain.Task, int, error) {
	order, err := p.OrderClause(sortable, "id ASC")
	if err != nil {
		return nil, 0, err
	}

	var total int
	const countQ = `SELECT count(*) FROM tasks WHERE project_id = $1;`
	if err := r.db.QueryRowContext(ctx, countQ, projectID).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `
SELECT id, url, project_id, created_at, updated_at
FROM tasks
WHERE project_id = $1
ORDER BY ` + order + `
LIMIT $2 OFFSET $3;
`
	rows, err := r.db.QueryContext(ctx, q, projectID, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]domain.Task, 0, p.PageSize)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.URL, &t.ProjectID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

// Update applies only the provided fields and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, id int64, url *string) (*domain.Task, error) {
	const q = `
UPDATE tasks
SET url = COALESCE($2, url), updated_at = now()
WHERE id = $1
RETURNING id, url, project_id, created_at, updated_at;
`
	var t domain.Task
	err := r.db.QueryRowContext(ctx, q, id, url).
		Scan(&t.ID, &t.URL, &t.ProjectID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM tasks WHERE id = $1;`
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
