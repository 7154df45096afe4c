package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/labelforge/annotate-backend/internal/annotations/domain"
	"github.com/labelforge/annotate-backend/internal/pagination"
)

// sortable maps exposed ordering fields to columns.
var sortable = map[string]string{
	"id":          "id",
	"coordinates": "coordinates",
	"labels":      "labels",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts an annotation under the given task. A missing task surfaces
// as ErrTaskNotFound via the foreign key, without a separate existence check.
func (r *Repo) Create(ctx context.Context, taskID int64, coordinates, labels string, data map[string]any) (*domain.Annotation, error) {
	if data == nil {
		data = map[string]any{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO annotations (task_id, coordinates, labels, data)
VALUES ($1, $2, $3, $4)
RETURNING id, task_id, coordinates, labels, data, created_at, updated_at;
`
	a, err := scanAnnotation(r.db.QueryRowContext(ctx, q, taskID, coordinates, labels, raw))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListByTask returns one page of a task's annotations plus the total count.
func (r *Repo) ListByTask(ctx context.Context, taskID int64, p pagination.Params) ([]domain.Annotation, int, error) {
	order, err := p.OrderClause(sortable, "id ASC")
	if err != nil {
		return nil, 0, err
	}

	var total int
	const countQ = `SELECT count(*) FROM annotations WHERE task_id = $1;`
	if err := r.db.QueryRowContext(ctx, countQ, taskID).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `
SELECT id, task_id, coordinates, labels, data, created_at, updated_at
FROM annotations
WHERE task_id = $1
ORDER BY ` + order + `
LIMIT $2 OFFSET $3;
`
	rows, err := r.db.QueryContext(ctx, q, taskID, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]domain.Annotation, 0, p.PageSize)
	for rows.Next() {
		a, err := scanAnnotation(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *a)
	}
	return out, total, rows.Err()
}

// Update applies only the provided fields and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, id int64, upd domain.Update) (*domain.Annotation, error) {
	var raw []byte
	if upd.Data != nil {
		b, err := json.Marshal(upd.Data)
		if err != nil {
			return nil, err
		}
		raw = b
	}

	const q = `
UPDATE annotations
SET coordinates = COALESCE($2, coordinates),
    labels = COALESCE($3, labels),
    data = COALESCE($4, data),
    updated_at = now()
WHERE id = $1
RETURNING id, task_id, coordinates, labels, data, created_at, updated_at;
`
	a, err := scanAnnotation(r.db.QueryRowContext(ctx, q, id, upd.Coordinates, upd.Labels, raw))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM annotations WHERE id = $1;`
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnnotation(row rowScanner) (*domain.Annotation, error) {
	var a domain.Annotation
	var raw []byte
	err := row.Scan(&a.ID, &a.TaskID, &a.Coordinates, &a.Labels, &raw, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
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
	return &a, nil
}
