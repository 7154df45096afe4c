package service

import (
	"context"
	"errors"

	"github.com/labelforge/annotate-backend/internal/annotations/domain"
	"github.com/labelforge/annotate-backend/internal/annotations/repository"
	"github.com/labelforge/annotate-backend/internal/apperr"
	"github.com/labelforge/annotate-backend/internal/pagination"
)

// Service implements the annotation use cases. Annotations are addressed by
// raw task/annotation ids with no check against the acting user; ownership is
// only enforced at the project level.
type Service struct {
	repo *repository.Repo
}

func NewService(repo *repository.Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, taskID int64, coordinates, labels string, data map[string]any) (*domain.Annotation, error) {
	a, err := s.repo.Create(ctx, taskID, coordinates, labels, data)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, apperr.NotFound("Task does not exist.")
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) ListByTask(ctx context.Context, taskID int64, p pagination.Params) ([]domain.Annotation, int, error) {
	return s.repo.ListByTask(ctx, taskID, p)
}

func (s *Service) Update(ctx context.Context, id int64, upd domain.Update) (*domain.Annotation, error) {
	a, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("Annotation does not exist.")
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperr.NotFound("Annotation does not exist.")
		}
		return err
	}
	return nil
}
