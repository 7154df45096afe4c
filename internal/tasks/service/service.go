package service

import (
	"context"
	"errors"

	"github.com/labelforge/annotate-backend/internal/apperr"
	"github.com/labelforge/annotate-backend/internal/pagination"
	"github.com/labelforge/annotate-backend/internal/tasks/domain"
	"github.com/labelforge/annotate-backend/internal/tasks/repository"
)

// Service implements the task use cases. Tasks are addressed by raw ids with
// no check against the acting user; ownership is only enforced at the project
// level.
type Service struct {
	repo *repository.Repo
}

func NewService(repo *repository.Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, projectID int64, url string) (*domain.Task, error) {
	t, err := s.repo.Create(ctx, projectID, url)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return nil, apperr.NotFound("Project does not exist.")
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) ListByProject(ctx context.Context, projectID int64, p pagination.Params) ([]domain.Task, int, error) {
	return s.repo.ListByProject(ctx, projectID, p)
}

func (s *Service) Update(ctx context.Context, id int64, url *string) (*domain.Task, error) {
	t, err := s.repo.Update(ctx, id, url)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("Task does not exist.")
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperr.NotFound("Task does not exist.")
		}
		return err
	}
	return nil
}
