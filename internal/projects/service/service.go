package service

import (
	"context"
	"errors"

	"github.com/labelforge/annotate-backend/internal/apperr"
	"github.com/labelforge/annotate-backend/internal/pagination"
	"github.com/labelforge/annotate-backend/internal/projects/domain"
	"github.com/labelforge/annotate-backend/internal/projects/repository"
)

// Service implements the project use cases. Every operation addressing an
// existing project verifies the acting user owns it.
type Service struct {
	repo *repository.Repo
}

func NewService(repo *repository.Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID int64, name, description string) (*domain.Project, error) {
	return s.repo.Create(ctx, userID, name, description)
}

func (s *Service) List(ctx context.Context, userID int64, p pagination.Params) ([]domain.Project, int, error) {
	return s.repo.List(ctx, userID, p)
}

func (s *Service) Get(ctx context.Context, id, userID int64) (*domain.Detail, error) {
	if err := s.authorize(ctx, id, userID); err != nil {
		return nil, err
	}
	return s.repo.GetDetail(ctx, id)
}

func (s *Service) Update(ctx context.Context, id, userID int64, upd domain.Update) (*domain.Project, error) {
	if err := s.authorize(ctx, id, userID); err != nil {
		return nil, err
	}
	p, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("Project does not exist.")
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	if err := s.authorize(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperr.NotFound("Project does not exist.")
		}
		return err
	}
	return nil
}

// authorize loads the project and checks the acting user is its owner.
func (s *Service) authorize(ctx context.Context, id, userID int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperr.NotFound("Project does not exist.")
		}
		return err
	}
	if p.UserID != userID {
		return apperr.Forbidden("Not the creating user")
	}
	return nil
}
