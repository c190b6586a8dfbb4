package service

import (
	"context"
	"errors"
	"fmt"

	"bookstore-api/internal/domains/author"
)

type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]author.AuthorResponse, error) {
	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	out := make([]author.AuthorResponse, 0, len(authors))
	for i := range authors {
		out = append(out, *authors[i].ToResponse())
	}
	return out, nil
}

func (s *authorService) Get(ctx context.Context, id int64) (*author.AuthorResponse, error) {
	if id < 1 {
		return nil, author.ErrInvalidID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.ToResponse(), nil
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.AuthorResponse, error) {
	if req == nil {
		return nil, author.ErrEmptyRequest
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := req.ToEntity()
	if res := s.repo.Create(ctx, a); !res.Succeeded {
		return nil, fmt.Errorf("create author: %w", res.Cause)
	}
	return a.ToResponse(), nil
}

func (s *authorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) error {
	if id < 1 {
		return author.ErrInvalidID
	}
	if req == nil {
		return author.ErrEmptyRequest
	}
	if id != req.ID {
		return author.ErrIDMismatch
	}

	// Existence check is a separate round-trip from the update; a
	// concurrent delete in between surfaces as a 404 or 500.
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check author existence: %w", err)
	}
	if !exists {
		return author.ErrAuthorNotFound
	}

	if err := req.Validate(); err != nil {
		return err
	}

	if res := s.repo.Update(ctx, req.ToEntity()); !res.Succeeded {
		if errors.Is(res.Cause, author.ErrAuthorNotFound) {
			return author.ErrAuthorNotFound
		}
		return fmt.Errorf("update author: %w", res.Cause)
	}
	return nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return author.ErrInvalidID
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check author existence: %w", err)
	}
	if !exists {
		return author.ErrAuthorNotFound
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if res := s.repo.Delete(ctx, a); !res.Succeeded {
		switch {
		case errors.Is(res.Cause, author.ErrAuthorHasBooks):
			return author.ErrAuthorHasBooks
		case errors.Is(res.Cause, author.ErrAuthorNotFound):
			return author.ErrAuthorNotFound
		default:
			return fmt.Errorf("delete author: %w", res.Cause)
		}
	}
	return nil
}
