package blog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var ErrDuplicateSlug = errors.New("a post with this slug already exists")

const uniqueViolation = "23505"

type Service interface {
	Create(ctx context.Context, req *CreatePostRequest) (*Post, error)
	Update(ctx context.Context, id int, req *UpdatePostRequest) (*Post, error)
	SetPublished(ctx context.Context, id int, published bool) (*Post, error)
	Delete(ctx context.Context, id int) error
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	ListAll(ctx context.Context) ([]Post, error)
	ListPublished(ctx context.Context) ([]Post, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func isDuplicateSlug(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}

func (s *service) Create(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	created, err := s.repo.Create(ctx, &Post{
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Image:     req.Image,
		Published: req.Published,
	})
	if err != nil {
		if isDuplicateSlug(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}

	return created, nil
}

func (s *service) Update(ctx context.Context, id int, req *UpdatePostRequest) (*Post, error) {
	updated, err := s.repo.Update(ctx, id, &Post{
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Image:     req.Image,
		Published: req.Published,
	})
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrPostNotFound
		case isDuplicateSlug(err):
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}

	return updated, nil
}

func (s *service) SetPublished(ctx context.Context, id int, published bool) (*Post, error) {
	updated, err := s.repo.SetPublished(ctx, id, published)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) ListAll(ctx context.Context) ([]Post, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ListPublished(ctx context.Context) ([]Post, error) {
	return s.repo.ListPublished(ctx)
}
