package blog

import "context"

type Repository interface {
	Create(ctx context.Context, p *Post) (*Post, error)
	GetByID(ctx context.Context, id int) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	ListAll(ctx context.Context) ([]Post, error)
	ListPublished(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, id int, p *Post) (*Post, error)
	SetPublished(ctx context.Context, id int, published bool) (*Post, error)
	Delete(ctx context.Context, id int) error
}
