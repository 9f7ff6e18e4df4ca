package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, svc *Service) (*Service, error)
	GetByID(ctx context.Context, id int) (*Service, error)
	GetByName(ctx context.Context, name string) (*Service, error)
	GetBySlug(ctx context.Context, slug string) (*Service, error)
	ListAll(ctx context.Context) ([]Service, error)
	ListActive(ctx context.Context) ([]Service, error)
	Update(ctx context.Context, id int, svc *Service) (*Service, error)
	Delete(ctx context.Context, id int) error
}
