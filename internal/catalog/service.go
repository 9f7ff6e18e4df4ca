package catalog

import (
	"context"
	"database/sql"
	"errors"
)

const (
	DefaultDuration = 60
	DefaultCategory = "General"
)

type Catalog interface {
	Create(ctx context.Context, req CreateServiceRequest) (*Service, error)
	Update(ctx context.Context, id int, req UpdateServiceRequest) (*Service, error)
	Delete(ctx context.Context, id int) error
	GetBySlug(ctx context.Context, slug string) (*Service, error)
	ListAll(ctx context.Context) ([]Service, error)
	ListActive(ctx context.Context) ([]Service, error)
	FindOrCreateByName(ctx context.Context, name string) (*Service, error)
}

type catalog struct {
	repo Repository
}

func NewCatalog(repo Repository) Catalog {
	return &catalog{repo: repo}
}

func (c *catalog) Create(ctx context.Context, req CreateServiceRequest) (*Service, error) {
	return c.repo.Create(ctx, &Service{
		Name:            req.Name,
		Slug:            Slugify(req.Name),
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Image:           req.Image,
		Duration:        req.Duration,
		Price:           req.Price,
		Category:        req.Category,
		Active:          req.Active,
	})
}

func (c *catalog) Update(ctx context.Context, id int, req UpdateServiceRequest) (*Service, error) {
	if _, err := c.repo.GetByID(ctx, id); err != nil {
		return nil, ErrServiceNotFound
	}

	return c.repo.Update(ctx, id, &Service{
		Name:            req.Name,
		Slug:            Slugify(req.Name),
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Image:           req.Image,
		Duration:        req.Duration,
		Price:           req.Price,
		Category:        req.Category,
		Active:          req.Active,
	})
}

func (c *catalog) Delete(ctx context.Context, id int) error {
	return c.repo.Delete(ctx, id)
}

func (c *catalog) GetBySlug(ctx context.Context, slug string) (*Service, error) {
	svc, err := c.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (c *catalog) ListAll(ctx context.Context) ([]Service, error) {
	return c.repo.ListAll(ctx)
}

func (c *catalog) ListActive(ctx context.Context) ([]Service, error) {
	return c.repo.ListActive(ctx)
}

// FindOrCreateByName resolves a free-text service name from the booking form.
// Unknown names get a minimal active record so the booking can still land.
func (c *catalog) FindOrCreateByName(ctx context.Context, name string) (*Service, error) {
	svc, err := c.repo.GetByName(ctx, name)
	if err == nil {
		return svc, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return c.repo.Create(ctx, &Service{
		Name:        name,
		Slug:        Slugify(name),
		Description: name,
		Duration:    DefaultDuration,
		Category:    DefaultCategory,
		Active:      true,
	})
}
