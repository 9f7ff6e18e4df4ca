package catalog

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrServiceNotFound = errors.New("service not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const serviceColumns = "id, name, slug, description, long_description, image, duration, price, category, active, created_at"

func (r *repository) Create(ctx context.Context, svc *Service) (*Service, error) {
	query := `
		INSERT INTO services (name, slug, description, long_description, image, duration, price, category, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + serviceColumns

	var created Service
	err := r.db.GetContext(ctx, &created, query,
		svc.Name, svc.Slug, svc.Description, svc.LongDescription, svc.Image,
		svc.Duration, svc.Price, svc.Category, svc.Active)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Service, error) {
	var svc Service
	err := r.db.GetContext(ctx, &svc, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Service, error) {
	var svc Service
	err := r.db.GetContext(ctx, &svc, `SELECT `+serviceColumns+` FROM services WHERE name = $1`, name)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Service, error) {
	var svc Service
	err := r.db.GetContext(ctx, &svc, `SELECT `+serviceColumns+` FROM services WHERE slug = $1`, slug)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Service, error) {
	var services []Service
	err := r.db.SelectContext(ctx, &services, `SELECT `+serviceColumns+` FROM services ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *repository) ListActive(ctx context.Context) ([]Service, error) {
	var services []Service
	err := r.db.SelectContext(ctx, &services, `SELECT `+serviceColumns+` FROM services WHERE active = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *repository) Update(ctx context.Context, id int, svc *Service) (*Service, error) {
	query := `
		UPDATE services
		SET name = $1, slug = $2, description = $3, long_description = $4, image = $5,
		    duration = $6, price = $7, category = $8, active = $9
		WHERE id = $10
		RETURNING ` + serviceColumns

	var updated Service
	err := r.db.GetContext(ctx, &updated, query,
		svc.Name, svc.Slug, svc.Description, svc.LongDescription, svc.Image,
		svc.Duration, svc.Price, svc.Category, svc.Active, id)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
