package pages

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByPage(ctx context.Context, page string) (*PageContent, error) {
	var pc PageContent
	err := r.db.GetContext(ctx, &pc,
		`SELECT id, page, content, updated_at FROM page_contents WHERE page = $1`, page)
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *repository) Upsert(ctx context.Context, page string, content []byte) (*PageContent, error) {
	query := `
		INSERT INTO page_contents (page, content, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (page)
		DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()
		RETURNING id, page, content, updated_at
	`

	var pc PageContent
	err := r.db.GetContext(ctx, &pc, query, page, content)
	if err != nil {
		return nil, err
	}
	return &pc, nil
}
