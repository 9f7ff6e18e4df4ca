package blog

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrPostNotFound = errors.New("post not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const postColumns = "id, title, slug, excerpt, content, image, published, created_at"

func (r *repository) Create(ctx context.Context, p *Post) (*Post, error) {
	query := `
		INSERT INTO posts (title, slug, excerpt, content, image, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + postColumns

	var created Post
	err := r.db.GetContext(ctx, &created, query,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Image, p.Published)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Post, error) {
	var p Post
	err := r.db.GetContext(ctx, &p, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	var p Post
	err := r.db.GetContext(ctx, &p, `SELECT `+postColumns+` FROM posts WHERE slug = $1`, slug)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := r.db.SelectContext(ctx, &posts, `SELECT `+postColumns+` FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *repository) ListPublished(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := r.db.SelectContext(ctx, &posts, `SELECT `+postColumns+` FROM posts WHERE published = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *repository) Update(ctx context.Context, id int, p *Post) (*Post, error) {
	query := `
		UPDATE posts
		SET title = $1, slug = $2, excerpt = $3, content = $4, image = $5, published = $6
		WHERE id = $7
		RETURNING ` + postColumns

	var updated Post
	err := r.db.GetContext(ctx, &updated, query,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Image, p.Published, id)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) SetPublished(ctx context.Context, id int, published bool) (*Post, error) {
	query := `
		UPDATE posts
		SET published = $1
		WHERE id = $2
		RETURNING ` + postColumns

	var updated Post
	err := r.db.GetContext(ctx, &updated, query, published, id)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}
