package pages

import "context"

type Repository interface {
	GetByPage(ctx context.Context, page string) (*PageContent, error)
	Upsert(ctx context.Context, page string, content []byte) (*PageContent, error)
}
