package contract

import (
	"context"

	"guruvela-be/internal/repository/specification"
	"guruvela-be/pkg/content"
)

type ContentPageRepository interface {
	FindBySlug(ctx context.Context, slug, lang string) (*content.Page, error)
	ListByTypes(ctx context.Context, lang string, pageTypes ...string) ([]content.Page, error)
	Save(ctx context.Context, page *content.Page) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]content.Page, error)
}
