package contract

import (
	"context"

	"guruvela-be/internal/repository/specification"
	"guruvela-be/pkg/content"
)

type FixedResponseRepository interface {
	ByTopic(ctx context.Context, topicID, lang string) (*content.Entry, error)
	ByKeywords(ctx context.Context, terms []string, lang string) (*content.Entry, error)
	Save(ctx context.Context, entry *content.Entry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*content.Entry, error)
}
