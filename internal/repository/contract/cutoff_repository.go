package contract

import (
	"context"

	"guruvela-be/internal/repository/specification"
	"guruvela-be/pkg/prediction"
)

type CutoffRepository interface {
	FindCutoffs(ctx context.Context, spec prediction.FilterSpec) ([]prediction.Record, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]prediction.Record, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
