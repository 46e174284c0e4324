package implementation

import (
	"context"
	"time"

	"gorm.io/gorm"

	"guruvela-be/internal/mapper"
	"guruvela-be/internal/metrics"
	"guruvela-be/internal/model"
	"guruvela-be/internal/repository/contract"
	"guruvela-be/internal/repository/specification"
	"guruvela-be/pkg/prediction"
)

// CutoffRepositoryImpl reads one cutoff table. JoSAA and CSAB rows share a
// model and differ only by table name.
type CutoffRepositoryImpl struct {
	db     *gorm.DB
	table  string
	mapper *mapper.CutoffMapper
}

func NewCutoffRepository(db *gorm.DB, table string) contract.CutoffRepository {
	return &CutoffRepositoryImpl{
		db:     db,
		table:  table,
		mapper: mapper.NewCutoffMapper(),
	}
}

func (r *CutoffRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CutoffRepositoryImpl) FindCutoffs(ctx context.Context, spec prediction.FilterSpec) ([]prediction.Record, error) {
	return r.FindAll(ctx, specification.ForFilterSpec(spec)...)
}

func (r *CutoffRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]prediction.Record, error) {
	start := time.Now()
	defer func() {
		metrics.PredictionQueryDuration.WithLabelValues(r.table).Observe(time.Since(start).Seconds())
	}()

	var rows []*model.CollegeCutoff
	query := r.applySpecifications(r.db.WithContext(ctx).Table(r.table), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToRecords(rows), nil
}

func (r *CutoffRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Table(r.table), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
