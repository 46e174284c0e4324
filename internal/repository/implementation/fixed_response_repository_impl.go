package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"guruvela-be/internal/mapper"
	"guruvela-be/internal/model"
	"guruvela-be/internal/repository/contract"
	"guruvela-be/internal/repository/specification"
	"guruvela-be/pkg/content"
)

type FixedResponseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewFixedResponseRepository(db *gorm.DB) contract.FixedResponseRepository {
	return &FixedResponseRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *FixedResponseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FixedResponseRepositoryImpl) ByTopic(ctx context.Context, topicID, lang string) (*content.Entry, error) {
	return r.FindOne(ctx,
		specification.Filter("topic_id", topicID),
		specification.ByLanguage(lang),
	)
}

// ByKeywords returns the first entry whose keywords overlap terms.
func (r *FixedResponseRepositoryImpl) ByKeywords(ctx context.Context, terms []string, lang string) (*content.Entry, error) {
	if len(terms) == 0 {
		return nil, nil
	}
	return r.FindOne(ctx,
		specification.KeywordsOverlap{Terms: terms},
		specification.ByLanguage(lang),
		specification.OrderBy{Field: "id"},
	)
}

// Save replaces the entry stored for the same topic and language.
func (r *FixedResponseRepositoryImpl) Save(ctx context.Context, entry *content.Entry) error {
	m := r.mapper.ToFixedResponseModel(entry)
	var existing model.FixedResponse
	err := r.db.WithContext(ctx).
		Where("topic_id = ? AND language = ?", entry.TopicID, entry.Language).
		First(&existing).Error
	switch {
	case err == nil:
		m.Id = existing.Id
		m.CreatedAt = existing.CreatedAt
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *FixedResponseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*content.Entry, error) {
	var m model.FixedResponse
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntry(&m), nil
}
