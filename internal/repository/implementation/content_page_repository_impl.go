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

type ContentPageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewContentPageRepository(db *gorm.DB) contract.ContentPageRepository {
	return &ContentPageRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ContentPageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContentPageRepositoryImpl) FindBySlug(ctx context.Context, slug, lang string) (*content.Page, error) {
	var m model.ContentPage
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.Filter("slug", slug),
		specification.ByLanguage(lang),
	)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToPage(&m), nil
}

func (r *ContentPageRepositoryImpl) ListByTypes(ctx context.Context, lang string, pageTypes ...string) ([]content.Page, error) {
	return r.FindAll(ctx,
		specification.ByLanguage(lang),
		specification.ByPageTypes{Types: pageTypes},
		specification.OrderBy{Field: "title"},
	)
}

// Save replaces the page stored for the same slug and language.
func (r *ContentPageRepositoryImpl) Save(ctx context.Context, page *content.Page) error {
	m := r.mapper.ToPageModel(page)
	var existing model.ContentPage
	err := r.db.WithContext(ctx).
		Where("slug = ? AND language = ?", page.Slug, page.Language).
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

func (r *ContentPageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]content.Page, error) {
	var models []*model.ContentPage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToPages(models), nil
}
