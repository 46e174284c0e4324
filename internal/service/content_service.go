package service

import (
	"context"
	"errors"

	"guruvela-be/internal/dto"
	"guruvela-be/internal/metrics"
	"guruvela-be/internal/pkg/logger"
	"guruvela-be/internal/repository/contract"
	"guruvela-be/pkg/content"
)

// PageCache is the optional read-through cache in front of content pages.
type PageCache interface {
	GetPage(ctx context.Context, slug, lang string) (*content.Page, error)
	SetPage(ctx context.Context, page *content.Page) error
}

type IContentService interface {
	GetPage(ctx context.Context, slug, lang string) (*dto.ContentPageResponse, error)
	ListFAQs(ctx context.Context, lang string) ([]dto.FAQItem, error)
}

type contentService struct {
	pages       contract.ContentPageRepository
	cache       PageCache
	defaultLang string
	log         logger.ILogger
}

func NewContentService(pages contract.ContentPageRepository, cache PageCache, defaultLang string, log logger.ILogger) IContentService {
	if defaultLang == "" {
		defaultLang = content.DefaultLanguage
	}
	return &contentService{
		pages:       pages,
		cache:       cache,
		defaultLang: defaultLang,
		log:         log,
	}
}

// GetPage resolves a page in the requested language, falling back to the
// default language. A page missing in both yields content.ErrNotFound.
func (s *contentService) GetPage(ctx context.Context, slug, lang string) (*dto.ContentPageResponse, error) {
	lang = content.NormalizeLanguage(lang)

	res, err := content.Resolve(ctx, lang, s.defaultLang, func(ctx context.Context, l string) (*content.Page, error) {
		return s.lookup(ctx, slug, l)
	})
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			metrics.ContentLookups.WithLabelValues(content.OutcomeNotFound).Inc()
		} else {
			s.log.Error("content", "page lookup failed", map[string]interface{}{
				"error": err.Error(),
				"slug":  slug,
			})
		}
		return nil, err
	}

	metrics.ContentLookups.WithLabelValues(res.Outcome()).Inc()
	if res.Fallback {
		s.log.Warn("content", "page served in default language", map[string]interface{}{
			"slug":               slug,
			"requested_language": lang,
		})
	}

	return &dto.ContentPageResponse{
		Page:              *res.Value,
		RequestedLanguage: res.RequestedLanguage,
		DisplayLanguage:   res.Language,
		IsFallback:        res.Fallback,
	}, nil
}

func (s *contentService) lookup(ctx context.Context, slug, lang string) (*content.Page, error) {
	if s.cache != nil {
		page, err := s.cache.GetPage(ctx, slug, lang)
		if err != nil {
			s.log.Warn("content", "page cache read failed", map[string]interface{}{"error": err.Error()})
		} else if page != nil {
			return page, nil
		}
	}

	page, err := s.pages.FindBySlug(ctx, slug, lang)
	if err != nil || page == nil {
		return page, err
	}

	if s.cache != nil {
		if err := s.cache.SetPage(ctx, page); err != nil {
			s.log.Warn("content", "page cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}
	return page, nil
}

func (s *contentService) ListFAQs(ctx context.Context, lang string) ([]dto.FAQItem, error) {
	pages, err := s.pages.ListByTypes(ctx, content.NormalizeLanguage(lang), content.PageTypeFAQ, content.PageTypeGuide)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FAQItem, 0, len(pages))
	for _, p := range pages {
		items = append(items, dto.FAQItem{
			Slug:     p.Slug,
			Title:    p.Title,
			PageType: p.PageType,
			Link:     "/pages/" + p.Slug,
		})
	}
	return items, nil
}
