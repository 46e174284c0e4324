package mapper

import (
	"github.com/lib/pq"

	"guruvela-be/internal/model"
	"guruvela-be/pkg/content"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) ToEntry(r *model.FixedResponse) *content.Entry {
	if r == nil {
		return nil
	}
	return &content.Entry{
		TopicID:        r.TopicId,
		Language:       r.Language,
		AnswerText:     r.AnswerText,
		RelatedContent: r.RelatedContent,
		Keywords:       []string(r.QuestionKeywords),
	}
}

func (m *ContentMapper) ToPage(p *model.ContentPage) *content.Page {
	if p == nil {
		return nil
	}
	return &content.Page{
		Slug:     p.Slug,
		Language: p.Language,
		Title:    p.Title,
		Content:  p.Content,
		PageType: p.PageType,
	}
}

func (m *ContentMapper) ToPages(pages []*model.ContentPage) []content.Page {
	out := make([]content.Page, 0, len(pages))
	for _, p := range pages {
		out = append(out, *m.ToPage(p))
	}
	return out
}

func (m *ContentMapper) ToFixedResponseModel(e *content.Entry) *model.FixedResponse {
	if e == nil {
		return nil
	}
	return &model.FixedResponse{
		TopicId:          e.TopicID,
		Language:         e.Language,
		AnswerText:       e.AnswerText,
		RelatedContent:   e.RelatedContent,
		QuestionKeywords: pq.StringArray(e.Keywords),
	}
}

func (m *ContentMapper) ToPageModel(p *content.Page) *model.ContentPage {
	if p == nil {
		return nil
	}
	return &model.ContentPage{
		Slug:     p.Slug,
		Language: p.Language,
		Title:    p.Title,
		Content:  p.Content,
		PageType: p.PageType,
	}
}
