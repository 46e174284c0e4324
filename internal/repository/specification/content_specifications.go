package specification

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// KeywordsOverlap matches rows whose question_keywords share at least one
// term with Terms.
type KeywordsOverlap struct {
	Terms []string
}

func (s KeywordsOverlap) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("question_keywords && ?", pq.Array(s.Terms))
}

type ByPageTypes struct {
	Types []string
}

func (s ByPageTypes) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("page_type IN ?", s.Types)
}

func ByLanguage(lang string) Specification {
	return Filter("language", lang)
}
