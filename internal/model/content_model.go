package model

import (
	"time"

	"github.com/lib/pq"
)

type FixedResponse struct {
	Id               int64          `gorm:"primaryKey"`
	TopicId          string         `gorm:"type:varchar(128);not null;index"`
	Language         string         `gorm:"type:varchar(8);not null;index"`
	AnswerText       string         `gorm:"type:text;not null"`
	RelatedContent   string         `gorm:"type:varchar(255)"`
	QuestionKeywords pq.StringArray `gorm:"type:text[]"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (FixedResponse) TableName() string {
	return "fixed_responses"
}

type ContentPage struct {
	Id        int64     `gorm:"primaryKey"`
	Slug      string    `gorm:"type:varchar(255);not null;index:idx_content_page_slug_lang"`
	Language  string    `gorm:"type:varchar(8);not null;index:idx_content_page_slug_lang"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	PageType  string    `gorm:"type:varchar(32);index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ContentPage) TableName() string {
	return "content_pages"
}
