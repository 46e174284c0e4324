package dto

import "guruvela-be/pkg/content"

type ContentPageResponse struct {
	content.Page
	RequestedLanguage string `json:"requested_language"`
	DisplayLanguage   string `json:"display_language"`
	IsFallback        bool   `json:"is_fallback"`
}

type FAQItem struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	PageType string `json:"page_type"`
	Link     string `json:"link"`
}
