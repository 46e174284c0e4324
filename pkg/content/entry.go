package content

// Entry is a canned knowledge-base answer.
type Entry struct {
	TopicID        string
	Language       string
	AnswerText     string
	RelatedContent string
	Keywords       []string
}

// Page is a language-tagged static page.
type Page struct {
	Slug     string `json:"slug"`
	Language string `json:"language"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	PageType string `json:"page_type"`
}

const (
	PageTypeFAQ   = "faq"
	PageTypeGuide = "guide"
)
