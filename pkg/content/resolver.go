package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrNotFound means the content exists in neither the requested nor the
// default language.
var ErrNotFound = errors.New("content not found")

// Lookup outcomes, also used as metric labels.
const (
	OutcomeResolved = "resolved"
	OutcomeFallback = "fallback"
	OutcomeNotFound = "not_found"
)

const (
	LanguageEnglish   = "en"
	LanguageHinglish  = "hi-en"
	LanguageTeluguish = "te-en"

	DefaultLanguage = LanguageEnglish

	// HelpSlug is the comprehensive FAQ every not-found answer points to.
	HelpSlug = "josaa-comprehensive-faq"
)

// Languages lists the supported language codes.
var Languages = []string{LanguageEnglish, LanguageHinglish, LanguageTeluguish}

// NormalizeLanguage collapses unknown codes to the default language.
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	for _, l := range Languages {
		if l == lang {
			return l
		}
	}
	return DefaultLanguage
}

// RelatedLink maps a related-content slug to its site path.
func RelatedLink(slug string) string {
	if slug == "" {
		return ""
	}
	if slug == HelpSlug {
		return "/faqs"
	}
	return "/pages/" + slug
}

// LookupFunc fetches one language-tagged item. A nil result with a nil
// error means the item is not present in that language.
type LookupFunc[T any] func(ctx context.Context, lang string) (*T, error)

// Resolution is the outcome of the language fallback chain.
type Resolution[T any] struct {
	Value             *T
	RequestedLanguage string
	Language          string
	Fallback          bool
}

// Outcome returns the metric label for r.
func (r Resolution[T]) Outcome() string {
	if r.Fallback {
		return OutcomeFallback
	}
	return OutcomeResolved
}

// Resolve runs lookup in the requested language and, when that yields
// nothing, once more in the default language. A default-language hit is
// marked as a fallback. A failure in the requested language is retried in
// the default language; a failure there is returned wrapped.
func Resolve[T any](ctx context.Context, lang, defaultLang string, lookup LookupFunc[T]) (Resolution[T], error) {
	res := Resolution[T]{RequestedLanguage: lang}

	v, err := lookup(ctx, lang)
	if err == nil && v != nil {
		res.Value, res.Language = v, lang
		return res, nil
	}
	if lang == defaultLang {
		if err != nil {
			return res, fmt.Errorf("lookup %s: %w", lang, err)
		}
		return res, ErrNotFound
	}

	v, err = lookup(ctx, defaultLang)
	if err != nil {
		return res, fmt.Errorf("lookup %s: %w", defaultLang, err)
	}
	if v == nil {
		return res, ErrNotFound
	}
	res.Value, res.Language, res.Fallback = v, defaultLang, true
	return res, nil
}

const (
	minTermLen = 2
	maxTermLen = 24
)

// Tokenize splits free text into distinct lower-case search terms of
// 2 to 24 characters.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	terms := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		n := len([]rune(f))
		if n < minTermLen || n > maxTermLen || seen[f] {
			continue
		}
		seen[f] = true
		terms = append(terms, f)
	}
	return terms
}
