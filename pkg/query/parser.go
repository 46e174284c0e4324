package query

import (
	"regexp"
	"strconv"
	"strings"
)

// SlotSet holds what a single message said about an admission query.
// A nil field means the message did not mention it.
type SlotSet struct {
	Rank      *int
	Category  *Category
	Branch    *string
	Institute *string
	State     *string
	ExamType  *ExamType

	// IsCollegeQuery is set when the text looks like a college lookup even
	// if the slots are not complete yet.
	IsCollegeQuery bool
}

// IsEmpty reports whether no slot was extracted.
func (s SlotSet) IsEmpty() bool {
	return s.Rank == nil && s.Category == nil && s.Branch == nil &&
		s.Institute == nil && s.State == nil && s.ExamType == nil
}

// Rank patterns in priority order. Explicit phrasing wins over a bare number
// so a year or a count elsewhere in the sentence cannot shadow the rank.
var rankPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\brank(?:\s*is)?\s*#?(\d{1,4})\b`),
	regexp.MustCompile(`#?(\d{1,4})\s*rank\b`),
	regexp.MustCompile(`\b(\d{3,})\b`),
}

// "IT" only counts in upper case so the pronoun "it" is not a branch. An
// institute is the IIIT/IIT/NIT token plus at most two title-case words.
var (
	branchPattern    = regexp.MustCompile(`\b(?:(?i:CSE|Computer Science|ECE|Electrical|Electronics|Mechanical|Civil|Information Technology)|IT)\b`)
	institutePattern = regexp.MustCompile(`\b(?:[Aa]t|[Ii]n|[Ff]or)\s+((?:IIIT|IIT|NIT)(?:\s+[A-Z][a-z]+){0,2})\b`)
	collegePattern   = regexp.MustCompile(`\bcollege\b`)

	advancedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bjee\s*advanced\b`),
		regexp.MustCompile(`\bjee\s*advance\b`),
		regexp.MustCompile(`\bjee[-\s]?adv\b`),
		regexp.MustCompile(`\bjeeadv(?:ance|anced)?\b`),
	}
	mainPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bjee\s*mains?\b`),
		regexp.MustCompile(`\bjee[-\s]?main\b`),
	}
)

// Parse extracts admission slots from free text. It never fails; anything
// it cannot recognise is left nil.
func Parse(text string) SlotSet {
	lower := strings.ToLower(text)

	var slots SlotSet
	slots.Rank = parseRank(lower)

	if c, ok := NormalizeCategory(lower); ok {
		slots.Category = &c
	}

	if m := branchPattern.FindString(text); m != "" {
		if b, ok := NormalizeBranch(m); ok {
			slots.Branch = &b
		}
	}

	if m := institutePattern.FindStringSubmatch(text); m != nil {
		if inst := strings.TrimSpace(m[1]); inst != "" {
			slots.Institute = &inst
		}
	}

	if st, ok := NormalizeState(lower); ok {
		slots.State = &st
	}

	if e, ok := parseExamType(lower); ok {
		slots.ExamType = &e
	}

	slots.IsCollegeQuery = slots.Rank != nil || slots.Branch != nil ||
		slots.Institute != nil || collegePattern.MatchString(lower)

	return slots
}

func parseRank(lower string) *int {
	for _, p := range rankPatterns {
		m := p.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		return &n
	}
	return nil
}

// parseExamType does not default; the dialogue session owns the default.
func parseExamType(lower string) (ExamType, bool) {
	for _, p := range advancedPatterns {
		if p.MatchString(lower) {
			return ExamJEEAdvanced, true
		}
	}
	for _, p := range mainPatterns {
		if p.MatchString(lower) {
			return ExamJEEMain, true
		}
	}
	return "", false
}
