package dialogue

import (
	"sync"

	"guruvela-be/pkg/content"
	"guruvela-be/pkg/query"
)

// DefaultExamType is what a session assumes until the user names an exam.
const DefaultExamType = query.ExamJEEMain

// Session carries the slots a conversation has accumulated so far. Only
// rank, category, state and exam type survive between turns.
type Session struct {
	ID       string
	Language string

	Rank     *int
	Category *query.Category
	State    string
	ExamType query.ExamType

	mu sync.Mutex
}

// NewSession returns an empty session for one conversation.
func NewSession(id, language string) *Session {
	s := &Session{ID: id, Language: content.NormalizeLanguage(language)}
	s.Reset()
	return s
}

// Lock serializes turns on this session.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the turn lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// Reset forgets every slot and restores the default exam type.
func (s *Session) Reset() {
	s.Rank = nil
	s.Category = nil
	s.State = ""
	s.ExamType = DefaultExamType
}

// IsEmpty reports whether the session holds no slot beyond the defaults.
func (s *Session) IsEmpty() bool {
	return s.Rank == nil && s.Category == nil && s.State == "" && s.ExamType == DefaultExamType
}

// Merge overwrites each stored slot with the turn's value when the turn
// supplied one. An empty extraction leaves the session untouched.
func (s *Session) Merge(slots query.SlotSet) {
	if slots.Rank != nil {
		r := *slots.Rank
		s.Rank = &r
	}
	if slots.Category != nil {
		c := *slots.Category
		s.Category = &c
	}
	if slots.State != nil {
		s.State = *slots.State
	}
	if slots.ExamType != nil {
		s.ExamType = *slots.ExamType
	}
}

// Effective is the slot set a turn acts on: this turn's values first, the
// session's memory second.
type Effective struct {
	Rank      *int
	Category  *query.Category
	State     string
	ExamType  query.ExamType
	Branch    string
	Institute string
}

// Effective resolves the values for the current turn.
func (s *Session) Effective(slots query.SlotSet) Effective {
	eff := Effective{
		Rank:     s.Rank,
		Category: s.Category,
		State:    s.State,
		ExamType: s.ExamType,
	}
	if slots.Rank != nil {
		eff.Rank = slots.Rank
	}
	if slots.Category != nil {
		eff.Category = slots.Category
	}
	if slots.State != nil {
		eff.State = *slots.State
	}
	if slots.ExamType != nil {
		eff.ExamType = *slots.ExamType
	}
	if eff.ExamType == "" {
		eff.ExamType = DefaultExamType
	}
	if slots.Branch != nil {
		eff.Branch = *slots.Branch
	}
	if slots.Institute != nil {
		eff.Institute = *slots.Institute
	}
	return eff
}
