package prediction

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"guruvela-be/pkg/query"
)

// ErrInvalidRank is returned before any query is built when the rank is
// missing, non-numeric or not positive.
var ErrInvalidRank = errors.New("invalid rank")

const (
	QuotaAllIndia   = "AI"
	QuotaHomeState  = "HS"
	QuotaOtherState = "OS"
	QuotaGoa        = "GO"

	GenderNeutral = "Gender-Neutral"
	GenderFemale  = "Female-only (including Supernumerary)"

	ExcludedBranchFamily = "architecture"
)

// QuotaMode says how the quota filter compares the record's state with the
// candidate's state.
type QuotaMode int

const (
	QuotaNone QuotaMode = iota
	QuotaLiteral
	QuotaHome
	QuotaOther
)

// Dataset pins a versioned cutoff table.
type Dataset struct {
	Year  int
	Round int

	// CSAB tables carry no exam type and no preparatory flag.
	IgnoreExamType    bool
	IgnorePreparatory bool

	Limit         int
	ExcludeBranch string
}

// Request is the resolved input of a prediction, from a form or a dialogue.
type Request struct {
	Rank        int
	ExamType    query.ExamType
	Category    query.Category
	Quota       string
	Gender      string
	Preparatory bool
	State       string

	// Branch and Institute narrow a single lookup by name fragment.
	Branch    string
	Institute string
}

// FilterSpec is a storage-neutral description of a cutoff lookup.
type FilterSpec struct {
	Year     int
	Round    int
	ExamType string
	SeatType string

	Quota     string
	QuotaMode QuotaMode
	State     string

	Gender      string
	Preparatory *bool

	MinClosingRank int
	Limit          int
	ExcludeBranch  string

	BranchLike    string
	InstituteLike string
}

// Record is one cutoff row.
type Record struct {
	InstituteName string `json:"institute_name"`
	BranchName    string `json:"branch_name"`
	Quota         string `json:"quota"`
	SeatType      string `json:"seat_type"`
	Gender        string `json:"gender"`
	OpeningRank   int    `json:"opening_rank"`
	ClosingRank   int    `json:"closing_rank"`
	Year          int    `json:"year"`
	RoundNo       int    `json:"round_no"`
	IsPreparatory bool   `json:"is_preparatory"`
	ExamType      string `json:"exam_type,omitempty"`
	State         string `json:"state,omitempty"`
}

// ParseRank converts user input into a positive rank.
func ParseRank(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidRank, raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d is not positive", ErrInvalidRank, n)
	}
	return n, nil
}

// BuildQuery turns a request into a FilterSpec against the given dataset.
func BuildQuery(req Request, ds Dataset) (FilterSpec, error) {
	if req.Rank <= 0 {
		return FilterSpec{}, fmt.Errorf("%w: %d is not positive", ErrInvalidRank, req.Rank)
	}

	spec := FilterSpec{
		Year:           ds.Year,
		Round:          ds.Round,
		SeatType:       string(req.Category),
		Gender:         req.Gender,
		MinClosingRank: req.Rank,
		Limit:          ds.Limit,
		ExcludeBranch:  ds.ExcludeBranch,
		BranchLike:     req.Branch,
		InstituteLike:  req.Institute,
	}

	if !ds.IgnoreExamType {
		spec.ExamType = string(req.ExamType)
	}

	if !ds.IgnorePreparatory {
		prep := req.Preparatory
		spec.Preparatory = &prep
	}

	quota := req.Quota
	if req.ExamType == query.ExamJEEAdvanced && !ds.IgnoreExamType {
		quota = QuotaAllIndia
	}

	switch {
	case req.State != "" && quota == QuotaHomeState:
		spec.Quota, spec.QuotaMode, spec.State = QuotaHomeState, QuotaHome, req.State
	case req.State != "" && quota == QuotaOtherState:
		spec.Quota, spec.QuotaMode, spec.State = QuotaOtherState, QuotaOther, req.State
	case quota != "":
		spec.Quota, spec.QuotaMode = quota, QuotaLiteral
	default:
		spec.QuotaMode = QuotaNone
	}

	return spec, nil
}

// NeedsState reports whether the quota can only be resolved with the
// candidate's home state.
func NeedsState(quota string, exam query.ExamType) bool {
	if exam == query.ExamJEEAdvanced {
		return false
	}
	return quota == QuotaHomeState || quota == QuotaOtherState
}

// Matches applies the filter to an in-memory record. Stores that cannot
// express every filter use it to post-filter rows.
func (f FilterSpec) Matches(r Record) bool {
	if f.Year != 0 && r.Year != f.Year {
		return false
	}
	if f.Round != 0 && r.RoundNo != f.Round {
		return false
	}
	if f.ExamType != "" && r.ExamType != f.ExamType {
		return false
	}
	if f.SeatType != "" && r.SeatType != f.SeatType {
		return false
	}
	switch f.QuotaMode {
	case QuotaLiteral:
		if r.Quota != f.Quota {
			return false
		}
	case QuotaHome:
		if r.Quota != f.Quota || r.State != f.State {
			return false
		}
	case QuotaOther:
		if r.Quota != f.Quota || r.State == f.State {
			return false
		}
	}
	if f.Gender != "" && r.Gender != f.Gender {
		return false
	}
	if f.Preparatory != nil && r.IsPreparatory != *f.Preparatory {
		return false
	}
	if r.ClosingRank < f.MinClosingRank {
		return false
	}
	if f.ExcludeBranch != "" && containsFold(r.BranchName, f.ExcludeBranch) {
		return false
	}
	if f.BranchLike != "" && !containsFold(r.BranchName, f.BranchLike) {
		return false
	}
	if f.InstituteLike != "" && !containsFold(r.InstituteName, f.InstituteLike) {
		return false
	}
	return true
}

// Apply keeps the matching records, sorts them by closing rank and
// caps them at the filter limit.
func (f FilterSpec) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ClosingRank < out[j].ClosingRank
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
