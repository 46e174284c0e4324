package specification

import (
	"fmt"

	"gorm.io/gorm"

	"guruvela-be/pkg/prediction"
)

// ClosingRankAtLeast keeps seats that closed at or after the candidate's rank.
type ClosingRankAtLeast struct {
	Rank int
}

func (s ClosingRankAtLeast) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("closing_rank >= ?", s.Rank)
}

// NotEqual is the negated FilterBy.
type NotEqual struct {
	Field string
	Value interface{}
}

func (s NotEqual) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s <> ?", s.Field), s.Value)
}

// Like matches a case-insensitive fragment.
type Like struct {
	Field    string
	Fragment string
}

func (s Like) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s ILIKE ?", s.Field), "%"+s.Fragment+"%")
}

// NotLike excludes rows containing a case-insensitive fragment.
type NotLike struct {
	Field    string
	Fragment string
}

func (s NotLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s NOT ILIKE ?", s.Field), "%"+s.Fragment+"%")
}

// ForFilterSpec translates a prediction filter into table specifications,
// ordered by closing rank ascending.
func ForFilterSpec(f prediction.FilterSpec) []Specification {
	specs := []Specification{
		Filter("year", f.Year),
		Filter("round_no", f.Round),
	}
	if f.ExamType != "" {
		specs = append(specs, Filter("exam_type", f.ExamType))
	}
	if f.SeatType != "" {
		specs = append(specs, Filter("seat_type", f.SeatType))
	}

	switch f.QuotaMode {
	case prediction.QuotaLiteral:
		specs = append(specs, Filter("quota", f.Quota))
	case prediction.QuotaHome:
		specs = append(specs, Filter("quota", f.Quota), Filter("state", f.State))
	case prediction.QuotaOther:
		specs = append(specs, Filter("quota", f.Quota), NotEqual{Field: "state", Value: f.State})
	}

	if f.Gender != "" {
		specs = append(specs, Filter("gender", f.Gender))
	}
	if f.Preparatory != nil {
		specs = append(specs, Filter("is_preparatory", *f.Preparatory))
	}

	specs = append(specs, ClosingRankAtLeast{Rank: f.MinClosingRank})

	if f.ExcludeBranch != "" {
		specs = append(specs, NotLike{Field: "branch_name", Fragment: f.ExcludeBranch})
	}
	if f.BranchLike != "" {
		specs = append(specs, Like{Field: "branch_name", Fragment: f.BranchLike})
	}
	if f.InstituteLike != "" {
		specs = append(specs, Like{Field: "institute_name", Fragment: f.InstituteLike})
	}

	specs = append(specs, OrderBy{Field: "closing_rank"})
	if f.Limit > 0 {
		specs = append(specs, Pagination{Limit: f.Limit})
	}
	return specs
}
