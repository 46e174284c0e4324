package mapper

import (
	"guruvela-be/internal/model"
	"guruvela-be/pkg/prediction"
)

type CutoffMapper struct{}

func NewCutoffMapper() *CutoffMapper {
	return &CutoffMapper{}
}

func (m *CutoffMapper) ToRecord(c *model.CollegeCutoff) prediction.Record {
	return prediction.Record{
		InstituteName: c.InstituteName,
		BranchName:    c.BranchName,
		Quota:         c.Quota,
		SeatType:      c.SeatType,
		Gender:        c.Gender,
		OpeningRank:   c.OpeningRank,
		ClosingRank:   c.ClosingRank,
		Year:          c.Year,
		RoundNo:       c.RoundNo,
		IsPreparatory: c.IsPreparatory,
		ExamType:      c.ExamType,
		State:         c.State,
	}
}

func (m *CutoffMapper) ToRecords(rows []*model.CollegeCutoff) []prediction.Record {
	records := make([]prediction.Record, len(rows))
	for i, r := range rows {
		records[i] = m.ToRecord(r)
	}
	return records
}
