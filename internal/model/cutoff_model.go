package model

const (
	CollegeCutoffTable = "college_cutoffs"
	CsabCutoffTable    = "csab_college_cutoffs"
)

// CollegeCutoff is one opening/closing rank row. CSAB rows share the shape
// but leave ExamType and IsPreparatory empty.
type CollegeCutoff struct {
	Id            int64  `gorm:"primaryKey"`
	InstituteName string `gorm:"type:text;not null"`
	BranchName    string `gorm:"type:text;not null"`
	Quota         string `gorm:"type:varchar(8);index"`
	SeatType      string `gorm:"type:varchar(32);index"`
	Gender        string `gorm:"type:varchar(64)"`
	OpeningRank   int
	ClosingRank   int    `gorm:"index"`
	Year          int    `gorm:"index:idx_cutoff_year_round"`
	RoundNo       int    `gorm:"index:idx_cutoff_year_round"`
	IsPreparatory bool   `gorm:"default:false"`
	ExamType      string `gorm:"type:varchar(32)"`
	State         string `gorm:"type:varchar(64)"`
}

func (CollegeCutoff) TableName() string {
	return CollegeCutoffTable
}
