package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guruvela-be/pkg/query"
)

var josaa = Dataset{Year: 2024, Round: 6, Limit: 100, ExcludeBranch: ExcludedBranchFamily}

var csab = Dataset{Year: 2024, Round: 2, Limit: 100, IgnoreExamType: true, IgnorePreparatory: true}

func TestParseRank(t *testing.T) {
	n, err := ParseRank(" 1500 ")
	require.NoError(t, err)
	assert.Equal(t, 1500, n)

	for _, raw := range []string{"", "abc", "0", "-4", "12x"} {
		_, err := ParseRank(raw)
		assert.ErrorIs(t, err, ErrInvalidRank, raw)
	}
}

func TestBuildQueryRejectsNonPositiveRank(t *testing.T) {
	_, err := BuildQuery(Request{Rank: 0, Category: query.CategoryOpen}, josaa)
	assert.ErrorIs(t, err, ErrInvalidRank)

	_, err = BuildQuery(Request{Rank: -10, Category: query.CategoryOpen}, josaa)
	assert.ErrorIs(t, err, ErrInvalidRank)
}

func TestBuildQueryQuotaModes(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantQuota string
		wantMode  QuotaMode
		wantState string
	}{
		{
			name:      "home state with state",
			req:       Request{Rank: 10, ExamType: query.ExamJEEMain, Quota: QuotaHomeState, State: "Karnataka"},
			wantQuota: QuotaHomeState, wantMode: QuotaHome, wantState: "Karnataka",
		},
		{
			name:      "other state with state",
			req:       Request{Rank: 10, ExamType: query.ExamJEEMain, Quota: QuotaOtherState, State: "Kerala"},
			wantQuota: QuotaOtherState, wantMode: QuotaOther, wantState: "Kerala",
		},
		{
			name:      "home state without state is literal",
			req:       Request{Rank: 10, ExamType: query.ExamJEEMain, Quota: QuotaHomeState},
			wantQuota: QuotaHomeState, wantMode: QuotaLiteral,
		},
		{
			name:      "all india",
			req:       Request{Rank: 10, ExamType: query.ExamJEEMain, Quota: QuotaAllIndia, State: "Goa"},
			wantQuota: QuotaAllIndia, wantMode: QuotaLiteral,
		},
		{
			name:      "advanced forces all india",
			req:       Request{Rank: 10, ExamType: query.ExamJEEAdvanced, Quota: QuotaHomeState, State: "Goa"},
			wantQuota: QuotaAllIndia, wantMode: QuotaLiteral,
		},
		{
			name:     "no quota",
			req:      Request{Rank: 10, ExamType: query.ExamJEEMain},
			wantMode: QuotaNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := BuildQuery(tt.req, josaa)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuota, spec.Quota)
			assert.Equal(t, tt.wantMode, spec.QuotaMode)
			assert.Equal(t, tt.wantState, spec.State)
		})
	}
}

func TestBuildQueryCopiesDatasetAndFilters(t *testing.T) {
	spec, err := BuildQuery(Request{
		Rank:        4231,
		ExamType:    query.ExamJEEMain,
		Category:    query.CategoryOBCNCL,
		Gender:      GenderFemale,
		Preparatory: true,
	}, josaa)
	require.NoError(t, err)

	assert.Equal(t, 2024, spec.Year)
	assert.Equal(t, 6, spec.Round)
	assert.Equal(t, "JEE Main", spec.ExamType)
	assert.Equal(t, "OBC-NCL", spec.SeatType)
	assert.Equal(t, GenderFemale, spec.Gender)
	require.NotNil(t, spec.Preparatory)
	assert.True(t, *spec.Preparatory)
	assert.Equal(t, 4231, spec.MinClosingRank)
	assert.Equal(t, 100, spec.Limit)
	assert.Equal(t, "architecture", spec.ExcludeBranch)
}

func TestBuildQueryCSABSkipsExamAndPreparatory(t *testing.T) {
	spec, err := BuildQuery(Request{
		Rank:     800,
		ExamType: query.ExamJEEAdvanced,
		Category: query.CategorySC,
		Quota:    QuotaGoa,
	}, csab)
	require.NoError(t, err)

	assert.Empty(t, spec.ExamType)
	assert.Nil(t, spec.Preparatory)
	assert.Equal(t, QuotaGoa, spec.Quota)
	assert.Equal(t, QuotaLiteral, spec.QuotaMode)
	assert.Empty(t, spec.ExcludeBranch)
}

func TestApplyClosingRankFloor(t *testing.T) {
	records := []Record{
		{InstituteName: "NIT A", BranchName: "CSE", ClosingRank: 900},
		{InstituteName: "NIT B", BranchName: "ECE", ClosingRank: 1000},
		{InstituteName: "NIT C", BranchName: "Civil", ClosingRank: 5000},
		{InstituteName: "NIT D", BranchName: "Architecture", ClosingRank: 1200},
		{InstituteName: "NIT E", BranchName: "Mechanical", ClosingRank: 1100},
	}
	spec := FilterSpec{MinClosingRank: 1000, Limit: 3, ExcludeBranch: ExcludedBranchFamily}

	got := spec.Apply(records)

	require.Len(t, got, 3)
	for _, r := range got {
		assert.GreaterOrEqual(t, r.ClosingRank, 1000)
		assert.NotContains(t, r.BranchName, "Architecture")
	}
	assert.Equal(t, "NIT B", got[0].InstituteName)
	assert.Equal(t, "NIT E", got[1].InstituteName)
	assert.Equal(t, "NIT C", got[2].InstituteName)
}

func TestMatchesQuotaState(t *testing.T) {
	home := FilterSpec{Quota: QuotaHomeState, QuotaMode: QuotaHome, State: "Karnataka"}
	other := FilterSpec{Quota: QuotaOtherState, QuotaMode: QuotaOther, State: "Karnataka"}

	assert.True(t, home.Matches(Record{Quota: "HS", State: "Karnataka"}))
	assert.False(t, home.Matches(Record{Quota: "HS", State: "Kerala"}))
	assert.True(t, other.Matches(Record{Quota: "OS", State: "Kerala"}))
	assert.False(t, other.Matches(Record{Quota: "OS", State: "Karnataka"}))
}

func TestNeedsState(t *testing.T) {
	assert.True(t, NeedsState(QuotaHomeState, query.ExamJEEMain))
	assert.True(t, NeedsState(QuotaOtherState, query.ExamJEEMain))
	assert.False(t, NeedsState(QuotaAllIndia, query.ExamJEEMain))
	assert.False(t, NeedsState(QuotaHomeState, query.ExamJEEAdvanced))
}
