package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRank(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantRank int
		wantNil  bool
	}{
		{name: "rank is phrase", text: "My rank is 1000", wantRank: 1000},
		{name: "number before rank", text: "I have a 4231 rank in jee main", wantRank: 4231},
		{name: "short rank with category", text: "rank 5, category gen", wantRank: 5},
		{name: "hash prefix", text: "rank #42 please", wantRank: 42},
		{name: "explicit rank beats year", text: "my rank is 500 in 2024", wantRank: 500},
		{name: "explicit rank beats later count", text: "2000 students applied, my rank is 87", wantRank: 87},
		{name: "bare number fallback", text: "I got 15000 in mains", wantRank: 15000},
		{name: "small count is not a rank", text: "I want 3 colleges", wantNil: true},
		{name: "no digits", text: "Tell me about documents", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := Parse(tt.text)
			if tt.wantNil {
				assert.Nil(t, slots.Rank)
				return
			}
			require.NotNil(t, slots.Rank)
			assert.Equal(t, tt.wantRank, *slots.Rank)
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		text string
		want Category
	}{
		{"rank 123 obc-ncl pwd", CategoryOBCNCLPwD},
		{"rank 123 obc ncl pwd", CategoryOBCNCLPwD},
		{"I am gen pwd", CategoryOpenPwD},
		{"general-pwd candidate", CategoryOpenPwD},
		{"EWS PwD rank 900", CategoryEWSPwD},
		{"sc pwd", CategorySCPwD},
		{"ST-PwD", CategorySTPwD},
		{"category SC", CategorySC},
		{"I am from OBC", CategoryOBCNCL},
		{"general category", CategoryOpen},
		{"ews", CategoryEWS},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			slots := Parse(tt.text)
			require.NotNil(t, slots.Category)
			assert.Equal(t, tt.want, *slots.Category)
		})
	}
}

func TestParseCategoryIgnoresWordFragments(t *testing.T) {
	slots := Parse("what is the best first step")
	assert.Nil(t, slots.Category)
}

func TestParseState(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"What college can I get in Karnataka category SC?", "Karnataka"},
		{"I live in tamil nadu", "Tamil Nadu"},
		{"from orissa", "Odisha"},
		{"NIT warangal chances", "Telangana"},
		{"trichy for cse", "Tamil Nadu"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			slots := Parse(tt.text)
			require.NotNil(t, slots.State)
			assert.Equal(t, tt.want, *slots.State)
		})
	}
}

func TestParseCityMatchesState(t *testing.T) {
	pairs := [][2]string{
		{"rank 900 warangal", "rank 900 telangana"},
		{"rank 900 surat", "rank 900 gujarat"},
		{"rank 900 kurukshetra", "rank 900 haryana"},
	}

	for _, p := range pairs {
		byCity := Parse(p[0])
		byState := Parse(p[1])
		require.NotNil(t, byCity.State)
		require.NotNil(t, byState.State)
		assert.Equal(t, *byState.State, *byCity.State)
	}
}

func TestParseStateWordBoundary(t *testing.T) {
	slots := Parse("goalkeeper rank 800")
	assert.Nil(t, slots.State)
}

func TestParseBranchAndInstitute(t *testing.T) {
	slots := Parse("rank 2500, can I get Computer Science at NIT Trichy")
	require.NotNil(t, slots.Branch)
	assert.Equal(t, "CSE", *slots.Branch)
	require.NotNil(t, slots.Institute)
	assert.Equal(t, "NIT Trichy", *slots.Institute)
	assert.True(t, slots.IsCollegeQuery)

	slots = Parse("electronics for IIT Bombay")
	require.NotNil(t, slots.Branch)
	assert.Equal(t, "ECE", *slots.Branch)
	require.NotNil(t, slots.Institute)
	assert.Equal(t, "IIT Bombay", *slots.Institute)
}

func TestParseBranchAndInstituteStayNarrow(t *testing.T) {
	tests := []struct {
		text      string
		branch    string
		institute string
	}{
		{"My rank is 1000 SC, which colleges can I get with it?", "", ""},
		{"My rank is 1000 SC, what about my community colleges", "", ""},
		{"rank 1000 sc college at NIT Warangal for ECE", "ECE", "NIT Warangal"},
		{"IT branch in IIIT Hyderabad please", "IT", "IIIT Hyderabad"},
		{"cse at NIT Karnataka Surathkal", "CSE", "NIT Karnataka Surathkal"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			slots := Parse(tt.text)
			if tt.branch == "" {
				assert.Nil(t, slots.Branch)
			} else {
				require.NotNil(t, slots.Branch)
				assert.Equal(t, tt.branch, *slots.Branch)
			}
			if tt.institute == "" {
				assert.Nil(t, slots.Institute)
			} else {
				require.NotNil(t, slots.Institute)
				assert.Equal(t, tt.institute, *slots.Institute)
			}
		})
	}
}

func TestParseExamType(t *testing.T) {
	tests := []struct {
		text string
		want *ExamType
	}{
		{"jee advanced rank 300", examPtr(ExamJEEAdvanced)},
		{"jee advance", examPtr(ExamJEEAdvanced)},
		{"jee-adv 400", examPtr(ExamJEEAdvanced)},
		{"jeeadvanced", examPtr(ExamJEEAdvanced)},
		{"JEE Mains 5000", examPtr(ExamJEEMain)},
		{"jee-main", examPtr(ExamJEEMain)},
		{"rank 5000", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			slots := Parse(tt.text)
			if tt.want == nil {
				assert.Nil(t, slots.ExamType)
				return
			}
			require.NotNil(t, slots.ExamType)
			assert.Equal(t, *tt.want, *slots.ExamType)
		})
	}
}

func TestParseIsCollegeQuery(t *testing.T) {
	assert.True(t, Parse("My rank is 1000").IsCollegeQuery)
	assert.True(t, Parse("which college is good for me").IsCollegeQuery)
	assert.False(t, Parse("what are some good colleges?").IsCollegeQuery)
	assert.True(t, Parse("mechanical branch").IsCollegeQuery)
	assert.False(t, Parse("Tell me about documents").IsCollegeQuery)
	assert.False(t, Parse("category SC").IsCollegeQuery)
}

func TestParseEmpty(t *testing.T) {
	slots := Parse("hello there")
	assert.True(t, slots.IsEmpty())
	assert.False(t, slots.IsCollegeQuery)
}

func examPtr(e ExamType) *ExamType { return &e }

func TestStatesAreDistinctCanonicalNames(t *testing.T) {
	states := States()
	require.NotEmpty(t, states)
	seen := map[string]bool{}
	for _, st := range states {
		assert.False(t, seen[st], st)
		seen[st] = true
		got, ok := NormalizeState(strings.ToLower(st))
		require.True(t, ok, st)
		assert.Equal(t, st, got)
	}
	assert.True(t, seen["Telangana"])
}
