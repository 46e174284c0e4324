package dialogue

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"guruvela-be/internal/constant"
	"guruvela-be/internal/pkg/logger"
	"guruvela-be/pkg/content"
	"guruvela-be/pkg/prediction"
	"guruvela-be/pkg/query"
)

type fakeCutoffs struct {
	records []prediction.Record
	err     error
	specs   []prediction.FilterSpec
}

func (f *fakeCutoffs) FindCutoffs(_ context.Context, spec prediction.FilterSpec) ([]prediction.Record, error) {
	f.specs = append(f.specs, spec)
	if f.err != nil {
		return nil, f.err
	}
	return spec.Apply(f.records), nil
}

type fakeKnowledge struct {
	entries []content.Entry
	err     error
	topics  []string
}

func (f *fakeKnowledge) ByTopic(_ context.Context, topicID, lang string) (*content.Entry, error) {
	f.topics = append(f.topics, topicID+"/"+lang)
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.entries {
		if f.entries[i].TopicID == topicID && f.entries[i].Language == lang {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeKnowledge) ByKeywords(_ context.Context, terms []string, lang string) (*content.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.entries {
		if f.entries[i].Language != lang {
			continue
		}
		for _, kw := range f.entries[i].Keywords {
			for _, t := range terms {
				if kw == t {
					return &f.entries[i], nil
				}
			}
		}
	}
	return nil, nil
}

type fakeGenerator struct {
	available bool
	prompts   []string
}

func (f *fakeGenerator) IsAvailable() bool { return f.available }

func (f *fakeGenerator) Generate(_ context.Context, prompt, language string) string {
	f.prompts = append(f.prompts, prompt)
	return "generated: " + prompt + " in " + language
}

type fakeObserver struct {
	turns []TurnResponse
	gaps  []string
}

func (f *fakeObserver) TurnCompleted(_ context.Context, _ string, resp TurnResponse) {
	f.turns = append(f.turns, resp)
}

func (f *fakeObserver) ContentGap(_ context.Context, _, _, text string) {
	f.gaps = append(f.gaps, text)
}

var sampleCutoffs = []prediction.Record{
	{InstituteName: "NIT Karnataka Surathkal", BranchName: "Computer Science and Engineering", SeatType: "SC", Quota: "AI", Gender: prediction.GenderNeutral, ClosingRank: 1400, Year: 2024, RoundNo: 6, ExamType: "JEE Main"},
	{InstituteName: "NIT Warangal", BranchName: "Electronics and Communication Engineering", SeatType: "SC", Quota: "AI", Gender: prediction.GenderNeutral, ClosingRank: 1100, Year: 2024, RoundNo: 6, ExamType: "JEE Main"},
	{InstituteName: "NIT Trichy", BranchName: "Architecture", SeatType: "SC", Quota: "AI", Gender: prediction.GenderNeutral, ClosingRank: 1200, Year: 2024, RoundNo: 6, ExamType: "JEE Main"},
	{InstituteName: "NIT Calicut", BranchName: "Mechanical Engineering", SeatType: "SC", Quota: "AI", Gender: prediction.GenderNeutral, ClosingRank: 900, Year: 2024, RoundNo: 6, ExamType: "JEE Main"},
	{InstituteName: "NIT Rourkela", BranchName: "Civil Engineering", SeatType: "SC", Quota: "AI", Gender: prediction.GenderNeutral, ClosingRank: 3000, Year: 2024, RoundNo: 6, ExamType: "JEE Main"},
	{InstituteName: "NIT Silchar", BranchName: "Civil Engineering", SeatType: "SC", Quota: "AI", Gender: prediction.GenderNeutral, ClosingRank: 5000, Year: 2024, RoundNo: 6, ExamType: "JEE Main"},
}

var sampleEntries = []content.Entry{
	{TopicID: "josaa_documents_general", Language: "en", AnswerText: "Keep your JEE admit card and category certificate ready.", RelatedContent: "josaa-documents", Keywords: []string{"documents", "certificate"}},
	{TopicID: "josaa_documents_general", Language: "hi-en", AnswerText: "JEE admit card aur category certificate ready rakhein.", RelatedContent: "josaa-documents", Keywords: []string{"documents"}},
	{TopicID: "josaa_float_freeze_slide_meaning", Language: "en", AnswerText: "Freeze accepts the seat, Float and Slide keep you in the running.", RelatedContent: content.HelpSlug, Keywords: []string{"float", "freeze", "slide"}},
}

type harness struct {
	orch      *Orchestrator
	cutoffs   *fakeCutoffs
	knowledge *fakeKnowledge
	generator *fakeGenerator
	observer  *fakeObserver
}

func newHarness(t *testing.T, quota string, generatorAvailable bool) *harness {
	t.Helper()
	h := &harness{
		cutoffs:   &fakeCutoffs{records: sampleCutoffs},
		knowledge: &fakeKnowledge{entries: sampleEntries},
		generator: &fakeGenerator{available: generatorAvailable},
		observer:  &fakeObserver{},
	}
	h.orch = NewOrchestrator(h.cutoffs, h.knowledge, h.generator, h.observer,
		logger.NewFromZap(zaptest.NewLogger(t)),
		Options{
			Dataset: prediction.Dataset{Year: 2024, Round: 6, Limit: 3, ExcludeBranch: prediction.ExcludedBranchFamily},
			Quota:   quota,
			Gender:  prediction.GenderNeutral,
		})
	return h
}

func assertReset(t *testing.T, sess *Session) {
	t.Helper()
	assert.Nil(t, sess.Rank)
	assert.Nil(t, sess.Category)
	assert.Empty(t, sess.State)
	assert.Equal(t, query.ExamJEEMain, sess.ExamType)
}

func TestRankThenCategoryCompletesPrediction(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, true)
	sess := NewSession("s1", "en")
	ctx := context.Background()

	resp := h.orch.HandleTurn(ctx, sess, Turn{Text: "My rank is 1000"})
	assert.Equal(t, constant.ChatFlowClarification, resp.Flow)
	assert.Equal(t, constant.TextsFor("en").AskCategory, resp.Text)
	require.NotNil(t, sess.Rank)
	assert.Equal(t, 1000, *sess.Rank)
	assert.Nil(t, sess.Category)
	assert.Empty(t, h.cutoffs.specs)

	resp = h.orch.HandleTurn(ctx, sess, Turn{Text: "What college can I get in Karnataka category SC?"})
	assert.Equal(t, constant.ChatFlowPrediction, resp.Flow)
	assert.Equal(t, constant.ChatOutcomeAnswered, resp.Outcome)

	require.Len(t, h.cutoffs.specs, 1)
	spec := h.cutoffs.specs[0]
	assert.Equal(t, 1000, spec.MinClosingRank)
	assert.Equal(t, "SC", spec.SeatType)
	assert.Equal(t, "JEE Main", spec.ExamType)
	assert.Equal(t, prediction.QuotaAllIndia, spec.Quota)

	require.Len(t, resp.Results, 3)
	for _, r := range resp.Results {
		assert.GreaterOrEqual(t, r.ClosingRank, 1000)
		assert.NotEqual(t, "Architecture", r.BranchName)
	}
	assert.Equal(t, "NIT Warangal", resp.Results[0].InstituteName)
	assert.Contains(t, resp.Text, "NIT Warangal - Electronics and Communication Engineering (closing rank 1100)")

	assertReset(t, sess)
}

func TestLooseWordsDoNotNarrowPrediction(t *testing.T) {
	tests := []struct {
		text      string
		branch    string
		institute string
		first     string
	}{
		{"My rank is 1000 SC, which colleges can I get with it?", "", "", "NIT Warangal"},
		{"My rank is 1000 SC, what about my community colleges", "", "", "NIT Warangal"},
		{"rank 1000 sc college at NIT Warangal for ECE", "Electronics", "NIT Warangal", "NIT Warangal"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			h := newHarness(t, prediction.QuotaAllIndia, false)
			sess := NewSession("s1", "en")

			resp := h.orch.HandleTurn(context.Background(), sess, Turn{Text: tt.text})

			assert.Equal(t, constant.ChatFlowPrediction, resp.Flow)
			assert.Equal(t, constant.ChatOutcomeAnswered, resp.Outcome)
			require.Len(t, h.cutoffs.specs, 1)
			assert.Equal(t, tt.branch, h.cutoffs.specs[0].BranchLike)
			assert.Equal(t, tt.institute, h.cutoffs.specs[0].InstituteLike)
			require.NotEmpty(t, resp.Results)
			assert.Equal(t, tt.first, resp.Results[0].InstituteName)
		})
	}
}

func TestUnrelatedQuestionResetsPendingRank(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, false)
	sess := NewSession("s1", "en")
	ctx := context.Background()

	h.orch.HandleTurn(ctx, sess, Turn{Text: "My rank is 1000"})
	require.NotNil(t, sess.Rank)

	resp := h.orch.HandleTurn(ctx, sess, Turn{Text: "Tell me about documents"})
	assert.Equal(t, constant.ChatFlowKnowledge, resp.Flow)
	assert.Equal(t, sampleEntries[0].AnswerText, resp.Text)
	assert.Equal(t, "/pages/josaa-documents", resp.RelatedLink)
	assert.False(t, resp.ShowHelp)
	assert.Nil(t, resp.Suggestions)
	assertReset(t, sess)
}

func TestPwDCategoryInOneTurn(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, false)
	sess := NewSession("s1", "en")

	h.orch.HandleTurn(context.Background(), sess, Turn{Text: "rank 123 obc-ncl pwd"})

	require.Len(t, h.cutoffs.specs, 1)
	assert.Equal(t, "OBC-NCL (PwD)", h.cutoffs.specs[0].SeatType)
	assert.Equal(t, 123, h.cutoffs.specs[0].MinClosingRank)
	assertReset(t, sess)
}

func TestHomeStateQuotaAsksForState(t *testing.T) {
	h := newHarness(t, prediction.QuotaHomeState, false)
	sess := NewSession("s1", "en")
	ctx := context.Background()

	resp := h.orch.HandleTurn(ctx, sess, Turn{Text: "rank 500 obc"})
	assert.Equal(t, constant.TextsFor("en").AskState, resp.Text)
	require.NotNil(t, sess.Category)

	resp = h.orch.HandleTurn(ctx, sess, Turn{Text: "I am from warangal"})
	assert.Equal(t, constant.ChatFlowPrediction, resp.Flow)
	require.Len(t, h.cutoffs.specs, 1)
	assert.Equal(t, prediction.QuotaHome, h.cutoffs.specs[0].QuotaMode)
	assert.Equal(t, "Telangana", h.cutoffs.specs[0].State)
	assertReset(t, sess)
}

func TestAdvancedSkipsStateRequirement(t *testing.T) {
	h := newHarness(t, prediction.QuotaHomeState, false)
	sess := NewSession("s1", "en")

	h.orch.HandleTurn(context.Background(), sess, Turn{Text: "jee advanced rank 700 general"})

	require.Len(t, h.cutoffs.specs, 1)
	assert.Equal(t, "JEE Advanced", h.cutoffs.specs[0].ExamType)
	assert.Equal(t, prediction.QuotaAllIndia, h.cutoffs.specs[0].Quota)
}

func TestNoCollegesFound(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, false)
	h.cutoffs.records = nil
	sess := NewSession("s1", "en")

	resp := h.orch.HandleTurn(context.Background(), sess, Turn{Text: "rank 100 st"})
	assert.Equal(t, constant.TextsFor("en").NoCollegesFound, resp.Text)
	assert.Equal(t, constant.ChatOutcomeNoResults, resp.Outcome)
	assert.Empty(t, resp.Results)
	assertReset(t, sess)
}

func TestCutoffFailureBecomesConnectionError(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, false)
	h.cutoffs.err = errors.New("dial tcp: connection refused")
	sess := NewSession("s1", "hi-en")

	resp := h.orch.HandleTurn(context.Background(), sess, Turn{Text: "rank 100 sc"})
	assert.Equal(t, constant.TextsFor("hi-en").ConnectionError, resp.Text)
	assert.True(t, resp.ShowHelp)
	assert.Equal(t, constant.ChatOutcomeCollaborator, resp.Outcome)
}

func TestKnowledgeFailureBecomesConnectionError(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, true)
	h.knowledge.err = errors.New("timeout")
	sess := NewSession("s1", "en")

	resp := h.orch.HandleTurn(context.Background(), sess, Turn{Text: "tell me about documents"})
	assert.Equal(t, constant.TextsFor("en").ConnectionError, resp.Text)
	assert.True(t, resp.ShowHelp)
	assert.NotEmpty(t, resp.Suggestions)
	assert.Empty(t, h.generator.prompts)
}

func TestGeneralQueryDelegatesToGenerator(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, true)
	sess := NewSession("s1", "te-en")

	resp := h.orch.HandleTurn(context.Background(), sess, Turn{Text: "what are some good colleges?"})
	assert.Equal(t, constant.ChatFlowGenerative, resp.Flow)
	assert.Equal(t, "generated: what are some good colleges? in te-en", resp.Text)
	assert.Equal(t, []string{"what are some good colleges?"}, h.observer.gaps)
	assertReset(t, sess)
}

func TestGeneralQueryWithoutGeneratorFallsBack(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, false)
	sess := NewSession("s1", "en")

	resp := h.orch.HandleTurn(context.Background(), sess, Turn{Text: "hello world"})
	assert.Equal(t, constant.TextsFor("en").FallbackResponse, resp.Text)
	assert.Equal(t, content.HelpSlug, resp.RelatedContent)
	assert.Equal(t, "/faqs", resp.RelatedLink)
	assert.True(t, resp.ShowHelp)
	assert.Len(t, resp.Suggestions, 4)
	assert.Empty(t, h.generator.prompts)
}

func TestLanguageFallbackIsAnnotated(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, false)
	sess := NewSession("s1", "te-en")

	resp := h.orch.HandleTurn(context.Background(), sess, Turn{Text: "explain the freeze option"})
	texts := constant.TextsFor("te-en")
	assert.True(t, resp.FallbackLanguage)
	assert.Equal(t, constant.ChatOutcomeFallback, resp.Outcome)
	assert.True(t, strings.HasSuffix(resp.Text, " "+texts.EnglishFallbackNotice))
	assert.True(t, resp.ShowHelp)
	assert.Len(t, resp.Suggestions, 4)
}

func TestSuggestionClickLooksUpTopic(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, true)
	sess := NewSession("s1", "hi-en")
	rank := 5000
	sess.Rank = &rank

	resp := h.orch.HandleTurn(context.Background(), sess, Turn{Text: "JoSAA ke liye documents?"})
	assert.Equal(t, sampleEntries[1].AnswerText, resp.Text)
	assert.False(t, resp.FallbackLanguage)
	assert.Len(t, resp.Suggestions, 4)
	assert.Equal(t, []string{"josaa_documents_general/hi-en"}, h.knowledge.topics)
	assertReset(t, sess)
}

func TestExplicitTopicMissNeverDelegates(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, true)
	sess := NewSession("s1", "en")

	resp := h.orch.HandleTurn(context.Background(), sess, Turn{TopicID: "iit_preparatory_what_is"})
	assert.Equal(t, constant.ChatOutcomeNotFound, resp.Outcome)
	assert.Empty(t, h.generator.prompts)
}

func TestEmptyTermsAsksForSpecificQuestion(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, true)
	sess := NewSession("s1", "en")

	resp := h.orch.HandleTurn(context.Background(), sess, Turn{Text: "? !"})
	assert.Equal(t, constant.TextsFor("en").AskSpecific, resp.Text)
	assert.True(t, resp.ShowHelp)
	assert.Len(t, resp.Suggestions, 4)
	assert.Empty(t, h.generator.prompts)
}

func TestTurnLanguageOverridesSession(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, false)
	sess := NewSession("s1", "en")

	resp := h.orch.HandleTurn(context.Background(), sess, Turn{Text: "My rank is 1000", Language: "hi-en"})
	assert.Equal(t, "hi-en", sess.Language)
	assert.Equal(t, "hi-en", resp.Language)
	assert.Equal(t, constant.TextsFor("hi-en").AskCategory, resp.Text)
}

func TestObserverSeesEveryTurn(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, false)
	sess := NewSession("s1", "en")
	ctx := context.Background()

	h.orch.HandleTurn(ctx, sess, Turn{Text: "My rank is 1000"})
	h.orch.HandleTurn(ctx, sess, Turn{Text: "category sc"})
	assert.Len(t, h.observer.turns, 2)
	assert.Equal(t, constant.ChatFlowClarification, h.observer.turns[0].Flow)
	assert.Equal(t, constant.ChatFlowPrediction, h.observer.turns[1].Flow)
}

func TestGreeting(t *testing.T) {
	h := newHarness(t, prediction.QuotaAllIndia, false)
	resp := h.orch.Greeting(NewSession("s1", "te-en"))
	assert.Equal(t, constant.TextsFor("te-en").Greeting, resp.Text)
	assert.Len(t, resp.Suggestions, 4)
}
