package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"guruvela-be/internal/constant"
	"guruvela-be/internal/pkg/logger"
	"guruvela-be/pkg/content"
	"guruvela-be/pkg/prediction"
	"guruvela-be/pkg/query"
)

const logModule = "dialogue"

// CutoffSource runs a prediction lookup.
type CutoffSource interface {
	FindCutoffs(ctx context.Context, spec prediction.FilterSpec) ([]prediction.Record, error)
}

// KnowledgeBase finds canned answers. Both methods return nil, nil when
// nothing matches in the given language.
type KnowledgeBase interface {
	ByTopic(ctx context.Context, topicID, lang string) (*content.Entry, error)
	ByKeywords(ctx context.Context, terms []string, lang string) (*content.Entry, error)
}

// Generator is the optional generative fallback. Generate never fails; it
// returns user-safe text instead.
type Generator interface {
	IsAvailable() bool
	Generate(ctx context.Context, prompt, language string) string
}

// Observer is notified about finished turns and knowledge-base misses.
type Observer interface {
	TurnCompleted(ctx context.Context, sessionID string, resp TurnResponse)
	ContentGap(ctx context.Context, sessionID, language, text string)
}

// Turn is one user message.
type Turn struct {
	Text     string
	Language string
	TopicID  string
}

// TurnResponse is what the assistant answers with.
type TurnResponse struct {
	Text             string                `json:"text"`
	RelatedContent   string                `json:"related_content,omitempty"`
	RelatedLink      string                `json:"related_link,omitempty"`
	ShowHelp         bool                  `json:"show_help"`
	Suggestions      []constant.Suggestion `json:"suggestions,omitempty"`
	Results          []prediction.Record   `json:"results,omitempty"`
	Flow             string                `json:"flow"`
	Outcome          string                `json:"outcome"`
	Language         string                `json:"language"`
	FallbackLanguage bool                  `json:"fallback_language"`
}

// Options tunes the chat prediction flow.
type Options struct {
	Dataset         prediction.Dataset
	Quota           string
	Gender          string
	DefaultLanguage string
}

// Orchestrator drives one turn at a time: extract, merge, route, act.
type Orchestrator struct {
	cutoffs   CutoffSource
	knowledge KnowledgeBase
	generator Generator
	observer  Observer
	log       logger.ILogger
	opts      Options
}

func NewOrchestrator(
	cutoffs CutoffSource,
	knowledge KnowledgeBase,
	generator Generator,
	observer Observer,
	log logger.ILogger,
	opts Options,
) *Orchestrator {
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = content.DefaultLanguage
	}
	if opts.Dataset.Limit <= 0 {
		opts.Dataset.Limit = constant.ChatSummaryDefaultLimit
	}
	return &Orchestrator{
		cutoffs:   cutoffs,
		knowledge: knowledge,
		generator: generator,
		observer:  observer,
		log:       log,
		opts:      opts,
	}
}

// Greeting opens a conversation in the session's language.
func (o *Orchestrator) Greeting(sess *Session) TurnResponse {
	return TurnResponse{
		Text:        constant.TextsFor(sess.Language).Greeting,
		Suggestions: constant.SuggestionsFor(sess.Language),
		Flow:        constant.ChatFlowKnowledge,
		Outcome:     constant.ChatOutcomeAnswered,
		Language:    sess.Language,
	}
}

// HandleTurn processes one message against sess. The caller must hold the
// session lock. Collaborator errors never escape; they become a localized
// connection-trouble answer.
func (o *Orchestrator) HandleTurn(ctx context.Context, sess *Session, turn Turn) TurnResponse {
	lang := sess.Language
	if turn.Language != "" {
		lang = content.NormalizeLanguage(turn.Language)
		sess.Language = lang
	}

	var resp TurnResponse
	if topicID := o.topicFor(turn, lang); topicID != "" {
		resp = o.answerFromKnowledge(ctx, sess, lang, turn.Text, topicID)
		sess.Reset()
	} else {
		resp = o.route(ctx, sess, lang, turn.Text)
	}

	resp.Language = lang
	resp.RelatedLink = content.RelatedLink(resp.RelatedContent)
	if o.observer != nil {
		o.observer.TurnCompleted(ctx, sess.ID, resp)
	}
	return resp
}

func (o *Orchestrator) route(ctx context.Context, sess *Session, lang, text string) TurnResponse {
	slots := query.Parse(text)
	sess.Merge(slots)
	eff := sess.Effective(slots)

	decision := Route(slots, eff, o.opts.Quota)
	if decision.Flow == FlowKnowledge {
		resp := o.answerFromKnowledge(ctx, sess, lang, text, "")
		sess.Reset()
		return resp
	}

	if !decision.Complete {
		return o.clarify(lang, decision.Missing)
	}

	resp := o.predict(ctx, lang, eff)
	if resp.Outcome == constant.ChatOutcomeInvalidRank {
		sess.Rank = nil
		return resp
	}
	sess.Reset()
	return resp
}

func (o *Orchestrator) clarify(lang string, missing []Slot) TurnResponse {
	texts := constant.TextsFor(lang)
	has := func(s Slot) bool {
		for _, m := range missing {
			if m == s {
				return true
			}
		}
		return false
	}

	var text string
	switch {
	case has(SlotRank) && has(SlotCategory):
		text = texts.AskRankAndCategory
	case has(SlotRank):
		text = texts.AskRank
	case has(SlotCategory):
		text = texts.AskCategory
	default:
		text = texts.AskState
	}

	return TurnResponse{
		Text:    text,
		Flow:    constant.ChatFlowClarification,
		Outcome: constant.ChatOutcomeNeedInfo,
	}
}

func (o *Orchestrator) predict(ctx context.Context, lang string, eff Effective) TurnResponse {
	texts := constant.TextsFor(lang)

	req := prediction.Request{
		Rank:      *eff.Rank,
		ExamType:  eff.ExamType,
		Category:  *eff.Category,
		Quota:     o.opts.Quota,
		Gender:    o.opts.Gender,
		State:     eff.State,
		Institute: eff.Institute,
	}
	if eff.Branch != "" {
		req.Branch = query.BranchSearchTerm(eff.Branch)
	}

	spec, err := prediction.BuildQuery(req, o.opts.Dataset)
	if err != nil {
		return TurnResponse{
			Text:    texts.InvalidRank,
			Flow:    constant.ChatFlowClarification,
			Outcome: constant.ChatOutcomeInvalidRank,
		}
	}

	records, err := o.cutoffs.FindCutoffs(ctx, spec)
	if err != nil {
		o.log.Error(logModule, "cutoff lookup failed", map[string]interface{}{
			"error":     err.Error(),
			"rank":      req.Rank,
			"category":  string(req.Category),
			"exam_type": string(req.ExamType),
		})
		return TurnResponse{
			Text:     texts.ConnectionError,
			ShowHelp: true,
			Flow:     constant.ChatFlowPrediction,
			Outcome:  constant.ChatOutcomeCollaborator,
		}
	}

	if len(records) == 0 {
		return TurnResponse{
			Text:    texts.NoCollegesFound,
			Flow:    constant.ChatFlowPrediction,
			Outcome: constant.ChatOutcomeNoResults,
		}
	}

	if len(records) > spec.Limit {
		records = records[:spec.Limit]
	}

	return TurnResponse{
		Text:    summarize(texts, records),
		Results: records,
		Flow:    constant.ChatFlowPrediction,
		Outcome: constant.ChatOutcomeAnswered,
	}
}

func summarize(texts constant.ChatTexts, records []prediction.Record) string {
	var b strings.Builder
	b.WriteString(texts.PredictionHeader)
	for _, r := range records {
		fmt.Fprintf(&b, "\n- %s - %s (closing rank %d)", r.InstituteName, r.BranchName, r.ClosingRank)
	}
	b.WriteString("\n")
	b.WriteString(texts.PredictionFooter)
	return b.String()
}

func (o *Orchestrator) answerFromKnowledge(ctx context.Context, sess *Session, lang, text, topicID string) TurnResponse {
	texts := constant.TextsFor(lang)
	clicked := topicID != ""

	var lookup content.LookupFunc[content.Entry]
	if clicked {
		lookup = func(ctx context.Context, l string) (*content.Entry, error) {
			return o.knowledge.ByTopic(ctx, topicID, l)
		}
	} else {
		terms := content.Tokenize(text)
		if len(terms) == 0 {
			return withSuggestions(TurnResponse{
				Text:     texts.AskSpecific,
				ShowHelp: true,
				Flow:     constant.ChatFlowKnowledge,
				Outcome:  constant.ChatOutcomeAskSpecific,
			}, lang, false)
		}
		lookup = func(ctx context.Context, l string) (*content.Entry, error) {
			return o.knowledge.ByKeywords(ctx, terms, l)
		}
	}

	res, err := content.Resolve(ctx, lang, o.opts.DefaultLanguage, lookup)
	switch {
	case errors.Is(err, content.ErrNotFound):
		if o.observer != nil {
			o.observer.ContentGap(ctx, sess.ID, lang, text)
		}
		if !clicked && o.generator != nil && o.generator.IsAvailable() {
			return TurnResponse{
				Text:    o.generator.Generate(ctx, text, lang),
				Flow:    constant.ChatFlowGenerative,
				Outcome: constant.ChatOutcomeAnswered,
			}
		}
		return withSuggestions(TurnResponse{
			Text:           texts.FallbackResponse,
			RelatedContent: content.HelpSlug,
			ShowHelp:       true,
			Flow:           constant.ChatFlowKnowledge,
			Outcome:        constant.ChatOutcomeNotFound,
		}, lang, clicked)

	case err != nil:
		o.log.Error(logModule, "knowledge base lookup failed", map[string]interface{}{
			"error":    err.Error(),
			"language": lang,
			"topic_id": topicID,
		})
		return withSuggestions(TurnResponse{
			Text:     texts.ConnectionError,
			ShowHelp: true,
			Flow:     constant.ChatFlowKnowledge,
			Outcome:  constant.ChatOutcomeCollaborator,
		}, lang, clicked)

	case res.Fallback:
		o.log.Warn(logModule, "answer served in default language", map[string]interface{}{
			"requested_language": lang,
			"topic_id":           topicID,
		})
		related := res.Value.RelatedContent
		return withSuggestions(TurnResponse{
			Text:             res.Value.AnswerText + " " + texts.EnglishFallbackNotice,
			RelatedContent:   related,
			ShowHelp:         related == content.HelpSlug,
			Flow:             constant.ChatFlowKnowledge,
			Outcome:          constant.ChatOutcomeFallback,
			FallbackLanguage: true,
		}, lang, clicked)
	}

	return withSuggestions(TurnResponse{
		Text:           res.Value.AnswerText,
		RelatedContent: res.Value.RelatedContent,
		Flow:           constant.ChatFlowKnowledge,
		Outcome:        constant.ChatOutcomeAnswered,
	}, lang, clicked)
}

// withSuggestions attaches the topic list after a click, or when the answer
// points the user at general help.
func withSuggestions(resp TurnResponse, lang string, clicked bool) TurnResponse {
	if clicked || (resp.ShowHelp && (resp.RelatedContent == content.HelpSlug || resp.RelatedContent == "")) {
		resp.Suggestions = constant.SuggestionsFor(lang)
	}
	return resp
}

// topicFor returns the topic a turn selects directly, either explicitly or
// by repeating a suggestion's example query.
func (o *Orchestrator) topicFor(turn Turn, lang string) string {
	if turn.TopicID != "" {
		return turn.TopicID
	}
	text := strings.TrimSpace(turn.Text)
	for _, s := range constant.SuggestionsFor(lang) {
		if s.ExampleQuery == text {
			return s.TopicID
		}
	}
	return ""
}
