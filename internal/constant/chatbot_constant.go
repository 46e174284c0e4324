package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleModel  = "model"
	ChatMessageRoleSystem = "system"

	ChatFlowPrediction    = "prediction"
	ChatFlowClarification = "clarification"
	ChatFlowKnowledge     = "knowledge"
	ChatFlowGenerative    = "generative"

	ChatOutcomeAnswered     = "answered"
	ChatOutcomeFallback     = "fallback"
	ChatOutcomeNotFound     = "not_found"
	ChatOutcomeNoResults    = "no_results"
	ChatOutcomeNeedInfo     = "need_info"
	ChatOutcomeAskSpecific  = "ask_specific"
	ChatOutcomeInvalidRank  = "invalid_rank"
	ChatOutcomeCollaborator = "collaborator_error"

	ChatSummaryDefaultLimit = 3
	GeminiMaxOutputTokens   = 200
	GeminiDefaultModel      = "gemini-1.5-flash"

	OllamaDefaultBaseURL   = "http://localhost:11434"
	OllamaDefaultModel     = "llama3.1:8b"
	OllamaChatEndpoint     = "/api/chat"
	OllamaGenerateEndpoint = "/api/generate"
	OllamaRoleAssistant    = "assistant"
	OllamaRoleUser         = "user"

	ContentGapTopic           = "content.gap"
	TurnCompletedSubject      = "chat.turn_completed"
	ContentPageCacheKeyPrefix = "content:page:"
)

// ChatTexts holds every user-facing chatbot string for one language.
type ChatTexts struct {
	Greeting              string
	FallbackResponse      string
	ConnectionError       string
	EnglishFallbackNotice string
	AskSpecific           string
	AskRank               string
	AskCategory           string
	AskRankAndCategory    string
	AskState              string
	InvalidRank           string
	NoCollegesFound       string
	PredictionHeader      string
	PredictionFooter      string
	GenerativeUnavailable string
	GenerativeError       string
	ChooseTopic           string
	HowToUseReferral      string
}

// Suggestion is a canned topic offered as a one-click question.
type Suggestion struct {
	ID           string `json:"id"`
	TopicID      string `json:"topic_id"`
	Label        string `json:"label"`
	ExampleQuery string `json:"example_query"`
}

var chatTexts = map[string]ChatTexts{
	"en": {
		Greeting:              "Hi! I'm Guruvela's assistant. How can I help you with JoSAA/CSAB counseling today?",
		FallbackResponse:      "I'm sorry, I couldn't find a specific answer. Please try rephrasing, or check our guides for more information.",
		ConnectionError:       "Oops! I'm having a bit of trouble connecting to my knowledge base right now. Please try again in a moment.",
		EnglishFallbackNotice: "(Showing English result as specific content for your selected language was not found.)",
		AskSpecific:           "Please try a more specific question or select from the topics above.",
		AskRank:               "What is your rank? For example: \"my rank is 4500\".",
		AskCategory:           "Which category are you in? (OPEN, EWS, OBC-NCL, SC, ST, or their PwD variants)",
		AskRankAndCategory:    "To suggest colleges I need your rank and category. For example: \"rank 4500 OBC-NCL\".",
		AskState:              "Which state are you from? Home-state quota depends on it.",
		InvalidRank:           "That rank doesn't look right. Please share a positive number, like \"rank 4500\".",
		NoCollegesFound:       "No colleges found for these filters. Try a different category or quota.",
		PredictionHeader:      "Based on last year's closing ranks, you could consider:",
		PredictionFooter:      "Use the rank predictor for the full list.",
		GenerativeUnavailable: "The chatbot's AI features are not configured. Please contact the administrator.",
		GenerativeError:       "Sorry, I encountered an error while trying to get a response. Please try again later.",
		ChooseTopic:           "Or, pick a common topic:",
		HowToUseReferral:      "For more help on how to use Guruvela, see our How to Use Guide.",
	},
	"hi-en": {
		Greeting:              "Namaste! Main Guruvela ka assistant hoon. JoSAA/CSAB counselling mein aapki kya help kar sakta hoon?",
		FallbackResponse:      "Sorry, aapke sawaal ka specific answer nahi mila. Question change karke try karein ya guides check karein.",
		ConnectionError:       "Oops! Connection mein thodi problem hai. Please thodi der baad try karein.",
		EnglishFallbackNotice: "(Aapki language mein content nahi mila, isliye English result dikha raha hai.)",
		AskSpecific:           "Please thoda specific question poochein ya upar diye gaye topics mein se select karein.",
		AskRank:               "Aapka rank kya hai? Jaise: \"my rank is 4500\".",
		AskCategory:           "Aapki category kya hai? (OPEN, EWS, OBC-NCL, SC, ST ya unke PwD variants)",
		AskRankAndCategory:    "Colleges batane ke liye rank aur category chahiye. Jaise: \"rank 4500 OBC-NCL\".",
		AskState:              "Aap kis state se hain? Home-state quota uspe depend karta hai.",
		InvalidRank:           "Yeh rank sahi nahi lag raha. Please positive number batayein, jaise \"rank 4500\".",
		NoCollegesFound:       "In filters ke liye koi college nahi mila. Doosri category ya quota try karein.",
		PredictionHeader:      "Pichhle saal ke closing ranks ke hisaab se aap yeh consider kar sakte hain:",
		PredictionFooter:      "Poori list ke liye rank predictor use karein.",
		GenerativeUnavailable: "Chatbot ke AI features configure nahi hain. Please administrator se contact karein.",
		GenerativeError:       "Sorry, response laane mein error aaya. Please thodi der baad try karein.",
		ChooseTopic:           "Ya, inmein se koi topic chunein:",
		HowToUseReferral:      "Guruvela kaise use karein, iske liye hamara How to Use Guide dekhein.",
	},
	"te-en": {
		Greeting:              "Namaste! Nenu Guruvela assistant. JoSAA/CSAB counselling lo ela help cheyagalanu?",
		FallbackResponse:      "Sorry, mee prashnaku specific answer dorakaledu. Question marchi try cheyandi leda guides chudandi.",
		ConnectionError:       "Oops! Connection lo konchem problem undi. Please konchem time tarvata try cheyandi.",
		EnglishFallbackNotice: "(Meeru select chesina language lo content dorakaledu, anduke English result chupistunnam.)",
		AskSpecific:           "Dayachesi konchem specific prashna adagandi leda paina unna topics nunchi select cheskondi.",
		AskRank:               "Mee rank enti? Udaharanaki: \"my rank is 4500\".",
		AskCategory:           "Mee category enti? (OPEN, EWS, OBC-NCL, SC, ST leda vaati PwD variants)",
		AskRankAndCategory:    "Colleges cheppadaniki mee rank mariyu category kavali. Udaharanaki: \"rank 4500 OBC-NCL\".",
		AskState:              "Meeru e state nunchi? Home-state quota daani meeda depend avutundi.",
		InvalidRank:           "Ee rank sariga ledu. Dayachesi positive number cheppandi, udaharanaki \"rank 4500\".",
		NoCollegesFound:       "Ee filters ki colleges dorakaledu. Vere category leda quota try cheyandi.",
		PredictionHeader:      "Gata samvatsaram closing ranks prakaram, meeru ivi consider cheyochu:",
		PredictionFooter:      "Poorthi list kosam rank predictor vadandi.",
		GenerativeUnavailable: "Chatbot AI features configure cheyaledu. Dayachesi administrator ni contact cheyandi.",
		GenerativeError:       "Sorry, response teeskuravadam lo error vachindi. Konchem time tarvata try cheyandi.",
		ChooseTopic:           "Leda, ee topics lo select cheskondi:",
		HowToUseReferral:      "Guruvela ela vadalo telusukodaniki, maa How to Use Guide chudandi.",
	},
}

var suggestionTopics = []struct {
	id      string
	topicID string
}{
	{"cat_josaa_docs", "josaa_documents_general"},
	{"cat_seat_allotment", "josaa_float_freeze_slide_meaning"},
	{"cat_prep_courses", "iit_preparatory_what_is"},
	{"cat_colorblind", "josaa_colorblind_general"},
}

// label, example query per topic, in suggestionTopics order
var suggestionTexts = map[string][][2]string{
	"en": {
		{"Required Documents", "What documents are needed for JoSAA?"},
		{"Seat Allotment Process", "Explain Float, Freeze, Slide"},
		{"IIT Preparatory Courses", "What is IIT preparatory rank?"},
		{"Colorblindness Advice", "Colorblind medical certificate query"},
	},
	"hi-en": {
		{"Zaroori Documents", "JoSAA ke liye documents?"},
		{"Seat Allotment Process", "Float, Freeze, Slide kya hai?"},
		{"IIT Prep Courses", "IIT preparatory rank kya hai?"},
		{"Colorblindness Advice", "Colorblind medical certificate info"},
	},
	"te-en": {
		{"Kavalasina Documents", "JoSAA ki documents em kavali?"},
		{"Seat Allotment Process", "Float, Freeze, Slide explain cheyandi?"},
		{"IIT Prep Courses", "IIT preparatory rank ante enti?"},
		{"Colorblindness Advice", "Colorblind medical certificate information"},
	},
}

// TextsFor returns the chatbot strings for lang, falling back to English.
func TextsFor(lang string) ChatTexts {
	if t, ok := chatTexts[lang]; ok {
		return t
	}
	return chatTexts["en"]
}

// SuggestionsFor returns the suggested topics localized for lang.
func SuggestionsFor(lang string) []Suggestion {
	texts, ok := suggestionTexts[lang]
	if !ok {
		texts = suggestionTexts["en"]
	}
	out := make([]Suggestion, 0, len(suggestionTopics))
	for i, topic := range suggestionTopics {
		out = append(out, Suggestion{
			ID:           topic.id,
			TopicID:      topic.topicID,
			Label:        texts[i][0],
			ExampleQuery: texts[i][1],
		})
	}
	return out
}
