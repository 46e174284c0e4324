package constant

const (
	// GenerativeSystemPrompt is filled with the language instruction and the
	// user's question, in that order.
	GenerativeSystemPrompt = `You are Guruvela's assistant for JoSAA and CSAB engineering counselling in India.
Answer briefly and factually. If you are not sure, tell the student to check the official JoSAA or CSAB website.
Do not guess cutoff ranks; the rank predictor covers those.

%s

Question: %s`

	LanguageHintEnglish   = "Reply in simple English."
	LanguageHintHinglish  = "Reply in Hinglish: Hindi written in the Latin alphabet, mixed with English terms."
	LanguageHintTeluguish = "Reply in Teluguish: Telugu written in the Latin alphabet, mixed with English terms."
)

// LanguageHint returns the reply-language instruction for lang.
func LanguageHint(lang string) string {
	switch lang {
	case "hi-en":
		return LanguageHintHinglish
	case "te-en":
		return LanguageHintTeluguish
	default:
		return LanguageHintEnglish
	}
}
