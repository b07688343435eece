package chatbot

// Language is the closed set of languages the bot replies in. A session's
// language is sticky: once detected it never changes, even if later messages
// match another language's keywords.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
	Spanish Language = "es"
	Polish  Language = "pl"
)

// Name returns the English name of the language, used when instructing the
// fallback model which language to answer in.
func (l Language) Name() string {
	switch l {
	case French:
		return "French"
	case Spanish:
		return "Spanish"
	case Polish:
		return "Polish"
	default:
		return "English"
	}
}

// languageKeywords is checked in order; English first, so ambiguous tokens
// resolve to English.
var languageKeywords = []struct {
	lang     Language
	keywords []string
}{
	{English, []string{
		"hello", "hi", "hey", "good morning", "good afternoon", "english",
	}},
	{French, []string{
		"bonjour", "salut", "bonsoir", "merci", "français", "francais",
	}},
	{Spanish, []string{
		"hola", "buenos dias", "buenas tardes", "gracias", "español", "espanol",
	}},
	{Polish, []string{
		"cześć", "czesc", "dzień dobry", "dzien dobry", "witam", "polski",
	}},
}

// DetectLanguage scans text for language trigger keywords and returns the
// first language that matches. The second return is false when nothing
// matched; the caller must then keep whatever language the session already
// has.
func DetectLanguage(text string) (Language, bool) {
	normalized, words := normalize(text)
	for _, entry := range languageKeywords {
		for _, kw := range entry.keywords {
			if matchKeyword(normalized, words, kw) {
				return entry.lang, true
			}
		}
	}
	return "", false
}
