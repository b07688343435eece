package chatbot

// techTopics are the project topics the bot recognizes in user messages.
// They accumulate on the session and end up on the generated report.
var techTopics = []string{
	"rust", "go", "golang", "python", "javascript", "react", "vue",
	"api", "backend", "frontend", "mobile", "app",
	"blog", "shop", "ecommerce", "e-commerce", "cms", "seo",
	"database", "hosting", "design", "logo",
}

// ExtractTopics returns the known tech topics mentioned in text, in table
// order, without duplicates.
func ExtractTopics(text string) []string {
	normalized, words := normalize(text)
	var found []string
	for _, topic := range techTopics {
		if matchKeyword(normalized, words, topic) {
			found = append(found, topic)
		}
	}
	return found
}

// MergeTopics appends the topics of newly detected ones not already present.
func MergeTopics(existing, detected []string) []string {
	for _, topic := range detected {
		seen := false
		for _, have := range existing {
			if have == topic {
				seen = true
				break
			}
		}
		if !seen {
			existing = append(existing, topic)
		}
	}
	return existing
}
