package chatbot

import "regexp"

// Intent is the classified purpose of a single user message. Exactly one
// intent is assigned per message; IntentUnknown routes the message to the
// LLM fallback.
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentWebsiteRequest Intent = "website_request"
	IntentPricing        Intent = "pricing"
	IntentContact        Intent = "contact"
	IntentHelp           Intent = "help"
	IntentServices       Intent = "services"
	IntentReset          Intent = "reset"
	IntentProvideName    Intent = "provide_name"
	IntentProvideEmail   Intent = "provide_email"
	IntentProvideBudget  Intent = "provide_budget"
	IntentUnknown        Intent = "unknown"
)

// AllIntents lists every intent the classifier or the state machine can
// produce. The transition table test ranges over this to prove totality.
var AllIntents = []Intent{
	IntentGreeting, IntentWebsiteRequest, IntentPricing, IntentContact,
	IntentHelp, IntentServices, IntentReset, IntentProvideName,
	IntentProvideEmail, IntentProvideBudget, IntentUnknown,
}

// Rule maps trigger keywords, per language, to an intent.
type Rule struct {
	Intent   Intent
	Keywords map[Language][]string
}

// defaultRules is the built-in ordered rule table; first match wins. Reset
// is checked before everything else so the command works mid-collection.
func defaultRules() []Rule {
	return []Rule{
		{IntentReset, map[Language][]string{
			English: {"reset", "restart", "start over"},
			French:  {"recommencer", "réinitialiser"},
			Spanish: {"reiniciar", "empezar de nuevo"},
			Polish:  {"od nowa", "zresetuj"},
		}},
		{IntentGreeting, map[Language][]string{
			English: {"hello", "hi", "hey", "good morning", "good afternoon"},
			French:  {"bonjour", "salut", "bonsoir"},
			Spanish: {"hola", "buenos dias", "buenas tardes"},
			Polish:  {"cześć", "czesc", "dzień dobry", "dzien dobry", "witam", "hej"},
		}},
		{IntentWebsiteRequest, map[Language][]string{
			English: {"website", "web site", "e-commerce", "ecommerce", "online store", "landing page"},
			French:  {"site web", "site internet", "boutique en ligne"},
			Spanish: {"sitio web", "pagina web", "página web", "tienda online"},
			Polish:  {"strona", "strone", "stronę", "strony", "sklep internetowy"},
		}},
		{IntentPricing, map[Language][]string{
			English: {"price", "pricing", "cost", "how much"},
			French:  {"prix", "tarif", "combien"},
			Spanish: {"precio", "cuanto cuesta", "cuánto cuesta"},
			Polish:  {"cena", "koszt", "ile kosztuje"},
		}},
		{IntentContact, map[Language][]string{
			English: {"contact", "reach you", "phone number", "email address"},
			French:  {"contacter", "contact", "coordonnées"},
			Spanish: {"contacto", "contactar"},
			Polish:  {"kontakt", "skontaktować"},
		}},
		{IntentServices, map[Language][]string{
			English: {"service", "services", "what do you offer", "what do you do"},
			French:  {"services", "offre", "prestations"},
			Spanish: {"servicios", "que ofrecen", "qué ofrecen"},
			Polish:  {"usługi", "uslugi", "oferta"},
		}},
		{IntentHelp, map[Language][]string{
			English: {"help", "assist", "support"},
			French:  {"aide", "aidez", "aider"},
			Spanish: {"ayuda", "ayudar"},
			Polish:  {"pomoc", "pomocy", "pomóż"},
		}},
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Classifier applies an ordered list of keyword-to-intent rules, localized
// per language. It is immutable after construction and safe for concurrent
// use.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a classifier from the built-in rules, optionally
// extended with extra keywords (intent name -> language code -> keywords),
// typically loaded from the rules YAML file.
func NewClassifier(extra map[string]map[string][]string) *Classifier {
	rules := defaultRules()
	for i := range rules {
		ext, ok := extra[string(rules[i].Intent)]
		if !ok {
			continue
		}
		for langCode, kws := range ext {
			lang := Language(langCode)
			rules[i].Keywords[lang] = append(rules[i].Keywords[lang], kws...)
		}
	}
	return &Classifier{rules: rules}
}

// Classify assigns exactly one intent to text. Rules for the session
// language are checked first, then the English rules, so English triggers
// keep working after the session has locked onto another language. When no
// rule matches, email-shaped and budget-shaped messages classify as their
// slot-providing intents; everything else is IntentUnknown.
func (c *Classifier) Classify(text string, lang Language) Intent {
	normalized, words := normalize(text)
	if normalized == "" {
		return IntentUnknown
	}

	for _, rule := range c.rules {
		if matchAny(normalized, words, rule.Keywords[lang]) {
			return rule.Intent
		}
		if lang != English && matchAny(normalized, words, rule.Keywords[English]) {
			return rule.Intent
		}
	}

	if emailPattern.MatchString(normalized) && len(words) == 1 {
		return IntentProvideEmail
	}
	if _, ok := ParseBudget(text); ok {
		return IntentProvideBudget
	}

	return IntentUnknown
}

func matchAny(normalized string, words []string, keywords []string) bool {
	for _, kw := range keywords {
		if matchKeyword(normalized, words, kw) {
			return true
		}
	}
	return false
}
