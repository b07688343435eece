package chatbot

import "fmt"

// messages stores every templated reply the bot can issue, per language.
// Lookup falls back to English when a translation is missing, and to the key
// itself as a last resort, so a bad key is visible instead of silent.
var messages = map[Language]map[string]string{}

func init() {
	loadEnglishMessages()
	loadFrenchMessages()
	loadSpanishMessages()
	loadPolishMessages()
}

// Reply returns the reply template for key in the given language.
func Reply(lang Language, key string) string {
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	if msg, ok := messages[English][key]; ok {
		return msg
	}
	return key
}

// Replyf returns the formatted reply for key in the given language.
func Replyf(lang Language, key string, args ...any) string {
	return fmt.Sprintf(Reply(lang, key), args...)
}
