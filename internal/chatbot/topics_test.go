package chatbot

import (
	"reflect"
	"testing"
)

func TestExtractTopics(t *testing.T) {
	got := ExtractTopics("I want an e-commerce shop in React with a Go backend")
	want := []string{"go", "react", "backend", "shop", "e-commerce"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTopics = %v, want %v", got, want)
	}

	if got := ExtractTopics("just saying hi"); got != nil {
		t.Errorf("ExtractTopics on plain text = %v, want none", got)
	}
}

func TestExtractTopicsWholeWords(t *testing.T) {
	// "go" must not fire inside other words.
	if got := ExtractTopics("the goal is a good logo"); !reflect.DeepEqual(got, []string{"logo"}) {
		t.Errorf("ExtractTopics = %v, want [logo]", got)
	}
}

func TestMergeTopics(t *testing.T) {
	merged := MergeTopics([]string{"react", "seo"}, []string{"seo", "api", "react"})
	want := []string{"react", "seo", "api"}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("MergeTopics = %v, want %v", merged, want)
	}

	if got := MergeTopics(nil, []string{"cms"}); !reflect.DeepEqual(got, []string{"cms"}) {
		t.Errorf("MergeTopics from empty = %v, want [cms]", got)
	}
}
