package nlp

import (
	"strings"
	"testing"
)

func TestCleanLowercases(t *testing.T) {
	p := NewPreprocessor()
	got := p.Clean("HELLO World")
	if got != strings.ToLower(got) {
		t.Fatalf("expected lowercase output, got %q", got)
	}
}

func TestCleanRemovesPunctuation(t *testing.T) {
	p := NewPreprocessor()
	got := p.Clean("hello, world! yes?")
	if strings.ContainsAny(got, ",!?") {
		t.Fatalf("expected punctuation removed, got %q", got)
	}
}

func TestCleanDropsTokensWithDigits(t *testing.T) {
	p := NewPreprocessor()
	got := p.Clean("hello twenty 20 nine9 world")
	for _, word := range []string{"20", "nine9"} {
		if strings.Contains(got, word) {
			t.Fatalf("expected %q dropped, got %q", word, got)
		}
	}
	if !strings.Contains(got, "hello") || !strings.Contains(got, "world") {
		t.Fatalf("expected digit-free tokens kept, got %q", got)
	}
}

func TestCleanRemovesStopwords(t *testing.T) {
	p := NewPreprocessor()
	got := p.Clean("meeting at the call")
	for _, stop := range []string{"at", "the"} {
		for _, token := range strings.Fields(got) {
			if token == stop {
				t.Fatalf("expected stopword %q removed, got %q", stop, got)
			}
		}
	}
}

func TestCleanCollapsesWhitespace(t *testing.T) {
	p := NewPreprocessor()
	got := p.Clean("  hello   world  ")
	if got != "hello world" {
		t.Fatalf("expected collapsed whitespace, got %q", got)
	}
}

func TestCleanStemsInflections(t *testing.T) {
	p := NewPreprocessor()
	if p.Clean("walk") != p.Clean("walks") {
		t.Fatal("expected plural to stem to the singular")
	}
	if p.Clean("walked") != p.Clean("walking") {
		t.Fatalf("expected walked/walking to stem alike, got %q vs %q", p.Clean("walked"), p.Clean("walking"))
	}
}
