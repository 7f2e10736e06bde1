package dictionary_test

import (
	"context"
	"strings"
	"testing"

	"smartdict/dictionary"
)

func meaning(pos string, defs ...dictionary.Definition) dictionary.Meaning {
	return dictionary.Meaning{PartOfSpeech: pos, Definitions: defs}
}

func def(text string) dictionary.Definition {
	return dictionary.Definition{Definition: text}
}

func TestFormatHeaderWithPhonetic(t *testing.T) {
	agent := newAgent(t, serveEntries(t, []dictionary.Entry{{
		Word:     "ephemeral",
		Phonetic: "/ɪˈfɛməɹəl/",
		Meanings: []dictionary.Meaning{meaning("adjective", def("lasting a short time"))},
	}}))

	got := agent.Process(context.Background(), "define ephemeral")
	if !strings.HasPrefix(got, "**EPHEMERAL** _/ɪˈfɛməɹəl/_") {
		t.Fatalf("unexpected header: %q", got)
	}
	if !strings.Contains(got, "**1. (adjective)**") {
		t.Fatalf("missing numbered meaning: %q", got)
	}
	if !strings.Contains(got, "lasting a short time") {
		t.Fatalf("missing definition text: %q", got)
	}
}

func TestFormatExampleLine(t *testing.T) {
	agent := newAgent(t, serveEntries(t, []dictionary.Entry{{
		Word: "zenith",
		Meanings: []dictionary.Meaning{
			meaning("noun", dictionary.Definition{
				Definition: "the highest point",
				Example:    "the sun was at its zenith",
			}),
		},
	}}))

	got := agent.Process(context.Background(), "define zenith")
	if !strings.Contains(got, "Example: _the sun was at its zenith_") {
		t.Fatalf("missing example line: %q", got)
	}
}

func TestFormatCapsAtThreeMeanings(t *testing.T) {
	meanings := []dictionary.Meaning{
		meaning("noun", def("first")),
		meaning("verb", def("second")),
		meaning("adjective", def("third")),
		meaning("adverb", def("fourth")),
		meaning("interjection", def("fifth")),
	}
	agent := newAgent(t, serveEntries(t, []dictionary.Entry{{Word: "run", Meanings: meanings}}))

	got := agent.Process(context.Background(), "define run")
	for _, want := range []string{"**1. (noun)**", "**2. (verb)**", "**3. (adjective)**"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "**4.") || strings.Contains(got, "fourth") {
		t.Fatalf("output exceeded three meanings: %q", got)
	}
}

// The three-meaning window is positional over the raw list; an empty meaning
// inside the window is skipped afterwards, so the output shrinks rather than
// pulling in the fourth meaning.
func TestFormatWindowsBeforeFiltering(t *testing.T) {
	meanings := []dictionary.Meaning{
		meaning("noun", def("first")),
		meaning("verb"), // no definitions
		meaning("adjective", def("third")),
		meaning("adverb", def("fourth")),
	}
	agent := newAgent(t, serveEntries(t, []dictionary.Entry{{Word: "set", Meanings: meanings}}))

	got := agent.Process(context.Background(), "define set")
	if !strings.Contains(got, "**1. (noun)**") {
		t.Fatalf("missing first meaning: %q", got)
	}
	if !strings.Contains(got, "**2. (adjective)**") {
		t.Fatalf("empty meaning consumed a counter slot: %q", got)
	}
	if strings.Contains(got, "**3.") || strings.Contains(got, "fourth") {
		t.Fatalf("filter ran before windowing: %q", got)
	}
}

func TestFormatSynonymsFromFirstMeaning(t *testing.T) {
	meanings := []dictionary.Meaning{
		{
			PartOfSpeech: "adjective",
			Definitions:  []dictionary.Definition{def("happy")},
			Synonyms:     []string{"glad", "joyful", "merry", "cheerful", "content", "jolly", "sunny"},
		},
		{
			PartOfSpeech: "noun",
			Definitions:  []dictionary.Definition{def("a happy person")},
			Synonyms:     []string{"optimist"},
		},
	}
	agent := newAgent(t, serveEntries(t, []dictionary.Entry{{Word: "happy", Meanings: meanings}}))

	got := agent.Process(context.Background(), "define happy")
	if !strings.Contains(got, "Similar words: glad, joyful, merry, cheerful, content") {
		t.Fatalf("missing synonym line: %q", got)
	}
	if strings.Contains(got, "jolly") || strings.Contains(got, "optimist") {
		t.Fatalf("synonym line not capped to first five of first meaning: %q", got)
	}
}

func TestFormatMissingPartOfSpeech(t *testing.T) {
	agent := newAgent(t, serveEntries(t, []dictionary.Entry{{
		Word:     "thing",
		Meanings: []dictionary.Meaning{meaning("", def("an object"))},
	}}))

	got := agent.Process(context.Background(), "define thing")
	if !strings.Contains(got, "**1. (unknown)**") {
		t.Fatalf("missing fallback part of speech: %q", got)
	}
}

func TestFormatTrimsTrailingWhitespace(t *testing.T) {
	agent := newAgent(t, serveEntries(t, []dictionary.Entry{{
		Word:     "tidy",
		Meanings: []dictionary.Meaning{meaning("adjective", def("neat"))},
	}}))

	got := agent.Process(context.Background(), "define tidy")
	if got != strings.TrimSpace(got) {
		t.Fatalf("output has surrounding whitespace: %q", got)
	}
}
