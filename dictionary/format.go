package dictionary

import (
	"fmt"
	"log"
	"strings"
)

const (
	// maxMeanings is the positional window over the raw meanings list.
	// Slicing happens before the empty-definition filter, so an empty
	// meaning inside the window shrinks the output instead of pulling in
	// a fourth meaning.
	maxMeanings = 3
	maxSynonyms = 5
)

// formatDefinition renders the first upstream entry as display text. The
// upstream schema is untrusted, so any panic here is converted to a fixed
// formatting-error message.
func formatDefinition(word string, entry Entry) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Dict] Formatting error for %q: %v", word, r)
			out = fmt.Sprintf("Error formatting the definition for '%s'.", word)
		}
	}()

	if len(entry.Meanings) == 0 {
		return fmt.Sprintf("No meanings found for '%s'.", word)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**", strings.ToUpper(word))
	if entry.Phonetic != "" {
		fmt.Fprintf(&b, " _%s_", entry.Phonetic)
	}
	b.WriteString("\n\n")

	window := entry.Meanings
	if len(window) > maxMeanings {
		window = window[:maxMeanings]
	}

	count := 0
	for _, meaning := range window {
		if len(meaning.Definitions) == 0 {
			continue
		}
		first := meaning.Definitions[0]

		pos := meaning.PartOfSpeech
		if pos == "" {
			pos = "unknown"
		}

		count++
		fmt.Fprintf(&b, "**%d. (%s)**\n", count, pos)
		fmt.Fprintf(&b, "   %s\n", first.Definition)
		if first.Example != "" {
			fmt.Fprintf(&b, "   Example: _%s_\n", first.Example)
		}
		b.WriteString("\n")
	}

	if syns := entry.Meanings[0].Synonyms; len(syns) > 0 {
		if len(syns) > maxSynonyms {
			syns = syns[:maxSynonyms]
		}
		fmt.Fprintf(&b, "Similar words: %s\n", strings.Join(syns, ", "))
	}

	return strings.TrimSpace(b.String())
}
