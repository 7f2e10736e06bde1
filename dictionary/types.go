package dictionary

// Upstream shapes for api.dictionaryapi.dev. The API returns an array of
// entries (one per etymology). The schema is not under our control, so
// every field is treated as optional.

// Entry is a single lexical record for a word.
type Entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic"`
	Phonetics []Phonetic `json:"phonetics"`
	Meanings  []Meaning  `json:"meanings"`
}

// Phonetic is pronunciation data for an entry.
type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// Meaning groups the definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
}

// Definition is one definition with an optional usage example.
type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}
