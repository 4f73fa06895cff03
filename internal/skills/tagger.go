package skills

import (
	"sort"
	"strings"
)

// Entity is a named entity produced by an optional recognizer backend.
type Entity struct {
	Text  string
	Label string
}

// EntityRecognizer augments tagging with named-entity candidates. The pass is
// best-effort: a recognizer error skips the pass, it never fails the tag call.
type EntityRecognizer interface {
	Entities(text string) ([]Entity, error)
}

// Tagger recognizes canonical skills in free text.
type Tagger struct {
	vocab *Vocabulary
	ner   EntityRecognizer
}

// NewTagger returns a tagger over the given vocabulary. recognizer may be nil.
func NewTagger(vocab *Vocabulary, recognizer EntityRecognizer) *Tagger {
	return &Tagger{vocab: vocab, ner: recognizer}
}

// Tag scans text for known skills using case-insensitive whole-word matches
// and returns the deduplicated, title-cased canonical names, sorted for
// deterministic output. Empty input returns an empty set. Tag never fails.
func (t *Tagger) Tag(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	found := make(map[string]bool)

	for _, skill := range t.vocab.all {
		if t.vocab.skillPatterns[skill].MatchString(text) {
			found[TitleCase(skill)] = true
		}
	}

	// Secondary pass over ambiguous variants ("js", "node", ...) that map
	// back to a canonical skill. Same whole-word rule as above.
	for canonical, patterns := range t.vocab.variantPatterns {
		for _, p := range patterns {
			if p.MatchString(text) {
				found[TitleCase(canonical)] = true
				break
			}
		}
	}

	if t.ner != nil {
		t.tagEntities(text, found)
	}

	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// tagEntities adds organization/product entities whose text contains a known
// skill. Recognizer failures are ignored.
func (t *Tagger) tagEntities(text string, found map[string]bool) {
	entities, err := t.ner.Entities(text)
	if err != nil {
		return
	}
	for _, ent := range entities {
		if ent.Label != "ORG" && ent.Label != "PRODUCT" {
			continue
		}
		for _, skill := range t.vocab.all {
			if t.vocab.skillPatterns[skill].MatchString(ent.Text) {
				found[TitleCase(ent.Text)] = true
				break
			}
		}
	}
}
