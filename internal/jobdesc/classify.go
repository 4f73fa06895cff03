package jobdesc

import (
	"regexp"
	"strings"

	"github.com/muhammadolammi/skillmatchworker/internal/skills"
)

var requirementCues = []string{
	"required", "must have", "essential", "mandatory", "minimum",
	"necessary", "prerequisite", "critical", "key requirement",
}

var preferredCues = []string{
	"preferred", "nice to have", "plus", "bonus", "advantage",
	"desirable", "ideal", "would be great",
}

// RequirementSet partitions the skills mentioned in a job description into
// required and preferred. The same skill can land in both sets when it shows
// up in differently cued sentences; each set is deduplicated on its own.
type RequirementSet struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

var sentenceDelimiters = regexp.MustCompile(`[.!?\n]`)

// ClassifyRequirements splits the text into sentences, tags each sentence's
// skills, and buckets them by cue keywords. Sentences with no cue default to
// required: unlabeled mentions are assumed mandatory.
func ClassifyRequirements(text string, tagger *skills.Tagger) RequirementSet {
	if text == "" {
		return RequirementSet{Required: []string{}, Preferred: []string{}}
	}

	requiredSeen := make(map[string]bool)
	preferredSeen := make(map[string]bool)
	var required, preferred []string

	for _, sentence := range sentenceDelimiters.Split(text, -1) {
		lower := strings.ToLower(strings.TrimSpace(sentence))
		if lower == "" {
			continue
		}
		tagged := tagger.Tag(sentence)
		if len(tagged) == 0 {
			continue
		}

		seen, bucket := requiredSeen, &required
		if !containsAny(lower, requirementCues) && containsAny(lower, preferredCues) {
			seen, bucket = preferredSeen, &preferred
		}
		for _, skill := range tagged {
			if !seen[skill] {
				seen[skill] = true
				*bucket = append(*bucket, skill)
			}
		}
	}

	if required == nil {
		required = []string{}
	}
	if preferred == nil {
		preferred = []string{}
	}
	return RequirementSet{Required: required, Preferred: preferred}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
