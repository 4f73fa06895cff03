package matcher

import (
	"regexp"
	"sort"
	"strings"

	"github.com/muhammadolammi/skillmatchworker/internal/skills"
)

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

var highPriorityCues = []string{
	"required", "must have", "essential", "mandatory", "critical",
	"minimum", "prerequisite", "necessary",
}

var mediumPriorityCues = []string{
	"important", "preferred", "experience with", "knowledge of",
}

var priorityRank = map[string]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// prioritizeMissing ranks missing skills by how urgently the context text
// demands them. A skill is High when it and a high-priority cue both appear
// anywhere in the lowercased text (text-scoped, not sentence-scoped), Medium
// for medium cues, Low otherwise. Sorted by (priority, mention count)
// descending; the sort is stable so ties keep input order.
func (m *Matcher) prioritizeMissing(missing []string, contextText string) []MissingSkill {
	prioritized := make([]MissingSkill, 0, len(missing))
	lowerText := strings.ToLower(contextText)

	for _, skill := range missing {
		entry := MissingSkill{Skill: skill, Priority: PriorityLow}
		if lowerText != "" {
			skillLower := strings.ToLower(skill)
			entry.Mentions = countWholeWord(lowerText, skills.Normalize(skill))

			present := strings.Contains(lowerText, skillLower)
			switch {
			case present && containsAnyCue(lowerText, highPriorityCues):
				entry.Priority = PriorityHigh
			case present && containsAnyCue(lowerText, mediumPriorityCues):
				entry.Priority = PriorityMedium
			}
		}
		prioritized = append(prioritized, entry)
	}

	sort.SliceStable(prioritized, func(i, j int) bool {
		ri, rj := priorityRank[prioritized[i].Priority], priorityRank[prioritized[j].Priority]
		if ri != rj {
			return ri > rj
		}
		return prioritized[i].Mentions > prioritized[j].Mentions
	})
	return prioritized
}

func countWholeWord(text, word string) int {
	if word == "" {
		return 0
	}
	p, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return 0
	}
	return len(p.FindAllString(text, -1))
}

func containsAnyCue(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
