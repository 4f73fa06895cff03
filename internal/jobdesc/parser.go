package jobdesc

import (
	"regexp"
	"strconv"

	"github.com/muhammadolammi/skillmatchworker/internal/skills"
)

// ExperienceRange is the experience demand stated by a job description.
// Max stays 0 when only a lower bound is given.
type ExperienceRange struct {
	MinYears int `json:"min_years"`
	MaxYears int `json:"max_years"`
}

// Range patterns are tried before single-number patterns so "3-5 years"
// is not read as "3 years".
var (
	experienceRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)-(\d+)\s*years?\s*experience`),
		regexp.MustCompile(`(?i)(\d+)\s*to\s*(\d+)\s*years?`),
	}
	experienceSinglePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*of\s*experience`),
		regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*experience`),
		regexp.MustCompile(`(?i)minimum\s*(\d+)\+?\s*years?`),
		regexp.MustCompile(`(?i)at least\s*(\d+)\+?\s*years?`),
	}
)

// ExperienceLevel extracts the stated experience requirement, zero when the
// text names none.
func ExperienceLevel(text string) ExperienceRange {
	for _, p := range experienceRangePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			min, _ := strconv.Atoi(m[1])
			max, _ := strconv.Atoi(m[2])
			return ExperienceRange{MinYears: min, MaxYears: max}
		}
	}
	for _, p := range experienceSinglePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			min, _ := strconv.Atoi(m[1])
			return ExperienceRange{MinYears: min}
		}
	}
	return ExperienceRange{}
}

// Metadata summarizes a parsed job description.
type Metadata struct {
	TotalSkills     int             `json:"total_skills"`
	RequiredSkills  int             `json:"required_skills"`
	PreferredSkills int             `json:"preferred_skills"`
	Experience      ExperienceRange `json:"experience_required"`
	Sections        []string        `json:"sections"`
}

// Profile is the fully parsed job description.
type Profile struct {
	Skills       []string          `json:"skills"`
	Requirements RequirementSet    `json:"requirements"`
	Sections     map[string]string `json:"sections"`
	Metadata     Metadata          `json:"metadata"`
}

// Parse runs the full job-description pipeline: sections, skill tagging,
// requirement classification and experience extraction.
func Parse(text string, tagger *skills.Tagger) *Profile {
	if text == "" {
		return &Profile{
			Skills:       []string{},
			Requirements: RequirementSet{Required: []string{}, Preferred: []string{}},
			Sections:     map[string]string{},
		}
	}

	sections := SplitSections(text)
	tagged := tagger.Tag(text)
	requirements := ClassifyRequirements(text, tagger)

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}

	return &Profile{
		Skills:       tagged,
		Requirements: requirements,
		Sections:     sections,
		Metadata: Metadata{
			TotalSkills:     len(tagged),
			RequiredSkills:  len(requirements.Required),
			PreferredSkills: len(requirements.Preferred),
			Experience:      ExperienceLevel(text),
			Sections:        names,
		},
	}
}
