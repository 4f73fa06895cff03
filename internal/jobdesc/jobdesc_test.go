package jobdesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadolammi/skillmatchworker/internal/skills"
)

func newTestTagger() *skills.Tagger {
	return skills.NewTagger(skills.DefaultVocabulary(), nil)
}

func TestSplitSections(t *testing.T) {
	text := "Requirements:\nPython\nDocker\nPreferred:\nKubernetes"

	sections := SplitSections(text)

	assert.Equal(t, map[string]string{
		SectionGeneral:      "",
		SectionRequirements: "Python\nDocker",
		SectionPreferred:    "Kubernetes",
	}, sections)
}

func TestSplitSectionsGeneralLeadIn(t *testing.T) {
	text := "We are hiring!\nGreat team.\nResponsibilities:\nBuild services"

	sections := SplitSections(text)

	assert.Equal(t, "We are hiring!\nGreat team.", sections[SectionGeneral])
	assert.Equal(t, "Build services", sections[SectionResponsibilities])
}

func TestSplitSectionsRepeatedHeaderLastWins(t *testing.T) {
	text := "Requirements:\nPython\nRequirements:\nGo"

	sections := SplitSections(text)

	assert.Equal(t, "Go", sections[SectionRequirements])
}

func TestSplitSectionsHeaderPriority(t *testing.T) {
	// "must have" belongs to the requirements table, which is scanned
	// before the preferred table even though "plus" also appears.
	sections := SplitSections("Must have skills plus extras:\nPython")
	assert.Equal(t, "Python", sections[SectionRequirements])
}

func TestSplitSectionsEmptyText(t *testing.T) {
	assert.Empty(t, SplitSections(""))
}

func TestClassifyRequirements(t *testing.T) {
	tagger := newTestTagger()
	text := "Python is required. Kubernetes would be a plus. We also use Docker."

	set := ClassifyRequirements(text, tagger)

	assert.Contains(t, set.Required, "Python")
	assert.Contains(t, set.Preferred, "Kubernetes")
	assert.Contains(t, set.Required, "Docker", "unlabeled sentences default to required")
	assert.NotContains(t, set.Preferred, "Python")
}

func TestClassifyRequirementsRequiredCueWinsOverPreferred(t *testing.T) {
	tagger := newTestTagger()
	// Sentence carries both cue kinds; the required cue wins.
	set := ClassifyRequirements("Terraform is required and a big plus", tagger)

	assert.Contains(t, set.Required, "Terraform")
	assert.NotContains(t, set.Preferred, "Terraform")
}

func TestClassifyRequirementsDeduplicates(t *testing.T) {
	tagger := newTestTagger()
	set := ClassifyRequirements("Python needed. Python used daily. Python everywhere.", tagger)

	count := 0
	for _, s := range set.Required {
		if s == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestClassifyRequirementsEmptyText(t *testing.T) {
	set := ClassifyRequirements("", newTestTagger())
	assert.Empty(t, set.Required)
	assert.Empty(t, set.Preferred)
}

func TestExperienceLevel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected ExperienceRange
	}{
		{"single", "5+ years of experience with Python", ExperienceRange{MinYears: 5}},
		{"no of", "3 years experience in Go", ExperienceRange{MinYears: 3}},
		{"minimum", "minimum 4 years in backend work", ExperienceRange{MinYears: 4}},
		{"at least", "at least 2 years shipping software", ExperienceRange{MinYears: 2}},
		{"range", "3-5 years experience required", ExperienceRange{MinYears: 3, MaxYears: 5}},
		{"to range", "2 to 4 years in DevOps", ExperienceRange{MinYears: 2, MaxYears: 4}},
		{"none", "senior engineer wanted", ExperienceRange{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExperienceLevel(tt.text))
		})
	}
}

func TestParse(t *testing.T) {
	tagger := newTestTagger()
	text := "Backend role.\n" +
		"Requirements:\n" +
		"Python and Docker are required.\n" +
		"5+ years of experience.\n" +
		"Preferred:\n" +
		"Kubernetes is a plus."

	profile := Parse(text, tagger)
	require.NotNil(t, profile)

	assert.Contains(t, profile.Skills, "Python")
	assert.Contains(t, profile.Skills, "Docker")
	assert.Contains(t, profile.Skills, "Kubernetes")
	assert.Contains(t, profile.Requirements.Required, "Python")
	assert.Contains(t, profile.Requirements.Preferred, "Kubernetes")
	assert.Equal(t, 5, profile.Metadata.Experience.MinYears)
	assert.Equal(t, len(profile.Skills), profile.Metadata.TotalSkills)
	assert.Contains(t, profile.Metadata.Sections, SectionRequirements)
}

func TestParseEmptyText(t *testing.T) {
	profile := Parse("", newTestTagger())

	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Requirements.Required)
	assert.Empty(t, profile.Sections)
	assert.Zero(t, profile.Metadata.TotalSkills)
}
