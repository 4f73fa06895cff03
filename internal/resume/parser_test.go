package resume

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/muhammadolammi/skillmatchworker/internal/extract"
	"github.com/muhammadolammi/skillmatchworker/internal/skills"
)

func newTestParser() *Parser {
	log := zap.NewNop()
	tagger := skills.NewTagger(skills.DefaultVocabulary(), nil)
	return NewParser(extract.New(log), tagger, log)
}

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		body.WriteString(p)
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	p := newTestParser()
	content := buildDocx(t,
		"Jane Doe",
		"jane.doe@example.com",
		"Python developer with 5+ years of experience",
		"Shipped services on Docker and AWS",
	)

	doc, err := p.Parse(context.Background(), content, extract.KindDOCX)
	require.NoError(t, err)

	assert.Contains(t, doc.Text, "Jane Doe")
	assert.Contains(t, doc.Skills, "Python")
	assert.Contains(t, doc.Skills, "Docker")
	assert.Contains(t, doc.Skills, "Aws")
	assert.Equal(t, 5, doc.Metadata.ExperienceYears)
	assert.Equal(t, len(doc.Text), doc.Metadata.TextLength)
	assert.Equal(t, len(doc.Skills), doc.Metadata.SkillCount)
	assert.Equal(t, "docx-paragraphs", doc.Metadata.Extractor)
	assert.Equal(t, []string{"jane.doe@example.com"}, doc.Metadata.Contact.Emails)
}

func TestParseExtractionFailurePropagates(t *testing.T) {
	p := newTestParser()

	_, err := p.Parse(context.Background(), []byte("garbage"), extract.KindPDF)
	require.Error(t, err)

	var extractErr *extract.ExtractionError
	assert.ErrorAs(t, err, &extractErr)
}

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"plain", "5+ years of experience in Python", 5},
		{"yrs abbreviation", "3 yrs experience with Go", 3},
		{"no of", "7 years experience", 7},
		{"takes the maximum", "2 years of experience in Go, 10 years of experience overall", 10},
		{"no mention", "senior engineer", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExperienceYears(tt.text))
		})
	}
}

func TestContactInfoFrom(t *testing.T) {
	text := "Reach me at jane.doe@example.com or (555) 123-4567.\n" +
		"Profiles: linkedin.com/in/jane-doe and github.com/janedoe"

	info := ContactInfoFrom(text)

	assert.Equal(t, []string{"jane.doe@example.com"}, info.Emails)
	require.Len(t, info.Phones, 1)
	assert.Contains(t, info.Phones[0], "123-4567")
	assert.Equal(t, []string{"linkedin.com/in/jane-doe"}, info.LinkedIn)
	assert.Equal(t, []string{"github.com/janedoe"}, info.GitHub)
}

func TestContactInfoFromEmptyText(t *testing.T) {
	info := ContactInfoFrom("")
	assert.Empty(t, info.Emails)
	assert.Empty(t, info.Phones)
	assert.Empty(t, info.LinkedIn)
	assert.Empty(t, info.GitHub)
}
