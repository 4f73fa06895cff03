// Package resume turns uploaded resume files into structured documents:
// plain text, recognized skills, and audit metadata.
package resume

import (
	"context"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/muhammadolammi/skillmatchworker/internal/extract"
	"github.com/muhammadolammi/skillmatchworker/internal/skills"
)

// ContactInfo holds contact details pulled out of the resume text.
type ContactInfo struct {
	Emails   []string `json:"emails"`
	Phones   []string `json:"phones"`
	LinkedIn []string `json:"linkedin"`
	GitHub   []string `json:"github"`
}

// Metadata describes how a document was parsed and what was found.
type Metadata struct {
	TextLength      int         `json:"text_length"`
	SkillCount      int         `json:"skill_count"`
	ExperienceYears int         `json:"experience_years"`
	Extractor       string      `json:"extractor"`
	Contact         ContactInfo `json:"contact_info"`
}

// Document is the parsed resume. Built fresh per parse call, never shared.
type Document struct {
	Text     string   `json:"text"`
	Skills   []string `json:"skills"`
	Metadata Metadata `json:"metadata"`
}

// Parser wires the extractor and tagger into one parse call.
type Parser struct {
	extractor *extract.Extractor
	tagger    *skills.Tagger
	log       *zap.Logger
}

func NewParser(extractor *extract.Extractor, tagger *skills.Tagger, log *zap.Logger) *Parser {
	return &Parser{extractor: extractor, tagger: tagger, log: log}
}

// Parse extracts text from the raw file bytes and builds the document.
// Extraction failures propagate as *extract.ExtractionError; everything past
// extraction is best-effort and cannot fail.
func (p *Parser) Parse(ctx context.Context, content []byte, kind extract.Kind) (*Document, error) {
	res, err := p.extractor.Extract(ctx, content, kind)
	if err != nil {
		return nil, err
	}

	tagged := p.tagger.Tag(res.Text)
	doc := &Document{
		Text:   res.Text,
		Skills: tagged,
		Metadata: Metadata{
			TextLength:      len(res.Text),
			SkillCount:      len(tagged),
			ExperienceYears: ExperienceYears(res.Text),
			Extractor:       res.Strategy,
			Contact:         ContactInfoFrom(res.Text),
		},
	}
	p.log.Debug("resume parsed",
		zap.String("extractor", res.Strategy),
		zap.Int("text_length", doc.Metadata.TextLength),
		zap.Int("skills", doc.Metadata.SkillCount))
	return doc, nil
}

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`\b(?:\+?\d{1,3}[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}\b`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9-]+`)
)

// ContactInfoFrom collects emails, phone numbers and profile links.
func ContactInfoFrom(text string) ContactInfo {
	return ContactInfo{
		Emails:   emailPattern.FindAllString(text, -1),
		Phones:   phonePattern.FindAllString(text, -1),
		LinkedIn: linkedinPattern.FindAllString(text, -1),
		GitHub:   githubPattern.FindAllString(text, -1),
	}
}

var experiencePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:yrs?|years?)\s*(?:of\s*)?experience`)

// ExperienceYears returns the largest "N years of experience" figure in the
// text, or 0 when none is stated.
func ExperienceYears(text string) int {
	max := 0
	for _, m := range experiencePattern.FindAllStringSubmatch(text, -1) {
		if years, err := strconv.Atoi(m[1]); err == nil && years > max {
			max = years
		}
	}
	return max
}
