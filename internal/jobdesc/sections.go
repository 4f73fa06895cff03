// Package jobdesc parses job-description text: section splitting, skill
// extraction, required-vs-preferred classification and experience demands.
package jobdesc

import "strings"

// Section names produced by SplitSections.
const (
	SectionGeneral          = "general"
	SectionRequirements     = "requirements"
	SectionResponsibilities = "responsibilities"
	SectionPreferred        = "preferred"
	SectionBenefits         = "benefits"
	SectionCompany          = "company"
)

// Header keyword tables, scanned in this fixed priority order. The first
// table with a keyword contained in the line wins.
var sectionHeaders = []struct {
	name     string
	keywords []string
}{
	{SectionRequirements, []string{"requirements", "qualifications", "skills required", "must have"}},
	{SectionResponsibilities, []string{"responsibilities", "duties", "role", "what you will do"}},
	{SectionPreferred, []string{"preferred", "nice to have", "plus", "bonus"}},
	{SectionBenefits, []string{"benefits", "perks", "what we offer", "compensation"}},
	{SectionCompany, []string{"about us", "company", "who we are"}},
}

// SplitSections segments the text into named sections by scanning lines for
// header keywords. Content before the first header lands in "general". A
// repeated header overwrites the earlier section (last write wins); sections
// whose header matched but collected no lines are kept as empty strings.
func SplitSections(text string) map[string]string {
	if text == "" {
		return map[string]string{}
	}

	sections := make(map[string]string)
	current := SectionGeneral
	var buffer []string

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		matched := ""
		for _, header := range sectionHeaders {
			for _, kw := range header.keywords {
				if strings.Contains(lower, kw) {
					matched = header.name
					break
				}
			}
			if matched != "" {
				break
			}
		}

		if matched != "" {
			sections[current] = strings.Join(buffer, "\n")
			current = matched
			buffer = nil
			continue
		}
		buffer = append(buffer, line)
	}
	sections[current] = strings.Join(buffer, "\n")

	return sections
}
