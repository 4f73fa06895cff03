package skills

import (
	"regexp"
	"strings"
)

// Vocabulary is the curated skill catalog: canonical skills grouped by
// category, synonym groups for matching, and a small table of high-ambiguity
// variant spellings. Built once at startup and read-only afterwards, so it is
// safe to share across workers.
type Vocabulary struct {
	categories map[string][]string
	all        []string
	synonyms   map[string][]string
	variants   map[string][]string

	skillPatterns   map[string]*regexp.Regexp
	variantPatterns map[string]map[string]*regexp.Regexp
}

var defaultCategories = map[string][]string{
	"programming_languages": {
		"python", "java", "javascript", "typescript", "c++", "c#", "php",
		"ruby", "go", "rust", "kotlin", "swift", "scala", "r", "matlab",
		"perl", "bash", "shell scripting", "powershell",
	},
	"web_technologies": {
		"html", "css", "react", "angular", "vue.js", "node.js", "express.js",
		"django", "flask", "spring boot", "laravel", "wordpress", "jquery",
		"bootstrap", "tailwind css", "sass", "webpack",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "sqlite", "redis", "elasticsearch",
		"oracle", "sql server", "cassandra", "dynamodb", "neo4j",
	},
	"cloud_platforms": {
		"aws", "azure", "gcp", "google cloud platform", "docker", "kubernetes",
		"jenkins", "terraform", "ansible", "helm",
	},
	"data_science": {
		"machine learning", "deep learning", "artificial intelligence", "nlp",
		"computer vision", "tensorflow", "pytorch", "scikit-learn", "pandas",
		"numpy", "tableau", "power bi",
	},
	"tools_frameworks": {
		"git", "github", "gitlab", "bitbucket", "jira", "confluence", "slack",
		"figma", "photoshop", "illustrator", "sketch", "postman", "swagger",
	},
	"methodologies": {
		"agile", "scrum", "kanban", "devops", "ci/cd", "tdd", "bdd",
		"microservices", "rest api", "graphql", "soap", "mvc",
	},
	"soft_skills": {
		"leadership", "communication", "teamwork", "problem solving",
		"critical thinking", "project management", "time management",
	},
}

// Synonym groups: every surface form in a group matches every other form.
var defaultSynonyms = map[string][]string{
	"javascript":                  {"js", "ecmascript", "javascript", "java script"},
	"python":                      {"python", "python3", "py"},
	"node.js":                     {"nodejs", "node.js", "node", "node js"},
	"react":                       {"react", "react.js", "reactjs"},
	"angular":                     {"angular", "angular.js", "angularjs"},
	"vue.js":                      {"vue", "vue.js", "vuejs"},
	"machine learning":            {"ml", "machine learning", "artificial intelligence", "ai"},
	"deep learning":               {"dl", "deep learning", "neural networks"},
	"natural language processing": {"nlp", "natural language processing", "text processing"},
	"database":                    {"db", "database", "databases", "data storage"},
	"sql":                         {"sql", "structured query language", "database queries"},
	"nosql":                       {"nosql", "no sql", "non-relational database"},
	"api":                         {"api", "application programming interface", "rest api", "restful api"},
	"devops":                      {"devops", "dev ops", "development operations"},
	"ci/cd":                       {"ci/cd", "continuous integration", "continuous deployment", "cicd"},
	"docker":                      {"docker", "containerization", "containers"},
	"kubernetes":                  {"kubernetes", "k8s", "container orchestration"},
	"aws":                         {"aws", "amazon web services", "amazon aws"},
	"azure":                       {"azure", "microsoft azure", "azure cloud"},
	"gcp":                         {"gcp", "google cloud", "google cloud platform"},
}

// Variant spellings that the canonical-skill pass misses or mis-tokenizes.
// Scanned in a fixed secondary pass with the same whole-word rule.
var defaultVariants = map[string][]string{
	"javascript": {"js", "javascript", "ecmascript"},
	"python":     {"python", "python3", "py"},
	"node.js":    {"nodejs", "node.js", "node"},
	"react":      {"react.js", "reactjs", "react"},
	"angular":    {"angular", "angular.js", "angularjs"},
	"vue.js":     {"vue", "vue.js", "vuejs"},
}

// DefaultVocabulary builds the process-wide vocabulary. Word-boundary
// patterns are compiled here so Tag does no compilation per call.
func DefaultVocabulary() *Vocabulary {
	v := &Vocabulary{
		categories:      defaultCategories,
		synonyms:        defaultSynonyms,
		variants:        defaultVariants,
		skillPatterns:   make(map[string]*regexp.Regexp),
		variantPatterns: make(map[string]map[string]*regexp.Regexp),
	}
	for _, list := range v.categories {
		v.all = append(v.all, list...)
	}
	for _, skill := range v.all {
		v.skillPatterns[skill] = wordPattern(skill)
	}
	for canonical, forms := range v.variants {
		v.variantPatterns[canonical] = make(map[string]*regexp.Regexp, len(forms))
		for _, form := range forms {
			v.variantPatterns[canonical][form] = wordPattern(form)
		}
	}
	return v
}

func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(term)) + `\b`)
}

// All returns every canonical skill across categories.
func (v *Vocabulary) All() []string {
	return v.all
}

// Categories returns the category -> canonical skills mapping.
func (v *Vocabulary) Categories() map[string][]string {
	return v.categories
}

// Normalize collapses a skill to its comparison key: lowercased, trimmed,
// dots removed and hyphens turned into spaces ("Node.JS" and "node js"
// normalize to the same key).
func Normalize(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "-", " ")
	return s
}

// SynonymsOf returns the whole synonym group for a skill. The lookup is
// symmetric: querying with any member of a group returns the group. A skill
// with no registered group returns itself.
func (v *Vocabulary) SynonymsOf(skill string) []string {
	key := Normalize(skill)
	for _, group := range v.synonyms {
		for _, form := range group {
			if Normalize(form) == key {
				return group
			}
		}
	}
	return []string{skill}
}

// TitleCase uppercases the first letter of every word, matching the casing
// used for canonical skill names ("node.js" -> "Node.Js").
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		switch {
		case startOfWord && r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		case !startOfWord && r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
		startOfWord = !isWordRune(r)
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
