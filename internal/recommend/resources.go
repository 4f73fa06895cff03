// Package recommend maps a skill name to a curated bundle of learning
// resources. Pure constant data, loaded once; unknown skills fall back to a
// generic web-search bundle.
package recommend

import (
	"fmt"
	"net/url"

	"github.com/muhammadolammi/skillmatchworker/internal/skills"
)

// Resource is one learning resource inside a bundle.
type Resource struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
	Free bool   `json:"free"`
}

// Bundle describes how to learn one skill.
type Bundle struct {
	Skill        string     `json:"skill"`
	Priority     string     `json:"priority"`
	Category     string     `json:"category"`
	Difficulty   string     `json:"difficulty"`
	TimeEstimate string     `json:"time_estimate"`
	Resources    []Resource `json:"resources"`
}

var curated = map[string]Bundle{
	"python": {
		Priority: "High", Category: "Programming Languages",
		Difficulty: "Beginner to Advanced", TimeEstimate: "2-4 weeks",
		Resources: []Resource{
			{Name: "Python.org Official Tutorial", Type: "Documentation", URL: "https://docs.python.org/3/tutorial/", Free: true},
			{Name: "Automate the Boring Stuff with Python", Type: "Book/Course", URL: "https://automatetheboringstuff.com/", Free: true},
			{Name: "Python for Everybody (Coursera)", Type: "Online Course", URL: "https://www.coursera.org/specializations/python", Free: false},
		},
	},
	"javascript": {
		Priority: "High", Category: "Programming Languages",
		Difficulty: "Beginner to Advanced", TimeEstimate: "3-5 weeks",
		Resources: []Resource{
			{Name: "MDN Web Docs - JavaScript", Type: "Documentation", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript", Free: true},
			{Name: "JavaScript.info", Type: "Interactive Tutorial", URL: "https://javascript.info/", Free: true},
		},
	},
	"typescript": {
		Priority: "High", Category: "Programming Languages",
		Difficulty: "Intermediate", TimeEstimate: "2-3 weeks",
		Resources: []Resource{
			{Name: "TypeScript Handbook", Type: "Documentation", URL: "https://www.typescriptlang.org/docs/", Free: true},
		},
	},
	"go": {
		Priority: "High", Category: "Programming Languages",
		Difficulty: "Intermediate", TimeEstimate: "2-4 weeks",
		Resources: []Resource{
			{Name: "A Tour of Go", Type: "Interactive Tutorial", URL: "https://go.dev/tour/", Free: true},
			{Name: "Go by Example", Type: "Documentation", URL: "https://gobyexample.com/", Free: true},
		},
	},
	"react": {
		Priority: "High", Category: "Web Technologies",
		Difficulty: "Intermediate", TimeEstimate: "3-4 weeks",
		Resources: []Resource{
			{Name: "React Documentation", Type: "Documentation", URL: "https://react.dev/learn", Free: true},
			{Name: "React - The Complete Guide (Udemy)", Type: "Video Course", URL: "https://www.udemy.com/course/react-the-complete-guide-incl-redux/", Free: false},
		},
	},
	"nodejs": {
		Priority: "High", Category: "Web Technologies",
		Difficulty: "Intermediate", TimeEstimate: "2-3 weeks",
		Resources: []Resource{
			{Name: "Node.js Official Documentation", Type: "Documentation", URL: "https://nodejs.org/en/docs/", Free: true},
		},
	},
	"sql": {
		Priority: "High", Category: "Databases",
		Difficulty: "Beginner to Intermediate", TimeEstimate: "2-3 weeks",
		Resources: []Resource{
			{Name: "SQLBolt", Type: "Interactive Tutorial", URL: "https://sqlbolt.com/", Free: true},
			{Name: "PostgreSQL Tutorial", Type: "Documentation", URL: "https://www.postgresqltutorial.com/", Free: true},
		},
	},
	"aws": {
		Priority: "High", Category: "Cloud Platforms",
		Difficulty: "Intermediate", TimeEstimate: "4-6 weeks",
		Resources: []Resource{
			{Name: "AWS Skill Builder", Type: "Online Course", URL: "https://skillbuilder.aws/", Free: true},
			{Name: "AWS Certified Cloud Practitioner", Type: "Certification", URL: "https://aws.amazon.com/certification/certified-cloud-practitioner/", Free: false},
		},
	},
	"docker": {
		Priority: "High", Category: "Cloud Platforms",
		Difficulty: "Intermediate", TimeEstimate: "1-2 weeks",
		Resources: []Resource{
			{Name: "Docker Getting Started", Type: "Documentation", URL: "https://docs.docker.com/get-started/", Free: true},
		},
	},
	"kubernetes": {
		Priority: "Medium", Category: "Cloud Platforms",
		Difficulty: "Advanced", TimeEstimate: "4-8 weeks",
		Resources: []Resource{
			{Name: "Kubernetes Basics", Type: "Interactive Tutorial", URL: "https://kubernetes.io/docs/tutorials/kubernetes-basics/", Free: true},
		},
	},
	"machine learning": {
		Priority: "Medium", Category: "Data Science",
		Difficulty: "Advanced", TimeEstimate: "8-12 weeks",
		Resources: []Resource{
			{Name: "Machine Learning (Coursera, Andrew Ng)", Type: "Online Course", URL: "https://www.coursera.org/learn/machine-learning", Free: false},
			{Name: "fast.ai Practical Deep Learning", Type: "Online Course", URL: "https://course.fast.ai/", Free: true},
		},
	},
}

// Lookup returns the curated bundle for a skill. Lookups go through the same
// normalization as matching, so "Node.JS" and "nodejs" hit the same entry.
// Unknown skills get a generic search-based bundle rather than nothing.
func Lookup(skill string) Bundle {
	key := skills.Normalize(skill)
	if bundle, ok := curated[key]; ok {
		bundle.Skill = skill
		return bundle
	}
	return fallbackBundle(skill)
}

func fallbackBundle(skill string) Bundle {
	query := url.QueryEscape(skill + " tutorial")
	return Bundle{
		Skill:        skill,
		Priority:     "Medium",
		Category:     "General",
		Difficulty:   "Varies",
		TimeEstimate: "2-4 weeks",
		Resources: []Resource{
			{Name: fmt.Sprintf("Search: learn %s", skill), Type: "Web Search", URL: "https://www.google.com/search?q=" + query, Free: true},
			{Name: fmt.Sprintf("%s on freeCodeCamp", skill), Type: "Online Course", URL: "https://www.freecodecamp.org/news/search/?query=" + url.QueryEscape(skill), Free: true},
		},
	}
}
