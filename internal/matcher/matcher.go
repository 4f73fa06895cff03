// Package matcher scores a candidate skill set against a target skill set:
// exact and synonym matches, fuzzy partial matches, an overall percentage and
// a priority-ordered list of missing skills.
package matcher

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/muhammadolammi/skillmatchworker/internal/skills"
)

// similarityThreshold is the inclusive lower bound for a partial match.
const similarityThreshold = 0.8

// MatchError is an unrecoverable fault inside the matching engine. Soft
// faults (embedding backend down) never produce one.
type MatchError struct {
	Cause error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("skill matching failed: %v", e.Cause)
}

func (e *MatchError) Unwrap() error { return e.Cause }

// MissingSkill is one prioritized gap in the candidate's skill set.
type MissingSkill struct {
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
	Mentions int    `json:"mentions"`
}

// Result is the outcome of one match call. MatchedSkills, PartialMatches and
// MissingSkills partition the target skill set: every target skill appears in
// exactly one of the three.
type Result struct {
	OverallMatch       float64        `json:"overall_match"`
	MatchedSkills      []string       `json:"matched_skills"`
	PartialMatches     []string       `json:"partial_matches"`
	MissingSkills      []string       `json:"missing_skills"`
	SemanticSimilarity float64        `json:"semantic_similarity"`
	PrioritizedMissing []MissingSkill `json:"prioritized_missing"`
}

// Matcher holds the read-only synonym tables and the optional embedding
// backend. Safe for concurrent use.
type Matcher struct {
	vocab    *skills.Vocabulary
	embedder Embedder
	log      *zap.Logger
}

// New builds a matcher. embedder may be nil; semantic similarity then stays 0.
func New(vocab *skills.Vocabulary, embedder Embedder, log *zap.Logger) *Matcher {
	return &Matcher{vocab: vocab, embedder: embedder, log: log}
}

// Match compares candidate skills against target skills. contextText (usually
// the raw job description) feeds missing-skill prioritization. An empty
// target set is vacuously fully matched (100.0); an empty candidate set
// scores 0 with every target skill missing.
func (m *Matcher) Match(ctx context.Context, candidate, target []string, contextText string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &MatchError{Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	if len(target) == 0 {
		return &Result{
			OverallMatch:       100.0,
			MatchedSkills:      []string{},
			PartialMatches:     []string{},
			MissingSkills:      []string{},
			PrioritizedMissing: []MissingSkill{},
		}, nil
	}
	if len(candidate) == 0 {
		missing := append([]string(nil), target...)
		return &Result{
			OverallMatch:       0.0,
			MatchedSkills:      []string{},
			PartialMatches:     []string{},
			MissingSkills:      missing,
			PrioritizedMissing: m.prioritizeMissing(missing, contextText),
		}, nil
	}

	exact := m.exactMatches(candidate, target)
	partial := m.partialMatches(candidate, target, exact)

	matched := make(map[string]bool, len(exact)+len(partial))
	for _, s := range exact {
		matched[s] = true
	}
	for _, s := range partial {
		matched[s] = true
	}
	missing := make([]string, 0, len(target))
	for _, s := range target {
		if !matched[s] {
			missing = append(missing, s)
		}
	}

	return &Result{
		OverallMatch:       matchScore(len(exact), len(partial), len(target)),
		MatchedSkills:      exact,
		PartialMatches:     partial,
		MissingSkills:      missing,
		SemanticSimilarity: m.semanticSimilarity(ctx, candidate, target),
		PrioritizedMissing: m.prioritizeMissing(missing, contextText),
	}, nil
}

// exactMatches returns target skills whose normalized form, or any registered
// synonym of it, appears among the normalized candidate skills.
func (m *Matcher) exactMatches(candidate, target []string) []string {
	candidateKeys := make(map[string]bool, len(candidate))
	for _, s := range candidate {
		candidateKeys[skills.Normalize(s)] = true
	}

	matches := make([]string, 0, len(target))
	for _, targetSkill := range target {
		if candidateKeys[skills.Normalize(targetSkill)] {
			matches = append(matches, targetSkill)
			continue
		}
		for _, syn := range m.vocab.SynonymsOf(targetSkill) {
			if candidateKeys[skills.Normalize(syn)] {
				matches = append(matches, targetSkill)
				break
			}
		}
	}
	return matches
}

// partialMatches runs over target skills not already exact-matched. A target
// qualifies when any one candidate passes the similarity threshold or a
// substring test; the first qualifying candidate ends the scan for that
// target, so a target matching several candidates still counts once.
func (m *Matcher) partialMatches(candidate, target, exact []string) []string {
	exactSet := make(map[string]bool, len(exact))
	for _, s := range exact {
		exactSet[s] = true
	}

	matches := []string{}
	for _, targetSkill := range target {
		if exactSet[targetSkill] {
			continue
		}
		targetKey := skills.Normalize(targetSkill)
		for _, candidateSkill := range candidate {
			candidateKey := skills.Normalize(candidateSkill)
			if lcsRatio(targetKey, candidateKey) >= similarityThreshold ||
				containsEitherWay(targetKey, candidateKey) {
				matches = append(matches, targetSkill)
				break
			}
		}
	}
	return matches
}

// matchScore is min(100, (exact + 0.5*partial)/total*100) to 1 decimal.
func matchScore(exact, partial, total int) float64 {
	score := (float64(exact) + 0.5*float64(partial)) / float64(total) * 100
	if score > 100 {
		score = 100
	}
	return math.Round(score*10) / 10
}
