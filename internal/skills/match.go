package skills

import (
	"sort"
	"strings"
)

// Confidence levels assigned to the different match kinds.
const (
	confidenceExact     = 1.0
	confidenceCollapsed = 0.9
	confidenceContained = 0.8
)

// Match pairs a job requirement with the candidate skill that satisfied it.
type Match struct {
	Requirement string
	Candidate   string
	Confidence  float64
}

// Report is the outcome of matching a candidate skill set against a
// requirement set.
type Report struct {
	Matched               []Match
	UnmatchedRequirements []string
	ExtraSkills           []string
}

// MatchSets matches candidate skills against job requirements. Matching is
// case-insensitive, order-independent and purely a function of the synonym
// table; both inputs are left untouched. Requirements and extras are
// reported in sorted canonical form so repeated runs produce identical
// reports.
func MatchSets(candidate, required []string) Report {
	candidateSet := canonicalSet(candidate)
	requiredSet := canonicalSet(required)

	var report Report
	used := make(map[string]bool)

	requiredKeys := sortedKeys(requiredSet)
	for _, req := range requiredKeys {
		best, confidence := bestMatch(req, candidateSet)
		if confidence == 0 {
			report.UnmatchedRequirements = append(report.UnmatchedRequirements, req)
			continue
		}
		report.Matched = append(report.Matched, Match{
			Requirement: req,
			Candidate:   best,
			Confidence:  confidence,
		})
		used[best] = true
	}

	for _, skill := range sortedKeys(candidateSet) {
		if !used[skill] {
			report.ExtraSkills = append(report.ExtraSkills, skill)
		}
	}
	return report
}

// MatchText reports whether a single requirement is evidenced anywhere in
// free resume text. It tries direct containment, all-significant-words
// containment, then collapsed acronym containment.
func MatchText(requirement, text string) bool {
	req := strings.ToLower(strings.TrimSpace(requirement))
	body := strings.ToLower(text)
	if req == "" || body == "" {
		return false
	}

	if strings.Contains(body, req) {
		return true
	}
	canonical := Normalize(requirement)
	if canonical != "" && strings.Contains(body, canonical) {
		return true
	}

	words := significantWords(req)
	if len(words) > 0 {
		all := true
		for _, w := range words {
			if !strings.Contains(body, w) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}

	collapsed := collapse(req)
	if len(collapsed) > 1 && len(collapsed) <= 12 {
		return strings.Contains(collapse(body), collapsed)
	}
	return false
}

// bestMatch finds the highest-confidence candidate skill for a canonical
// requirement. Ties break on lexical order for determinism.
func bestMatch(req string, candidates map[string]bool) (string, float64) {
	best := ""
	bestConfidence := 0.0
	for _, skill := range sortedKeys(candidates) {
		c := pairConfidence(req, skill)
		if c > bestConfidence {
			best = skill
			bestConfidence = c
		}
	}
	return best, bestConfidence
}

// pairConfidence scores how well two canonical skills match.
func pairConfidence(req, skill string) float64 {
	if req == skill {
		return confidenceExact
	}
	if collapse(req) == collapse(skill) {
		return confidenceCollapsed
	}
	if len(req) >= 4 && len(skill) >= 4 &&
		(strings.Contains(req, skill) || strings.Contains(skill, req)) {
		return confidenceContained
	}
	return 0
}

// stopWords are ignored when splitting a requirement into significant words.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "and": true, "or": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "with": true,
	"de": true, "des": true, "du": true, "et": true, "ou": true, "la": true, "le": true,
}

func significantWords(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	var words []string
	for _, f := range fields {
		if len(f) > 1 && !stopWords[f] {
			words = append(words, f)
		}
	}
	return words
}

func canonicalSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		if canonical := Normalize(t); canonical != "" {
			set[canonical] = true
		}
	}
	return set
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
