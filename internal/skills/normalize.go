// Package skills provides deterministic skill canonicalization and matching
// between candidate skill sets and job requirements.
package skills

import (
	"sort"
	"strings"
)

// synonyms maps known variant spellings to a canonical skill name.
// All keys and values are lower-case.
var synonyms = map[string]string{
	"golang":         "go",
	"go lang":        "go",
	"js":             "javascript",
	"ecmascript":     "javascript",
	"ts":             "typescript",
	"k8s":            "kubernetes",
	"kube":           "kubernetes",
	"react.js":       "react",
	"reactjs":        "react",
	"vue.js":         "vue",
	"vuejs":          "vue",
	"node":           "node.js",
	"nodejs":         "node.js",
	"postgres":       "postgresql",
	"psql":           "postgresql",
	"ml":             "machine learning",
	"dl":             "deep learning",
	"ai":             "artificial intelligence",
	"gcloud":         "gcp",
	"google cloud":   "gcp",
	"amazon web services": "aws",
	"ci cd":          "ci/cd",
	"cicd":           "ci/cd",
	"tdd":            "test driven development",
	"poids lourd":    "heavy goods vehicle",
	"hgv":            "heavy goods vehicle",
	"cdl":            "commercial driving license",
}

// strippableSuffixes are common derivational suffixes removed during
// canonicalization so that "dockerization" matches "docker".
var strippableSuffixes = []string{
	"ization", "isation", "ized", "ised", "izing", "ising", "ification", "ing",
}

// Normalize returns the canonical lower-case form of a raw skill token.
// Canonicalization is a fixed function of the synonym table: trim, lower,
// collapse separators, apply synonyms, then strip derivational suffixes.
func Normalize(token string) string {
	s := strings.ToLower(strings.TrimSpace(token))
	if s == "" {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")

	if canonical, ok := synonyms[s]; ok {
		return canonical
	}

	stripped := stripSuffix(s)
	if canonical, ok := synonyms[stripped]; ok {
		return canonical
	}
	return stripped
}

// Variants returns the canonical form of a token together with every
// synonym-table variant that maps to the same canonical form.
func Variants(token string) (string, []string) {
	canonical := Normalize(token)
	if canonical == "" {
		return "", nil
	}
	var variants []string
	for variant, target := range synonyms {
		if target == canonical && variant != canonical {
			variants = append(variants, variant)
		}
	}
	sort.Strings(variants)
	return canonical, variants
}

// stripSuffix removes one known derivational suffix when the remaining stem
// is long enough to still be meaningful.
func stripSuffix(s string) string {
	for _, suffix := range strippableSuffixes {
		if strings.HasSuffix(s, suffix) && len(s)-len(suffix) >= 4 {
			return strings.TrimSuffix(s, suffix)
		}
	}
	return s
}

// collapse removes separator characters so acronym spellings compare equal,
// e.g. "ci/cd", "CI-CD" and "ci cd" all collapse to "cicd".
func collapse(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '/', '-', '_', '.':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
