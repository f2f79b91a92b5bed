package generation

import (
	"regexp"
	"strings"

	"github.com/namesmith/namesmith/internal/types"
)

var (
	normalizeRe = regexp.MustCompile(`[^a-z0-9-]`)
	consonantRe = regexp.MustCompile(`[bcdfghjklmnpqrstvwxz]{4,}`)
	vowelRe     = regexp.MustCompile(`[aeiouy]{4,}`)
)

// blockedDoubles are doubled letters that read badly in a brandable name.
// Common doubles like "ll", "ss", "oo" are deliberately not blocked.
var blockedDoubles = []string{
	"aa", "hh", "ii", "jj", "kk", "qq", "uu", "vv", "ww", "xx", "yy",
}

// Normalize lower-cases a raw domain and strips every character outside
// [a-z0-9-].
func Normalize(domain string) string {
	return normalizeRe.ReplaceAllString(strings.ToLower(domain), "")
}

// Filter normalizes each raw candidate's domain and drops those violating the
// constraints. Rejected candidates are dropped silently; the surviving set is
// deterministic for a given input set and constraints.
func Filter(candidates []types.Candidate, constraints types.Constraints) []types.Candidate {
	maxLen := constraints.EffectiveMaxLen()

	survivors := make([]types.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		normalized := Normalize(cand.Domain)
		if !passes(normalized, constraints, maxLen) {
			continue
		}
		cand.Domain = normalized
		survivors = append(survivors, cand)
	}
	return survivors
}

// passes applies all constraint rules to a normalized domain.
func passes(domain string, constraints types.Constraints, maxLen int) bool {
	if domain == "" {
		return false
	}
	if len(domain) > maxLen {
		return false
	}
	if constraints.NoHyphens && strings.Contains(domain, "-") {
		return false
	}
	if constraints.NoNumbers && strings.ContainsAny(domain, "0123456789") {
		return false
	}
	if constraints.AvoidUglyClusters && hasUglyCluster(domain) {
		return false
	}
	for _, banned := range constraints.Banned {
		if banned == "" {
			continue
		}
		if strings.Contains(domain, strings.ToLower(banned)) {
			return false
		}
	}
	return true
}

// hasUglyCluster reports whether a domain contains a four-plus consonant run,
// a four-plus vowel run, or a blocked doubled letter.
func hasUglyCluster(domain string) bool {
	if consonantRe.MatchString(domain) || vowelRe.MatchString(domain) {
		return true
	}
	for _, double := range blockedDoubles {
		if strings.Contains(domain, double) {
			return true
		}
	}
	return false
}
