package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SuggestTags ranks candidate tags against partial input, best first.
// Candidates are lower-cased and de-duplicated; empty input returns them sorted.
func SuggestTags(input string, candidates ...[]string) []string {
	seen := make(map[string]bool)
	var pool []string
	for _, group := range candidates {
		for _, c := range group {
			c = strings.ToLower(strings.TrimSpace(c))
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			pool = append(pool, c)
		}
	}

	input = strings.TrimSpace(input)
	if input == "" {
		sort.Strings(pool)
		return pool
	}

	ranks := fuzzy.RankFindNormalizedFold(input, pool)
	sort.Stable(ranks)

	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}
