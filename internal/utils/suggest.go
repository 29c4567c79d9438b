package utils

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to limit candidates within a small edit distance of
// input, closest first. Substring matches count as distance 1.
func Suggest(input string, candidates []string, limit int) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || limit <= 0 {
		return nil
	}
	maxDistance := len(input)/3 + 1

	type scored struct {
		value    string
		distance int
	}
	var matches []scored
	for _, c := range candidates {
		lc := strings.ToLower(c)
		d := levenshtein.ComputeDistance(input, lc)
		if strings.Contains(lc, input) && d > 1 {
			d = 1
		}
		if d <= maxDistance {
			matches = append(matches, scored{value: c, distance: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].value < matches[j].value
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.value
	}
	return out
}
