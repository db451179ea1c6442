package lint

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

// Defaults for near-miss suggestions.
const (
	DefaultMaxSuggestions = 3
	DefaultCutoff         = 0.9
)

// CloseMatches returns up to n candidates whose similarity ratio to word is at
// least cutoff, best match first. Equal scores order by descending candidate
// string, which keeps the output stable across runs.
func CloseMatches(word string, candidates []string, n int, cutoff float64) []string {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}

	m := difflib.NewMatcher(nil, nil)
	m.SetSeq2(splitChars(word))

	var hits []scored
	for _, c := range candidates {
		m.SetSeq1(splitChars(c))
		// cheap upper bounds first
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		if r := m.Ratio(); r >= cutoff {
			hits = append(hits, scored{name: c, score: r})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].name > hits[j].name
	})
	if len(hits) > n {
		hits = hits[:n]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
