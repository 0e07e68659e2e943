package matcher

import "sort"

// Match returns every pattern with at least one trigger found in text, ordered
// by descending score. Equal scores keep declaration order. A message that
// triggers nothing yields an empty slice.
func (m *KeywordMatcher) Match(text string) []Match {
	normalized := Normalize(text)
	if normalized == "" {
		return []Match{}
	}

	matches := make([]Match, 0, len(m.patterns))
	for order, p := range m.patterns {
		var weight float64
		var found []string
		for _, t := range p.triggers {
			if containsAtWordStart(normalized, t.phrase) {
				weight += t.weight
				found = append(found, t.phrase)
			}
		}
		if len(found) == 0 {
			continue
		}
		matches = append(matches, Match{
			IntentID: p.id,
			Score:    m.score(weight),
			Triggers: found,
			Order:    order,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

func (m *KeywordMatcher) score(weight float64) float64 {
	s := weight / m.saturation
	if s > 1 {
		return 1
	}
	if s < 0 {
		return 0
	}
	return s
}
