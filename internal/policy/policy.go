package policy

import "pneuma-faq-bot/internal/matcher"

// Decide expects matches sorted by descending score, as returned by the matcher.
//
//   - no match, or top score below threshold: the configured no-match action
//   - runner-up within the tie margin: ask for clarification between them
//   - otherwise: use the top match
func (p *Policy) Decide(matches []matcher.Match) Decision {
	if len(matches) == 0 || matches[0].Score < p.cfg.Threshold {
		d := Decision{Action: p.cfg.NoMatchAction}
		if len(matches) > 0 {
			d.Score = matches[0].Score
		}
		return d
	}

	top := matches[0]
	if p.cfg.TieMargin > 0 {
		var candidates []matcher.Match
		for _, m := range matches[1:] {
			if top.Score-m.Score < p.cfg.TieMargin-scoreEpsilon {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) > 0 {
			return Decision{
				Action:     ActionAskClarification,
				Score:      top.Score,
				Candidates: append([]matcher.Match{top}, candidates...),
			}
		}
	}

	return Decision{
		Action:   ActionUseBest,
		IntentID: top.IntentID,
		Score:    top.Score,
	}
}
