package policy

const (
	DefaultThreshold     = 0.5
	DefaultTieMargin     = 0.1
	DefaultNoMatchAction = ActionAskClarification

	// scoreEpsilon absorbs float error in score gaps, so a gap equal to the
	// tie margin is not read as smaller than it.
	scoreEpsilon = 1e-9
)
