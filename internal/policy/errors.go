package policy

import "errors"

var (
	ErrInvalidThreshold     = errors.New("policy: threshold must be within [0,1]")
	ErrInvalidTieMargin     = errors.New("policy: tie margin must be within [0,1]")
	ErrInvalidNoMatchAction = errors.New("policy: no-match action must be ask_clarification or delegate_to_generator")
)
