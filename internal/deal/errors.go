package deal

import "errors"

var (
	ErrDealNotFound   = errors.New("deal not found")
	ErrInvalidDay     = errors.New("invalid day")
	ErrInvalidPayload = errors.New("invalid payload")
)
