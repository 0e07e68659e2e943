package store

import "errors"

var ErrUnknownSource = errors.New("unknown deals source")
