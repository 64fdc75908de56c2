package metrics

import "errors"

var (
	ErrUnknownField = errors.New("unknown snapshot field")
)
