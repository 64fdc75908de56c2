package probe

import "errors"

var (
	ErrUnknownInstance = errors.New("unknown instance")
	errConnect         = errors.New("failed to connect")
	errQuery           = errors.New("query failed")
	errProbeClosed     = errors.New("probe is closed")
)
