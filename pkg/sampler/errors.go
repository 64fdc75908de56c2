package sampler

import "errors"

var (
	errProbePanic    = errors.New("probe panicked")
	errStepPanic     = errors.New("sampling step panicked")
	errNilSnapshot   = errors.New("probe returned no snapshot")
	errNilDependency = errors.New("sampler requires a probe, writer and instance source")
)
