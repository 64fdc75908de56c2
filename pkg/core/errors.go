package core

import "errors"

var (
	errNilConfig     = errors.New("config is required")
	errBuildChannels = errors.New("failed to build alert channels")
	errOpenDatabase  = errors.New("failed to open snapshot database")
	errBuildSampler  = errors.New("failed to build sampler")
)
