package config

// Validator interface for configurations that need validation.
type Validator interface {
	Validate() error
}

// Defaulter fills unset fields before validation.
type Defaulter interface {
	ApplyDefaults()
}
