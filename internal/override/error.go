package override

import "fmt"

// ConfigurationError indicates a malformed resolution request. It is raised
// before any handler runs and is never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid override resolution call: %s", e.Reason)
}

func NewConfigurationError(reason string) *ConfigurationError {
	return &ConfigurationError{Reason: reason}
}

// ExhaustedError indicates every capable candidate declined the call: the
// operation is unsupported for these argument types.
type ExhaustedError struct {
	Op     string
	Method string
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("operation %s (method %s) not supported by the overriding arguments", e.Op, e.Method)
}

func NewExhaustedError(op, method string) *ExhaustedError {
	return &ExhaustedError{Op: op, Method: method}
}
