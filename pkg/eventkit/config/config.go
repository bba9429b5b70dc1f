// Package config provides runtime configuration for an eventkit World.
//
// Configuration controls ambient behavior only — panic policy, telemetry
// toggles, queue sizing. Event kind configuration (mutability, cancellation,
// audience) is code, not config: it is part of each Definition's identity.
package config

import "fmt"

// PanicPolicy controls what a World does when a handler panics.
type PanicPolicy string

const (
	// PanicPropagate lets handler panics propagate to the caller of the
	// dispatch. This is the default: a handler either runs to completion or
	// takes the process down under the host's own fault policy.
	PanicPropagate PanicPolicy = "propagate"

	// PanicRecover recovers handler panics, logs them, and continues the
	// dispatch with the next handler as if the panicking handler had
	// returned.
	PanicRecover PanicPolicy = "recover"
)

// Config holds World settings.
type Config struct {
	// PanicPolicy selects handler panic behavior.
	// Default: PanicPropagate.
	PanicPolicy PanicPolicy `yaml:"panic_policy" json:"panic_policy"`

	// Metrics enables OpenTelemetry metrics for dispatches, handler
	// invocations, and registrations.
	// Default: false.
	Metrics bool `yaml:"metrics" json:"metrics"`

	// Tracing enables an OpenTelemetry span per dispatch.
	// Default: false.
	Tracing bool `yaml:"tracing" json:"tracing"`

	// CommandQueueCapacity is the initial capacity of the deferred command
	// queue.
	// Default: 16.
	CommandQueueCapacity int `yaml:"command_queue_capacity" json:"command_queue_capacity"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		PanicPolicy:          PanicPropagate,
		CommandQueueCapacity: 16,
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	switch c.PanicPolicy {
	case PanicPropagate, PanicRecover:
	default:
		return fmt.Errorf("invalid panic_policy: %q", c.PanicPolicy)
	}

	if c.CommandQueueCapacity < 0 {
		return fmt.Errorf("command_queue_capacity must not be negative: %d", c.CommandQueueCapacity)
	}

	return nil
}
