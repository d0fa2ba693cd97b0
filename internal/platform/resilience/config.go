package resilience

import (
	"fmt"
	"time"
)

// CircuitBreakerConfig sizes a breaker. A disabled config builds no breaker.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

// StoreBreakerDefaults guards the match store when DB_CIRCUIT_* is unset.
var StoreBreakerDefaults = CircuitBreakerConfig{
	Enabled:          true,
	FailureThreshold: 5,
	OpenTimeout:      15 * time.Second,
	HalfOpenMaxReq:   2,
}

// Validate reports the first setting a breaker cannot run with.
func (c CircuitBreakerConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	switch {
	case c.FailureThreshold < 1:
		return fmt.Errorf("failure threshold must be >= 1, got %d", c.FailureThreshold)
	case c.OpenTimeout <= 0:
		return fmt.Errorf("open timeout must be > 0, got %s", c.OpenTimeout)
	case c.HalfOpenMaxReq < 1:
		return fmt.Errorf("half-open probes must be >= 1, got %d", c.HalfOpenMaxReq)
	}
	return nil
}

// withDefaults fills zero or negative settings from StoreBreakerDefaults.
func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	if c.FailureThreshold < 1 {
		c.FailureThreshold = StoreBreakerDefaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = StoreBreakerDefaults.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = StoreBreakerDefaults.HalfOpenMaxReq
	}
	return c
}
