// Package algorithms provides the retry backoff strategies used by the
// pool's retry policy.
package algorithms

import "time"

// BackoffStrategy defines how retry delays are calculated.
type BackoffStrategy interface {
	// NextDelay returns the delay before retry attempt attemptNumber.
	// attemptNumber is 0-indexed (0 = first retry after the initial failure).
	NextDelay(attemptNumber int) time.Duration
}

// BackoffType selects the retry backoff algorithm.
type BackoffType int

const (
	// BackoffExponential doubles the delay on every retry (default).
	BackoffExponential BackoffType = iota
	// BackoffJittered adds random jitter to the exponential delay so
	// simultaneous failures do not retry in lockstep.
	BackoffJittered
)

// NewBackoffStrategy builds the strategy for the given configuration.
// jitterFactor is only meaningful for BackoffJittered.
func NewBackoffStrategy(
	backoffType BackoffType,
	initialDelay, maxDelay time.Duration,
	jitterFactor float64,
) BackoffStrategy {
	switch backoffType {
	case BackoffJittered:
		return newJitteredBackoff(initialDelay, maxDelay, jitterFactor)
	default:
		return newExponentialBackoff(initialDelay, maxDelay)
	}
}
