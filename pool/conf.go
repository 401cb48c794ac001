package pool

import (
	"runtime"
	"time"

	"github.com/poolforge/poolforge/internal/algorithms"
	"golang.org/x/time/rate"
)

// Option is a functional option for configuring the pool.
type Option func(*config)

type config struct {
	workerCount int
	maxAttempts int
	rateLimiter *rate.Limiter

	backoffType         algorithms.BackoffType
	backoffInitialDelay time.Duration
	backoffMaxDelay     time.Duration
	backoffJitterFactor float64

	onTaskFailure func(taskID int64, err error)
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		workerCount:         runtime.GOMAXPROCS(0),
		maxAttempts:         1,
		backoffType:         algorithms.BackoffExponential,
		backoffInitialDelay: 100 * time.Millisecond,
		backoffMaxDelay:     5 * time.Second,
		backoffJitterFactor: 0.1,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithWorkerCount sets the number of workers created at construction.
// The pool is never resized afterwards. If not specified, defaults to
// runtime.GOMAXPROCS(0). New rejects non-positive counts with ErrNoWorkers.
func WithWorkerCount(count int) Option {
	return func(cfg *config) {
		cfg.workerCount = count
	}
}

// WithRetryPolicy retries failed tasks up to maxAttempts times, waiting
// between attempts according to the configured backoff (exponential by
// default, starting at initialDelay). If not specified, tasks run once.
func WithRetryPolicy(maxAttempts int, initialDelay time.Duration) Option {
	return func(cfg *config) {
		if maxAttempts > 0 {
			cfg.maxAttempts = maxAttempts
		}
		if initialDelay > 0 {
			cfg.backoffInitialDelay = initialDelay
		}
	}
}

// WithJitteredBackoff randomizes retry delays by ±jitterFactor (0.0 to
// 1.0) so simultaneous failures do not retry in lockstep. Only meaningful
// together with WithRetryPolicy.
func WithJitteredBackoff(jitterFactor float64) Option {
	return func(cfg *config) {
		cfg.backoffType = algorithms.BackoffJittered
		cfg.backoffJitterFactor = jitterFactor
	}
}

// WithRateLimit throttles task execution with a token bucket.
// tasksPerSecond is the sustained rate, burst the bucket size. Useful for
// pools fronting external services or APIs. If not specified, no rate
// limiting is applied.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 tasks/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *config) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithOnTaskFailure registers a hook invoked when a fire-and-forget task
// fails or panics. Without the hook such failures are discarded; Submit
// task failures always travel through their Future instead.
//
// The hook runs on the worker goroutine, so it should return quickly.
func WithOnTaskFailure(fn func(taskID int64, err error)) Option {
	return func(cfg *config) {
		cfg.onTaskFailure = fn
	}
}
