package types

// Result is the outcome of one submitted task.
//
// Fields:
//   - Value: the value produced by the task (only meaningful when Error is nil)
//   - Key: the identifier the pool assigned at submission time
//   - Error: the task's failure, or nil on success
type Result[R any, K comparable] struct {
	Value R
	Key   K
	Error error
}
