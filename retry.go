package support

import (
	"time"

	"github.com/golang/glog"
	"k8s.io/apimachinery/pkg/util/wait"
)

// RetryPolicy bounds how an operation is retried: at most Attempts calls,
// Pause between two calls, and only for errors Retryable accepts.
type RetryPolicy struct {
	Attempts  int
	Pause     time.Duration
	Retryable func(error) bool
}

// AlertRetryPolicy works around drivers that intermittently fail to reach an
// open alert (https://code.google.com/p/selenium/issues/detail?id=3544).
var AlertRetryPolicy = RetryPolicy{
	Attempts:  4,
	Pause:     250 * time.Millisecond,
	Retryable: IsTransient,
}

func (p RetryPolicy) backoff() wait.Backoff {
	return wait.Backoff{Steps: p.Attempts, Duration: p.Pause}
}

// Retry calls op until it succeeds, fails with a non-retryable error, or the
// policy runs out of attempts. A non-retryable error is returned unchanged.
// Running out of attempts yields an *OperationFailedError naming desc and
// wrapping the last error.
func Retry(p RetryPolicy, desc string, op func() error) error {
	if p.Attempts < 1 {
		return InvalidArgument("retry attempts must be positive, got %d", p.Attempts)
	}
	attempts := 0
	var lastErr error
	err := wait.ExponentialBackoff(p.backoff(), func() (bool, error) {
		attempts++
		lastErr = op()
		switch {
		case lastErr == nil:
			return true, nil
		case p.Retryable != nil && p.Retryable(lastErr):
			glog.V(1).Infof("%s: attempt %d of %d failed: %v", desc, attempts, p.Attempts, lastErr)
			return false, nil
		default:
			return false, lastErr
		}
	})
	if wait.Interrupted(err) {
		return &OperationFailedError{Op: desc, Attempts: attempts, Err: lastErr}
	}
	return err
}
