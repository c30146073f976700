package support

import (
	"context"
	"errors"
	"time"

	"github.com/golang/glog"
	"github.com/tebeka/selenium"
	"k8s.io/apimachinery/pkg/util/wait"
)

// DefaultWaitInterval is the polling interval of a Wait created without
// WithInterval.
const DefaultWaitInterval = 500 * time.Millisecond

// WaitOption configures a Wait.
type WaitOption func(*Wait)

// WithInterval sets the time between two evaluations of the condition.
func WithInterval(d time.Duration) WaitOption {
	return func(w *Wait) {
		if d > 0 {
			w.interval = d
		}
	}
}

// IgnoringErrors treats condition errors for which ignore returns true as a
// false evaluation instead of a failure.
func IgnoringErrors(ignore func(error) bool) WaitOption {
	return func(w *Wait) {
		w.ignore = append(w.ignore, ignore)
	}
}

// Wait polls conditions against a driver until they hold or a timeout
// expires. A Wait blocks the calling goroutine and must not be shared between
// goroutines driving the same session.
type Wait struct {
	wd       selenium.WebDriver
	timeout  time.Duration
	interval time.Duration
	ignore   []func(error) bool
}

// NewWait returns a Wait on wd with the given timeout. Missing and stale
// elements always count as "not yet".
func NewWait(wd selenium.WebDriver, timeout time.Duration, opts ...WaitOption) *Wait {
	w := &Wait{
		wd:       wd,
		timeout:  timeout,
		interval: DefaultWaitInterval,
		ignore:   []func(error) bool{IsNoSuchElement, IsStaleElement},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Timeout returns the time budget of w.
func (w *Wait) Timeout() time.Duration { return w.timeout }

func (w *Wait) ignored(err error) bool {
	for _, ignore := range w.ignore {
		if ignore(err) {
			return true
		}
	}
	return false
}

// Until evaluates cond immediately and then every interval until it holds.
// It returns a *TimeoutError carrying the condition's description when the
// timeout expires first. Errors that are not ignored stop the wait and are
// returned as they are.
func (w *Wait) Until(cond Condition) error {
	ticks := 0
	err := wait.PollUntilContextTimeout(context.Background(), w.interval, w.timeout, true, func(context.Context) (bool, error) {
		ticks++
		ok, err := cond.Apply(w.wd)
		if err != nil {
			if w.ignored(err) {
				glog.V(2).Infof("waiting for %s: ignoring %v", cond, err)
				return false, nil
			}
			return false, err
		}
		return ok, nil
	})
	if err == nil {
		glog.V(2).Infof("%s after %d evaluations", cond, ticks)
		return nil
	}
	if wait.Interrupted(err) {
		return &TimeoutError{Condition: cond.String(), Timeout: w.timeout}
	}
	return err
}

// Until reports whether cond held within w's timeout. A timeout is reported
// as false with a nil error; any other failure is returned.
func Until(w *Wait, cond Condition) (bool, error) {
	err := w.Until(cond)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrTimeout):
		glog.V(1).Info(err)
		return false, nil
	default:
		return false, err
	}
}

