package support

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors. Every error type in this package matches exactly one of
// them through errors.Is.
var (
	ErrNotFound             = errors.New("no such element")
	ErrTimeout              = errors.New("timeout")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrUnsupportedOperation = errors.New("operation not supported on a composite")
	ErrNoAlert              = errors.New("no such alert")
	ErrOperationFailed      = errors.New("operation failed")
)

// NotFoundError is returned when a locator matched nothing where a match was
// required.
type NotFoundError struct {
	Locator Locator
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such element: unable to locate element: %s", e.Locator)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// TimeoutError is returned when a polled condition did not hold within its
// timeout.
type TimeoutError struct {
	Condition string
	Timeout   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("expected condition failed: waiting for %s (tried for %v)", e.Condition, e.Timeout)
}

func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// InvalidArgumentError reports a caller supplied value that violates a
// precondition.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string { return e.Message }

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// InvalidArgument returns an *InvalidArgumentError with a formatted message.
func InvalidArgument(format string, args ...interface{}) error {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

// UnsupportedOperationError is returned by composite adapters for operations
// that have no multi-element meaning.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, ErrUnsupportedOperation)
}

func (e *UnsupportedOperationError) Is(target error) bool { return target == ErrUnsupportedOperation }

// NoAlertError wraps the driver error reported when no alert is open.
type NoAlertError struct {
	Err error
}

func (e *NoAlertError) Error() string { return e.Err.Error() }

func (e *NoAlertError) Unwrap() error { return e.Err }

func (e *NoAlertError) Is(target error) bool { return target == ErrNoAlert }

// OperationFailedError is returned once a retry budget is spent.
type OperationFailedError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *OperationFailedError) Error() string {
	return fmt.Sprintf("unable to %s after %d attempts: %v", e.Op, e.Attempts, e.Err)
}

func (e *OperationFailedError) Unwrap() error { return e.Err }

func (e *OperationFailedError) Is(target error) bool { return target == ErrOperationFailed }

// The WebDriver client reports failures as errors whose text carries the
// protocol error string, for both W3C and legacy JSON wire servers.
var (
	noSuchElementMessages = []string{"no such element"}
	noSuchAlertMessages   = []string{"no such alert", "no alert open"}
	staleElementMessages  = []string{"stale element reference"}
)

func matches(err error, messages []string) bool {
	msg := err.Error()
	for _, m := range messages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// IsNoSuchElement reports whether err means a locator matched nothing.
func IsNoSuchElement(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNotFound) || matches(err, noSuchElementMessages)
}

// IsNoSuchAlert reports whether err means no alert dialog is open.
func IsNoSuchAlert(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNoAlert) || matches(err, noSuchAlertMessages)
}

// IsStaleElement reports whether err means an element is no longer attached
// to the document.
func IsStaleElement(err error) bool {
	return err != nil && matches(err, staleElementMessages)
}

// IsNilAttribute reports whether err is the client's way of saying that an
// attribute is absent.
func IsNilAttribute(err error) bool {
	return err != nil && strings.Contains(err.Error(), "nil return value")
}

// IsTransient reports whether err is a driver failure worth retrying. A
// missing alert is a genuine absence, not a race.
func IsTransient(err error) bool {
	return err != nil && !IsNoSuchAlert(err)
}
