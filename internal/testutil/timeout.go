package testutil

import (
	"context"
	"testing"
	"time"
)

const (
	// DefaultShortTimeout bounds quick operations such as a scripted REPL
	// session or building a small table.
	DefaultShortTimeout = 30 * time.Second

	// DefaultTestBuffer is subtracted from the test deadline to leave room
	// for cleanup before the test times out.
	DefaultTestBuffer = 5 * time.Second
)

// ContextWithTestDeadline creates a context that respects the test's deadline,
// minus DefaultTestBuffer. Without a deadline it uses fallback.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    ctx, cancel := testutil.ContextWithTestDeadline(t, time.Minute)
//	    defer cancel()
//	    // ... test code using ctx
//	}
func ContextWithTestDeadline(t *testing.T, fallback time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	return ContextWithTestDeadlineBuffer(t, fallback, DefaultTestBuffer)
}

// ContextWithTestDeadlineBuffer is ContextWithTestDeadline with a custom buffer.
// If the test deadline minus buffer is already past, fallback is used.
func ContextWithTestDeadlineBuffer(t *testing.T, fallback, buffer time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()

	if deadline, ok := t.Deadline(); ok {
		adjusted := deadline.Add(-buffer)
		if time.Until(adjusted) > 0 {
			return context.WithDeadline(context.Background(), adjusted)
		}
	}

	return context.WithTimeout(context.Background(), fallback)
}

// ShortOperationContext returns a context bounded by DefaultShortTimeout or
// the test deadline, whichever comes first.
func ShortOperationContext(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()

	parent, parentCancel := ContextWithTestDeadline(t, DefaultShortTimeout)
	ctx, cancel := context.WithTimeout(parent, DefaultShortTimeout)
	return ctx, func() {
		cancel()
		parentCancel()
	}
}
