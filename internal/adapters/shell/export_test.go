package shell

import "time"

// NewExecutorWithEnviron creates an Executor with a fixed inherited environment.
func NewExecutorWithEnviron(e *Executor, environ []string) *Executor {
	e.environ = func() []string { return environ }
	return e
}

// WithWaitDelay overrides how long pipes stay open after cancellation.
func WithWaitDelay(e *Executor, d time.Duration) *Executor {
	e.waitDelay = d
	return e
}
