package events

import "strings"

// ErrorPolicy decides whether a text line is reported as an error.
// It sees every text line of one stream, in order.
type ErrorPolicy interface {
	IsError(line string) bool
}

// StickyErrorLatch reports every line as an error once a line starting with "error:" was seen.
// Cargo prints the follow-up lines of a failed build as plain text without the prefix.
type StickyErrorLatch struct {
	latched bool
}

// NewStickyErrorLatch returns an unlatched policy.
func NewStickyErrorLatch() *StickyErrorLatch {
	return &StickyErrorLatch{}
}

// IsError implements ErrorPolicy.
func (l *StickyErrorLatch) IsError(line string) bool {
	if strings.HasPrefix(strings.TrimSpace(line), "error:") {
		l.latched = true
	}
	return l.latched
}

// Latched reports whether an error line has been seen.
func (l *StickyErrorLatch) Latched() bool {
	return l.latched
}
