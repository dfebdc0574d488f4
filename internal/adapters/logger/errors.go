package logger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// messager matches zerr.Error, which reports its own message without the chain.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

type joined interface {
	Unwrap() []error
}

// errorEntry is one level of an error chain.
type errorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into one entry per cause, outermost first.
// Joined errors contribute each of their members in order. zerr levels without
// a message lend their metadata to the next level.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			if j, ok := current.(joined); ok {
				for _, member := range j.Unwrap() {
					walk(member)
				}
				return
			}

			m, ok := current.(messager)
			if !ok {
				entries = append(entries, errorEntry{Message: current.Error(), Metadata: pending})
				pending = nil
				return
			}

			meta := map[string]any{}
			if md, ok := current.(metadataer); ok {
				meta = md.Metadata()
			}
			for k, v := range pending {
				if _, exists := meta[k]; !exists {
					meta[k] = v
				}
			}
			pending = nil

			if m.Message() == "" {
				pending = meta
			} else {
				entries = append(entries, errorEntry{Message: m.Message(), Metadata: meta})
			}
			current = errors.Unwrap(current)
		}
	}
	walk(err)

	return entries
}

// formatErrorEntries renders entries as the "Error:" headline followed by an indented cause list.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message+formatMetadata(entry.Metadata), "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any) string {
	if len(meta) == 0 {
		return ""
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
