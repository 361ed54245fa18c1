package session

import (
	"fmt"
	"strings"
)

const (
	// collabMaxEntries bounds how many recent judge outputs are injected into
	// subsequent judge prompts.
	collabMaxEntries = 6
	// collabExcerptRunes bounds each injected excerpt so prompt size stays
	// fixed regardless of transcript length.
	collabExcerptRunes = 200
)

type collabEntry struct {
	name    string
	content string
}

// CollabWindow buffers recent judge outputs so later judges can weigh what
// earlier judges said. It keeps every entry recorded during the session but
// renders only the most recent tail.
type CollabWindow struct {
	entries []collabEntry
}

// Record appends one judge output to the buffer.
func (w *CollabWindow) Record(judgeName, content string) {
	w.entries = append(w.entries, collabEntry{name: judgeName, content: content})
}

// Len returns the number of rendered entries, capped at the window size.
func (w *CollabWindow) Len() int {
	if len(w.entries) > collabMaxEntries {
		return collabMaxEntries
	}
	return len(w.entries)
}

// Render returns the last entries as a bulleted block, oldest of the kept
// subset first, each excerpt truncated. Empty string when nothing has been
// recorded.
func (w *CollabWindow) Render() string {
	if len(w.entries) == 0 {
		return ""
	}

	tail := w.entries
	if len(tail) > collabMaxEntries {
		tail = tail[len(tail)-collabMaxEntries:]
	}

	var sb strings.Builder
	for _, e := range tail {
		fmt.Fprintf(&sb, "- %s: %s\n", e.name, excerpt(e.content, collabExcerptRunes))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Reset clears the buffer.
func (w *CollabWindow) Reset() { w.entries = nil }

func excerpt(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "…"
}
