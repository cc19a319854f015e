// Package format renders registry entries for the CLI: plain text, a
// fixed-width table, or line-delimited JSON.
package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Entry is one rendered registry row. Key is the caller's original input
// value (not the fingerprint), empty for anonymous pseudonyms.
type Entry struct {
	Key          string `json:"key,omitempty"`
	Pseudonym    string `json:"pseudonym"`
	Alliteration bool   `json:"alliteration"`
}

// Text writes one pseudonym per line, the friendliest form for piping.
func Text(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.Pseudonym); err != nil {
			return fmt.Errorf("failed to write text output: %w", err)
		}
	}
	return nil
}

// Table writes entries as a formatted table with KEY, PSEUDONYM and ALLIT
// columns. Returns the number of entries formatted.
func Table(w io.Writer, entries []Entry) int {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No pseudonyms assigned")
		return 0
	}

	keyWidth := len("KEY")
	for _, e := range entries {
		if len(e.Key) > keyWidth {
			keyWidth = len(e.Key)
		}
	}
	if keyWidth > 32 {
		keyWidth = 32
	}

	fmt.Fprintf(w, "%-*s  %-24s %s\n", keyWidth, "KEY", "PSEUDONYM", "ALLIT")
	for _, e := range entries {
		allit := "-"
		if e.Alliteration {
			allit = "yes"
		}
		fmt.Fprintf(w, "%-*s  %-24s %s\n", keyWidth, truncate(e.Key, keyWidth), e.Pseudonym, allit)
	}

	noun := "pseudonym"
	if len(entries) != 1 {
		noun = "pseudonyms"
	}
	fmt.Fprintf(w, "\n%d %s\n", len(entries), noun)
	return len(entries)
}

// JSONL writes entries as line-delimited JSON, one object per line, for
// processing with tools like jq.
func JSONL(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal entry to JSON: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}
	return nil
}

// truncate shortens s to max characters, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
