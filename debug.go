package touchline

import (
	"fmt"
	"os"
)

// debugEnabled gates diagnostic logging and misuse checks for the whole
// package. Off by default.
var debugEnabled bool

// SetDebugMode enables or disables diagnostic logging on stderr along with
// extra misuse checks. Intended for development builds.
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

// debugf prints a diagnostic line to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[touchline] "+format+"\n", args...)
}

// debugCheckItems warns on stderr when a list contains duplicate non-empty
// IDs. Duplicate IDs make index lookups ambiguous; the engine resolves them
// to the first occurrence.
func debugCheckItems(items []ListItem) {
	if !debugEnabled {
		return
	}
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" {
			continue
		}
		if seen[it.ID] {
			_, _ = fmt.Fprintf(os.Stderr, "[touchline] warning: duplicate item ID %q\n", it.ID)
		}
		seen[it.ID] = true
	}
}

// debugCheckRows warns on stderr when a row provider reports the same item
// twice. Duplicate rows double-count in drop-slot midpoint math.
func debugCheckRows(rows []RowRect) {
	if !debugEnabled {
		return
	}
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		if seen[r.ID] {
			_, _ = fmt.Fprintf(os.Stderr, "[touchline] warning: duplicate row for item ID %q\n", r.ID)
		}
		seen[r.ID] = true
	}
}

// debugCheckChips warns on stderr when a board contains duplicate non-empty
// chip IDs.
func debugCheckChips(chips []Chip) {
	if !debugEnabled {
		return
	}
	seen := make(map[string]bool, len(chips))
	for _, c := range chips {
		if c.ID == "" {
			continue
		}
		if seen[c.ID] {
			_, _ = fmt.Fprintf(os.Stderr, "[touchline] warning: duplicate chip ID %q\n", c.ID)
		}
		seen[c.ID] = true
	}
}
