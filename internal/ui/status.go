package ui

import (
	"fmt"

	"conway/internal/core"
)

// StatusLine summarises the shell and engine parameters on one line.
func StatusLine(snap core.ParameterSnapshot) string {
	value := func(key string) string {
		if p, ok := snap.Lookup(key); ok {
			return p.Value
		}
		return "--"
	}
	state := "running"
	if value("paused") == "true" {
		state = "paused"
	}
	return fmt.Sprintf("%s  gen %s  pop %s  every %ss", state, value("generation"), value("population"), value("interval"))
}
