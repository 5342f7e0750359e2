package cmd

import (
	"fmt"
	"os"

	"github.com/go-asciidoc/asciidoc/internal/config"
)

// loadConfig loads .adoc.yaml, searching upward from the current
// directory. Load failures are reported to stderr and treated as if no
// config file were present, so a malformed project config never blocks a
// one-off parse.
func loadConfig() *configSnapshot {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "adoc: failed to load config: %v\n", err)

		return &configSnapshot{}
	}

	return &configSnapshot{
		theme:            cfg.Theme,
		attributes:       cfg.InitialAttributes,
		lockedAttributes: cfg.LockedAttributes,
		watchDebounceMs:  cfg.WatchDebounceMillis,
	}
}
