package cli

import (
	"log"
	"os"

	"github.com/jmcgrew/browsekit/internal/config"
)

// loadConfig resolves the effective configuration: an explicit --config path
// must exist and parse; otherwise the default path is loaded, created with
// defaults on first run.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		return config.Load(globals.Config)
	}
	return config.LoadOrCreate()
}

// newLogger builds the operational logger. Log lines go to stderr so CSV
// paths and reports on stdout stay machine-consumable; --verbose adds
// timestamps.
func newLogger(globals *GlobalFlags) *log.Logger {
	flags := 0
	if globals != nil && globals.Verbose {
		flags = log.LstdFlags
	}
	return log.New(os.Stderr, "", flags)
}
