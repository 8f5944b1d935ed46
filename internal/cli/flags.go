package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// ExtractCommand — run the full extraction and write all CSV reports.
type ExtractCommand struct {
	Output        string `long:"output" description:"Override output directory for CSV files"`
	KeepSnapshots bool   `long:"keep-snapshots" description:"Keep the .backup store copies after the run"`
	Timeout       int    `long:"timeout" description:"Override per-store query timeout in seconds"`

	globals *GlobalFlags
	version string
}

// PathsCommand — show each (browser, artifact) store path and its presence.
type PathsCommand struct {
	globals *GlobalFlags
	version string
}

// ConvertCommand — convert raw Chromium-epoch values from the command line.
type ConvertCommand struct {
	Args struct {
		Values []string `positional-arg-name:"timestamp" description:"Raw Chromium-epoch microsecond values"`
	} `positional-args:"yes"`

	globals *GlobalFlags
	version string
}
