package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmcgrew/browsekit/internal/extract"
)

// Execute implements the go-flags Commander interface for ExtractCommand.
func (c *ExtractCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if c.Output != "" {
		cfg.OutputDir = c.Output
	}
	if c.KeepSnapshots {
		cfg.KeepSnapshots = true
	}
	if c.Timeout > 0 {
		cfg.QueryTimeoutSeconds = c.Timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runner := extract.NewRunner(cfg)
	runner.SetLogger(newLogger(c.globals))

	report, err := runner.Run(context.Background())
	if err != nil {
		return fmt.Errorf("extraction run: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return c.printReportHuman(report)
}

func (c *ExtractCommand) printReportHuman(report *extract.Report) error {
	fmt.Println("Extraction Report")
	fmt.Println("=================")
	for _, a := range report.Artifacts {
		status := fmt.Sprintf("%d rows", a.Rows)
		if a.Degraded {
			status = "degraded (see log)"
		}
		fmt.Printf("  %-10s %-10s %s\n", a.Browser, a.Kind, status)
	}

	fmt.Println()
	fmt.Println("Outputs:")
	for _, path := range report.Outputs {
		fmt.Printf("  %s\n", path)
	}

	fmt.Println()
	fmt.Println("Data exported to CSV files")
	return nil
}
