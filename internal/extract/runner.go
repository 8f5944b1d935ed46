// Package extract sequences artifact extraction across the configured
// browsers and writes the per-browser and combined CSV reports.
package extract

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/jmcgrew/browsekit/internal/chromium"
	"github.com/jmcgrew/browsekit/internal/config"
	"github.com/jmcgrew/browsekit/internal/table"
)

// Runner drives one full extraction run. Readers already degrade every
// per-artifact failure to an empty table, so the run itself only fails on
// collaborator errors: an unwritable output directory or a broken merge,
// never because one store from one browser was locked or missing.
type Runner struct {
	cfg       *config.Config
	fs        afero.Fs
	logger    *log.Logger
	sqlite    *chromium.SQLiteReader
	bookmarks *chromium.BookmarkReader
}

// ArtifactResult records what one (browser, artifact) extraction produced.
type ArtifactResult struct {
	Browser  string        `json:"browser"`
	Kind     chromium.Kind `json:"kind"`
	Rows     int           `json:"rows"`
	Degraded bool          `json:"degraded"`
	Error    string        `json:"error,omitempty"`

	tbl      *table.Table
	snapshot string
}

// Report summarizes a completed run.
type Report struct {
	Artifacts []ArtifactResult `json:"artifacts"`
	Outputs   []string         `json:"outputs"`
}

// NewRunner creates a Runner over the OS filesystem.
func NewRunner(cfg *config.Config) *Runner {
	r := &Runner{
		cfg:       cfg,
		fs:        afero.NewOsFs(),
		logger:    log.Default(),
		sqlite:    chromium.NewSQLiteReader(),
		bookmarks: chromium.NewBookmarkReader(),
	}
	return r
}

// SetFS changes the filesystem used for snapshots, document reads, and CSV
// output.
func (r *Runner) SetFS(fs afero.Fs) {
	r.fs = fs
	r.sqlite.SetFS(fs)
	r.bookmarks.SetFS(fs)
}

// SetLogger changes the destination for operational log lines.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	r.sqlite.SetLogger(logger)
	r.bookmarks.SetLogger(logger)
}

// Run extracts every artifact from every configured browser, merges each
// artifact kind across browsers in config order, and writes all CSVs.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	artifacts := chromium.Artifacts()
	results := make([]ArtifactResult, len(r.cfg.Browsers)*len(artifacts))

	// The extractions share no state, so they run concurrently. Results are
	// slotted by (browser, artifact) index: merge order follows the config,
	// never completion timing.
	var wg sync.WaitGroup
	for bi, browser := range r.cfg.Browsers {
		for ai, art := range artifacts {
			wg.Add(1)
			go func(slot int, browser config.Browser, art chromium.Artifact) {
				defer wg.Done()
				results[slot] = r.extractOne(ctx, browser, art)
			}(bi*len(artifacts)+ai, browser, art)
		}
	}
	wg.Wait()

	if !r.cfg.KeepSnapshots {
		r.removeSnapshots(results)
	}

	report := &Report{Artifacts: results}
	if err := r.writeOutputs(report, artifacts); err != nil {
		return report, err
	}

	r.logger.Printf("extraction complete: %d tables written to %s", len(report.Outputs), r.cfg.OutputDir)
	return report, nil
}

// extractOne reads a single artifact from a single browser profile. The
// returned result always carries a valid table.
func (r *Runner) extractOne(ctx context.Context, browser config.Browser, art chromium.Artifact) ArtifactResult {
	res := ArtifactResult{Browser: browser.Name, Kind: art.Kind}
	storePath := art.StorePath(browser.ProfileDir)

	var tbl *table.Table
	var err error
	switch art.Kind {
	case chromium.KindBookmarks:
		tbl, err = r.bookmarks.Read(storePath)
	default:
		readCtx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.QueryTimeoutSeconds)*time.Second)
		defer cancel()
		tbl, res.snapshot, err = r.sqlite.Read(readCtx, storePath, art)
	}

	res.tbl = tbl
	res.Rows = tbl.Len()
	if err != nil {
		res.Degraded = true
		res.Error = err.Error()
	}
	return res
}

// removeSnapshots deletes the .backup copies the readers left behind.
func (r *Runner) removeSnapshots(results []ArtifactResult) {
	for _, res := range results {
		if res.snapshot == "" {
			continue
		}
		if err := r.fs.Remove(res.snapshot); err != nil {
			r.logger.Printf("WARN remove snapshot %s: %v", res.snapshot, err)
		}
	}
}

// writeOutputs renders one CSV per (browser, artifact) plus one combined CSV
// per artifact kind, merged across browsers in config order with each row
// tagged by its source browser.
func (r *Runner) writeOutputs(report *Report, artifacts []chromium.Artifact) error {
	for bi, browser := range r.cfg.Browsers {
		for ai := range artifacts {
			res := report.Artifacts[bi*len(artifacts)+ai]
			name := fmt.Sprintf("%s_%s.csv", browser.Name, res.Kind)
			if err := r.writeTable(report, name, res.tbl); err != nil {
				return err
			}
		}
	}

	for ai, art := range artifacts {
		first := report.Artifacts[ai]
		second := report.Artifacts[len(artifacts)+ai]
		combined, err := table.Merge(first.tbl, first.Browser, second.tbl, second.Browser)
		if err != nil {
			return fmt.Errorf("merge %s: %w", art.Kind, err)
		}
		for bi := 2; bi < len(r.cfg.Browsers); bi++ {
			res := report.Artifacts[bi*len(artifacts)+ai]
			if err := combined.AppendTagged(res.tbl, res.Browser); err != nil {
				return fmt.Errorf("merge %s: %w", art.Kind, err)
			}
		}
		name := fmt.Sprintf("combined_%s.csv", art.Kind)
		if err := r.writeTable(report, name, combined); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) writeTable(report *Report, name string, tbl *table.Table) error {
	path := filepath.Join(r.cfg.OutputDir, name)
	if err := table.WriteCSV(r.fs, path, tbl); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	report.Outputs = append(report.Outputs, path)
	return nil
}
