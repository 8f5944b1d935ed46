package table

import (
	"encoding/csv"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteCSV renders a table to path as CSV: one header row with the column
// names, then the data rows in table order. A table with zero rows still
// gets its header so downstream tooling sees the full schema. Parent
// directories are created as needed.
func WriteCSV(fs afero.Fs, path string, t *Table) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if len(t.Columns) > 0 {
		if err := w.Write(t.Columns); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
