package chromium

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/afero"

	"github.com/jmcgrew/browsekit/internal/table"
)

// SQLiteReader reads relational browser stores with the snapshot-before-read
// pattern: the store file is copied to a sibling path first and the query
// runs against the copy, so a running browser holding the live database open
// never blocks or corrupts the extraction. The snapshot is left on disk; the
// caller decides whether to keep it as evidence or remove it.
type SQLiteReader struct {
	fs     afero.Fs
	logger *log.Logger
}

// NewSQLiteReader creates a reader against the OS filesystem.
func NewSQLiteReader() *SQLiteReader {
	return &SQLiteReader{fs: afero.NewOsFs(), logger: log.Default()}
}

// SetFS changes the filesystem used for existence checks and the snapshot
// copy. Queries still run against real paths, so only the OS filesystem is
// meaningful outside tests.
func (r *SQLiteReader) SetFS(fs afero.Fs) {
	r.fs = fs
}

// SetLogger changes the destination for warning and error lines.
func (r *SQLiteReader) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Read extracts one artifact from the store at storePath. Every failure path
// degrades to a zero-row table with the artifact's full schema: a missing
// store is logged as a warning, and open/query errors are logged and also
// returned so the caller can distinguish "no rows" from "nothing read". The
// returned snapshot path is empty when no copy was made.
func (r *SQLiteReader) Read(ctx context.Context, storePath string, art Artifact) (*table.Table, string, error) {
	empty := table.New(art.Columns...)

	exists, err := afero.Exists(r.fs, storePath)
	if err == nil && !exists {
		r.logger.Printf("WARN %s store not found: %s", art.Kind, storePath)
		return empty, "", nil
	}
	if err != nil {
		r.logger.Printf("ERROR stat %s: %v", storePath, err)
		return empty, "", fmt.Errorf("stat %s: %w", storePath, err)
	}

	snapshot, err := r.Snapshot(storePath)
	if err != nil {
		r.logger.Printf("ERROR snapshot %s: %v", storePath, err)
		return empty, "", fmt.Errorf("snapshot %s: %w", storePath, err)
	}

	tbl, err := r.query(ctx, snapshot, art)
	if err != nil {
		r.logger.Printf("ERROR read %s: %v", storePath, err)
		return empty, snapshot, fmt.Errorf("read %s: %w", storePath, err)
	}
	return tbl, snapshot, nil
}

// Snapshot copies the store to a sibling file named after the original with
// a unique token and a .backup suffix. The token keeps concurrent reads of
// stores in the same directory from colliding.
func (r *SQLiteReader) Snapshot(storePath string) (string, error) {
	snapshot := fmt.Sprintf("%s.%s.backup", storePath, uuid.New().String())

	src, err := r.fs.Open(storePath)
	if err != nil {
		return "", fmt.Errorf("open store: %w", err)
	}
	defer src.Close()

	dst, err := r.fs.Create(snapshot)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("copy store: %w", err)
	}
	return snapshot, nil
}

// query runs the artifact's projection against the snapshot and materializes
// every row, converting the designated timestamp columns.
func (r *SQLiteReader) query(ctx context.Context, snapshot string, art Artifact) (*table.Table, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&immutable=1", filepath.ToSlash(snapshot))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, art.Query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	convert := make(map[int]bool, len(art.TimestampColumns))
	for i, col := range columns {
		for _, ts := range art.TimestampColumns {
			if col == ts {
				convert[i] = true
			}
		}
	}

	tbl := table.New(columns...)
	values := make([]sql.RawBytes, len(columns))
	ptrs := make([]interface{}, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		row := make([]string, len(columns))
		for i, v := range values {
			cell := string(v)
			if convert[i] {
				cell = Convert(cell).String()
			}
			row[i] = cell
		}
		if err := tbl.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}

	return tbl, nil
}
