package chromium

import (
	"bytes"
	"context"
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHistoryStore creates a minimal Chromium History database at path with
// the given url rows.
func writeHistoryStore(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE urls (
			id INTEGER PRIMARY KEY,
			url TEXT,
			title TEXT,
			visit_count INTEGER,
			last_visit_time INTEGER
		)
	`)
	require.NoError(t, err)

	for _, row := range rows {
		_, err = db.Exec(
			"INSERT INTO urls (url, title, visit_count, last_visit_time) VALUES (?, ?, ?, ?)",
			row...,
		)
		require.NoError(t, err)
	}
}

// testReader builds a reader whose log lines are captured in the buffer.
func testReader(t *testing.T) (*SQLiteReader, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	r := NewSQLiteReader()
	r.SetLogger(log.New(&buf, "", 0))
	return r, &buf
}

// --- Missing and broken stores ---

func TestSQLiteRead_MissingStoreReturnsEmptyTable(t *testing.T) {
	r, logs := testReader(t)

	tbl, snapshot, err := r.Read(context.Background(), filepath.Join(t.TempDir(), "History"), History)
	require.NoError(t, err)
	assert.Equal(t, History.Columns, tbl.Columns)
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, snapshot)
	assert.Contains(t, logs.String(), "store not found")
}

func TestSQLiteRead_ZeroByteStoreReturnsEmptyTable(t *testing.T) {
	r, logs := testReader(t)

	storePath := filepath.Join(t.TempDir(), "History")
	require.NoError(t, os.WriteFile(storePath, nil, 0644))

	tbl, snapshot, err := r.Read(context.Background(), storePath, History)
	require.Error(t, err)
	assert.Equal(t, History.Columns, tbl.Columns)
	assert.Equal(t, 0, tbl.Len())
	assert.NotEmpty(t, snapshot, "the failure happened after the copy")
	assert.Contains(t, logs.String(), "ERROR")
}

func TestSQLiteRead_GarbageStoreReturnsEmptyTable(t *testing.T) {
	r, _ := testReader(t)

	storePath := filepath.Join(t.TempDir(), "History")
	require.NoError(t, os.WriteFile(storePath, []byte("this is not a database"), 0644))

	tbl, _, err := r.Read(context.Background(), storePath, History)
	require.Error(t, err)
	assert.Equal(t, History.Columns, tbl.Columns)
	assert.Equal(t, 0, tbl.Len())
}

// --- Successful reads ---

func TestSQLiteRead_History(t *testing.T) {
	r, _ := testReader(t)

	dir := t.TempDir()
	storePath := filepath.Join(dir, "History")
	writeHistoryStore(t, storePath, [][]interface{}{
		{"https://example.com", "Example", 3, 13330000000000000},
		{"https://go.dev", "Go", 7, 0},
		{"https://old.test", nil, 1, "garbage"},
	})

	tbl, snapshot, err := r.Read(context.Background(), storePath, History)
	require.NoError(t, err)

	assert.Equal(t, []string{"url", "title", "visit_count", "last_visit_time"}, tbl.Columns)
	require.Equal(t, 3, tbl.Len())

	// Store order is preserved, timestamps converted, NULL renders empty.
	assert.Equal(t, []string{"https://example.com", "Example", "3", "2023-05-31 09:46:40"}, tbl.Rows[0])
	assert.Equal(t, []string{"https://go.dev", "Go", "7", "1601-01-01 00:00:00"}, tbl.Rows[1])
	assert.Equal(t, []string{"https://old.test", "", "1", "garbage"}, tbl.Rows[2])

	// The snapshot sits next to the store and survives the read.
	assert.Equal(t, dir, filepath.Dir(snapshot))
	_, statErr := os.Stat(snapshot)
	assert.NoError(t, statErr)
}

func TestSQLiteRead_QueryRunsAgainstSnapshotNotOriginal(t *testing.T) {
	r, _ := testReader(t)

	dir := t.TempDir()
	storePath := filepath.Join(dir, "History")
	writeHistoryStore(t, storePath, [][]interface{}{
		{"https://example.com", "Example", 1, 0},
	})

	_, snapshot, err := r.Read(context.Background(), storePath, History)
	require.NoError(t, err)
	require.NotEmpty(t, snapshot)
	assert.NotEqual(t, storePath, snapshot)
	assert.Contains(t, filepath.Base(snapshot), "History.")
	assert.Contains(t, snapshot, ".backup")
}

func TestSQLiteRead_SnapshotNamesAreUnique(t *testing.T) {
	r, _ := testReader(t)

	dir := t.TempDir()
	storePath := filepath.Join(dir, "History")
	writeHistoryStore(t, storePath, nil)

	_, first, err := r.Read(context.Background(), storePath, History)
	require.NoError(t, err)
	_, second, err := r.Read(context.Background(), storePath, History)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSQLiteRead_Cookies(t *testing.T) {
	r, _ := testReader(t)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Network"), 0755))
	storePath := filepath.Join(dir, "Network", "Cookies")

	db, err := sql.Open("sqlite3", storePath)
	require.NoError(t, err)
	_, err = db.Exec(`
		CREATE TABLE cookies (
			host_key TEXT, name TEXT, value TEXT,
			creation_utc INTEGER, expires_utc INTEGER, last_access_utc INTEGER
		)
	`)
	require.NoError(t, err)
	_, err = db.Exec(
		"INSERT INTO cookies VALUES (?, ?, ?, ?, ?, ?)",
		".example.com", "session", "abc123",
		13330000000000000, 13330000000000000, 13330000000000000,
	)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	tbl, _, err := r.Read(context.Background(), storePath, Cookies)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, []string{
		".example.com", "session", "abc123",
		"2023-05-31 09:46:40", "2023-05-31 09:46:40", "2023-05-31 09:46:40",
	}, tbl.Rows[0])
}
