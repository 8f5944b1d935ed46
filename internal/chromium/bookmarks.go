package chromium

import (
	"fmt"
	"log"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

	"github.com/jmcgrew/browsekit/internal/table"
)

// BookmarkReader flattens the bookmark-bar subtree of a Chromium Bookmarks
// document into a table. Only the direct children of the bookmark bar are
// emitted; entries nested inside folders on the bar are not descended into.
type BookmarkReader struct {
	fs     afero.Fs
	logger *log.Logger
}

// NewBookmarkReader creates a reader against the OS filesystem.
func NewBookmarkReader() *BookmarkReader {
	return &BookmarkReader{fs: afero.NewOsFs(), logger: log.Default()}
}

// SetFS changes the filesystem the document is read from.
func (r *BookmarkReader) SetFS(fs afero.Fs) {
	r.fs = fs
}

// SetLogger changes the destination for warning and error lines.
func (r *BookmarkReader) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Read extracts {name, type, url, date_added} rows from the document at
// bookmarksPath, converting date_added from the Chromium epoch. A missing
// file, a malformed document, or a document without a bookmark bar (never
// used, or the roots tree is partial) all degrade to a zero-row table with
// the full schema; only genuine read/parse failures also return an error.
func (r *BookmarkReader) Read(bookmarksPath string) (*table.Table, error) {
	empty := table.New(Bookmarks.Columns...)

	exists, err := afero.Exists(r.fs, bookmarksPath)
	if err == nil && !exists {
		r.logger.Printf("WARN bookmarks document not found: %s", bookmarksPath)
		return empty, nil
	}
	if err != nil {
		r.logger.Printf("ERROR stat %s: %v", bookmarksPath, err)
		return empty, fmt.Errorf("stat %s: %w", bookmarksPath, err)
	}

	data, err := afero.ReadFile(r.fs, bookmarksPath)
	if err != nil {
		r.logger.Printf("ERROR read %s: %v", bookmarksPath, err)
		return empty, fmt.Errorf("read %s: %w", bookmarksPath, err)
	}
	if !gjson.ValidBytes(data) {
		r.logger.Printf("ERROR parse %s: not a valid bookmarks document", bookmarksPath)
		return empty, fmt.Errorf("parse %s: not a valid bookmarks document", bookmarksPath)
	}

	children := gjson.GetBytes(data, "roots.bookmark_bar.children")
	if !children.Exists() {
		r.logger.Printf("WARN no bookmark bar in %s", bookmarksPath)
		return empty, nil
	}

	tbl := table.New(Bookmarks.Columns...)
	for _, child := range children.Array() {
		err := tbl.AppendRow(
			child.Get("name").String(),
			child.Get("type").String(),
			child.Get("url").String(),
			Convert(child.Get("date_added").String()).String(),
		)
		if err != nil {
			return empty, err
		}
	}
	return tbl, nil
}
