package chromium

import "path/filepath"

// Kind identifies one of the extracted artifact classes.
type Kind string

const (
	KindHistory   Kind = "history"
	KindCookies   Kind = "cookies"
	KindBookmarks Kind = "bookmarks"
)

// Artifact describes where a Chromium profile keeps one artifact class and
// how to read it. The layout is shared across Chromium derivatives, so the
// same definitions serve Chrome, Edge, and anything else profile-compatible
// with them.
type Artifact struct {
	Kind Kind

	// StoreFile is the store's path relative to the profile directory.
	StoreFile string

	// Query is the read-only projection run against SQLite-backed stores;
	// empty for document-backed artifacts.
	Query string

	// Columns is the output schema, in query/field order. It shapes the
	// empty table returned when extraction fails.
	Columns []string

	// TimestampColumns lists the columns holding Chromium-epoch values.
	TimestampColumns []string
}

var (
	// History covers one row per distinct URL in the navigation history store.
	History = Artifact{
		Kind:             KindHistory,
		StoreFile:        "History",
		Query:            "SELECT url, title, visit_count, last_visit_time FROM urls",
		Columns:          []string{"url", "title", "visit_count", "last_visit_time"},
		TimestampColumns: []string{"last_visit_time"},
	}

	// Cookies covers one row per stored cookie. The store moved under the
	// Network subdirectory in modern Chromium.
	Cookies = Artifact{
		Kind:             KindCookies,
		StoreFile:        filepath.Join("Network", "Cookies"),
		Query:            "SELECT host_key, name, value, creation_utc, expires_utc, last_access_utc FROM cookies",
		Columns:          []string{"host_key", "name", "value", "creation_utc", "expires_utc", "last_access_utc"},
		TimestampColumns: []string{"creation_utc", "expires_utc", "last_access_utc"},
	}

	// Bookmarks covers one row per direct child of the bookmark bar.
	Bookmarks = Artifact{
		Kind:             KindBookmarks,
		StoreFile:        "Bookmarks",
		Columns:          []string{"name", "type", "url", "date_added"},
		TimestampColumns: []string{"date_added"},
	}
)

// Artifacts returns all artifact definitions in extraction order.
func Artifacts() []Artifact {
	return []Artifact{History, Cookies, Bookmarks}
}

// StorePath resolves an artifact's store location under a profile directory.
func (a Artifact) StorePath(profileDir string) string {
	return filepath.Join(profileDir, a.StoreFile)
}
