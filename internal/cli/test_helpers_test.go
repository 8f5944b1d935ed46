package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// writeTestConfig writes a minimal valid config file and returns its path.
func writeTestConfig(t *testing.T, profileA, profileB, outputDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
browsers:
  - name: chrome
    profile_dir: ` + profileA + `
  - name: edge
    profile_dir: ` + profileB + `
output_dir: ` + outputDir + `
query_timeout_seconds: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
