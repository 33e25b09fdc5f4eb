// Package testutil provides fixture writers shared by the unit and
// integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content below root, creating parent directories.
func WriteFile(t *testing.T, root string, rel string, content []byte) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

// WriteXCConfig writes a CocoaPods-style target settings file for label
// into the sandbox and returns its path.
func WriteXCConfig(t *testing.T, sandbox string, label string, config string, content string) string {
	t.Helper()
	rel := filepath.Join("Target Support Files", label, label+"."+config+".xcconfig")
	return WriteFile(t, sandbox, rel, []byte(content))
}

// WriteFramework creates dir/<name>.framework/<name> holding binary.
func WriteFramework(t *testing.T, dir string, name string, binary []byte) string {
	t.Helper()
	bundle := filepath.Join(dir, name+".framework")
	WriteFile(t, bundle, name, binary)
	return bundle
}
