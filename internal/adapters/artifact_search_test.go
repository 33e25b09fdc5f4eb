package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xcodegen-deps/tests/testutil"
)

func TestArtifactSearchAdapterResolve(t *testing.T) {
	root := t.TempDir()
	rome := filepath.Join(root, "Rome")
	vendor := filepath.Join(root, "Vendor")
	testutil.WriteFramework(t, rome, "Alamofire", testutil.MachOBinary(testutil.MachODylib))
	testutil.WriteFile(t, rome, "Kingfisher.xcframework/Info.plist", []byte("<plist/>"))
	testutil.WriteFile(t, vendor, "libsqlite.a", testutil.ArchiveBinary())
	testutil.WriteFramework(t, vendor, "Alamofire", testutil.MachOBinary(testutil.MachOObject))
	// A file named like a bundle is not a bundle.
	testutil.WriteFile(t, rome, "Fake.framework", []byte("not a dir"))

	adapter := NewArtifactSearchAdapter([]string{rome, vendor})
	tests := []struct {
		token     string
		wantPath  string
		wantFound bool
	}{
		{token: "Alamofire", wantPath: filepath.Join(rome, "Alamofire.framework"), wantFound: true},
		{token: "Kingfisher", wantPath: filepath.Join(rome, "Kingfisher.xcframework"), wantFound: true},
		{token: "sqlite", wantPath: filepath.Join(vendor, "libsqlite.a"), wantFound: true},
		{token: "UIKit", wantPath: "", wantFound: false},
		{token: "Fake", wantPath: "", wantFound: false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			path, found, err := adapter.Resolve(tt.token)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.wantFound, found); diff != "" {
				t.Fatalf("unexpected found (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantPath, path); diff != "" {
				t.Fatalf("unexpected path (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArtifactSearchAdapterMissingSearchPath(t *testing.T) {
	adapter := NewArtifactSearchAdapter([]string{filepath.Join(t.TempDir(), "does-not-exist")})
	_, found, err := adapter.Resolve("Alamofire")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestArtifactSearchAdapterSearchPathIsFile(t *testing.T) {
	root := t.TempDir()
	file := testutil.WriteFile(t, root, "Rome", []byte("file"))
	_, found, err := NewArtifactSearchAdapter([]string{file}).Resolve("Alamofire")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestArtifactSearchAdapterPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "Rome")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, _, err := NewArtifactSearchAdapter([]string{locked}).Resolve("Alamofire")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}
