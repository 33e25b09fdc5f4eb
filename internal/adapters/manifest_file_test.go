package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xcodegen-deps/internal/types"
)

func TestManifestFileAdapterWrite(t *testing.T) {
	embed := true
	noEmbed := false
	manifest := types.ManifestFile{Targets: map[string]types.ManifestTarget{
		"App": {
			ConfigFiles: map[string]string{
				"Debug":   "Supporting Files/Settings-Debug.xcconfig",
				"Release": "Supporting Files/Settings-Release.xcconfig",
			},
			Dependencies: []types.ManifestDependency{
				{Framework: "Rome/Alamofire.framework", Embed: &embed},
				{Framework: "Rome/Realm.framework", Embed: &noEmbed},
				{SDK: "UIKit"},
			},
		},
		"Widget": {
			ConfigFiles:  map[string]string{},
			Dependencies: []types.ManifestDependency{},
		},
	}}

	path := filepath.Join(t.TempDir(), "out", "projectDependencies.yml")
	adapter := NewManifestFileAdapter()
	require.NoError(t, adapter.WriteManifest(path, manifest))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.YAMLEq(t, `
targets:
  App:
    configFiles:
      Debug: Supporting Files/Settings-Debug.xcconfig
      Release: Supporting Files/Settings-Release.xcconfig
    dependencies:
      - framework: Rome/Alamofire.framework
        embed: true
      - framework: Rome/Realm.framework
        embed: false
      - sdk: UIKit
  Widget:
    configFiles: {}
    dependencies: []
`, string(data))

	roundTrip, err := adapter.ReadManifest(path)
	require.NoError(t, err)
	if diff := cmp.Diff(manifest, roundTrip); diff != "" {
		t.Fatalf("unexpected manifest after reading (-want +got):\n%s", diff)
	}
}

func TestManifestFileAdapterErrors(t *testing.T) {
	adapter := NewManifestFileAdapter()

	err := adapter.WriteManifest("", types.ManifestFile{})
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}

	_, err = adapter.ReadManifest(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeNotFound, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}

	broken := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(broken, []byte("targets: [unclosed"), 0644))
	_, err = adapter.ReadManifest(broken)
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
}
