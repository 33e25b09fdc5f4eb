package adapters

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xcodegen-deps/internal/types"
	"xcodegen-deps/tests/testutil"
)

func TestPodsSandboxAdapterDiscoverTargets(t *testing.T) {
	sandbox := filepath.Join(t.TempDir(), "Pods")
	testutil.WriteXCConfig(t, sandbox, "Pods-App", "release", "OTHER_LDFLAGS = \"\"\n")
	debug := testutil.WriteXCConfig(t, sandbox, "Pods-App", "debug", "OTHER_LDFLAGS = \"\"\n")
	widget := testutil.WriteXCConfig(t, sandbox, "Pods-AppWidget", "debug", "OTHER_LDFLAGS = \"\"\n")
	// Per-pod support directories are not umbrella targets.
	testutil.WriteXCConfig(t, sandbox, "Alamofire", "debug", "OTHER_LDFLAGS = \"\"\n")

	targets, err := NewPodsSandboxAdapter().DiscoverTargets(sandbox)
	require.NoError(t, err)
	want := []types.BuildTarget{
		{Label: "Pods-App", Name: "App", SettingsPath: debug},
		{Label: "Pods-AppWidget", Name: "AppWidget", SettingsPath: widget},
	}
	if diff := cmp.Diff(want, targets); diff != "" {
		t.Fatalf("unexpected targets (-want +got):\n%s", diff)
	}
}

func TestPodsSandboxAdapterTargetWithoutXCConfig(t *testing.T) {
	sandbox := filepath.Join(t.TempDir(), "Pods")
	testutil.WriteFile(t, sandbox, "Target Support Files/Pods-App/Pods-App-umbrella.h", []byte(""))

	_, err := NewPodsSandboxAdapter().DiscoverTargets(sandbox)
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeNotFound, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
	assert.Contains(t, err.Error(), "no xcconfig found for target Pods-App")
}

func TestPodsSandboxAdapterRejectsEmptyTargetName(t *testing.T) {
	sandbox := filepath.Join(t.TempDir(), "Pods")
	testutil.WriteXCConfig(t, sandbox, "Pods-App", "debug", "OTHER_LDFLAGS = \"\"\n")
	testutil.WriteXCConfig(t, sandbox, "Pods-", "debug", "OTHER_LDFLAGS = \"\"\n")

	_, err := NewPodsSandboxAdapter().DiscoverTargets(sandbox)
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
	assert.Contains(t, err.Error(), `umbrella target "Pods-" has an empty name`)
}

func TestPodsSandboxAdapterMissingSandbox(t *testing.T) {
	_, err := NewPodsSandboxAdapter().DiscoverTargets(filepath.Join(t.TempDir(), "Pods"))
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeNotFound, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}

	_, err = NewPodsSandboxAdapter().DiscoverTargets("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sandbox root is empty")
}

func TestTargetNameFromLabel(t *testing.T) {
	assert.Equal(t, "App", TargetNameFromLabel("Pods-App"))
	assert.Equal(t, "App-Pods-Lib", TargetNameFromLabel("Pods-App-Pods-Lib"))
	assert.Equal(t, "Standalone", TargetNameFromLabel("Standalone"))
}
