package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"xcodegen-deps/internal/ports"
	"xcodegen-deps/internal/types"
)

// fakeArtifacts maps token -> artifact path and path -> binary kind.
type fakeArtifacts struct {
	paths map[string]string
	kinds map[string]types.BinaryKind
}

func (f fakeArtifacts) Resolve(token string) (string, bool, error) {
	path, ok := f.paths[token]
	return path, ok, nil
}

func (f fakeArtifacts) Inspect(path string) (types.BinaryKind, error) {
	return f.kinds[path], nil
}

func newFakeArtifacts() fakeArtifacts {
	return fakeArtifacts{
		paths: map[string]string{
			"Alamofire":  "Rome/Alamofire.framework",
			"Kingfisher": "Rome/Kingfisher.xcframework",
			"Realm":      "Rome/Realm.framework",
		},
		kinds: map[string]types.BinaryKind{
			"Rome/Alamofire.framework":    types.BinaryKindDynamic,
			"Rome/Kingfisher.xcframework": types.BinaryKindDynamic,
			"Rome/Realm.framework":        types.BinaryKindStatic,
		},
	}
}

func newFakeExtractor(settings ports.LinkerSettingsPort) Extractor {
	fake := newFakeArtifacts()
	return NewExtractor(NewClassifier(fake, fake), settings)
}

func TestExtractFlagsScenario(t *testing.T) {
	extractor := newFakeExtractor(nil)
	configFiles := map[string]string{"Debug": "Supporting Files/Settings-Debug.xcconfig"}

	set, err := extractor.ExtractFlags(t.Context(), "App", `"-ObjC -framework SelfTarget -framework Alamofire -framework UIKit"`, configFiles)
	require.NoError(t, err)

	want := types.TargetDependencySet{
		TargetName:  "App",
		ConfigFiles: configFiles,
		Dependencies: []types.Dependency{
			types.NewArtifactDependency("Alamofire", "Rome/Alamofire.framework", true),
			types.NewSDKDependency("UIKit"),
		},
	}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Fatalf("unexpected dependency set (-want +got):\n%s", diff)
	}
}

func TestExtractFlagsPreservesOrderAndDuplicates(t *testing.T) {
	extractor := newFakeExtractor(nil)
	set, err := extractor.ExtractFlags(t.Context(), "App",
		`$(inherited) -framework "Realm" -framework "UIKit" -framework "Alamofire" -framework "UIKit" -framework "Realm"`, nil)
	require.NoError(t, err)

	var names []string
	for _, dep := range set.Dependencies {
		names = append(names, dep.RawName)
	}
	if diff := cmp.Diff([]string{"Realm", "UIKit", "Alamofire", "UIKit", "Realm"}, names); diff != "" {
		t.Fatalf("unexpected dependency order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(false, set.Dependencies[0].IsDynamic); diff != "" {
		t.Fatalf("unexpected realm linkage (-want +got):\n%s", diff)
	}
}

func TestExtractFlagsEmptyValue(t *testing.T) {
	extractor := newFakeExtractor(nil)
	for _, raw := range []string{`""`, "", "   "} {
		set, err := extractor.ExtractFlags(t.Context(), "App", raw, nil)
		require.NoError(t, err)
		if diff := cmp.Diff(0, len(set.Dependencies)); diff != "" {
			t.Fatalf("unexpected dependency count for %q (-want +got):\n%s", raw, diff)
		}
	}
}

func TestExtractFlagsIsIdempotent(t *testing.T) {
	extractor := newFakeExtractor(nil)
	raw := `"-ObjC -framework App -framework Kingfisher -framework Foundation -framework Realm"`
	first, err := extractor.ExtractFlags(t.Context(), "App", raw, nil)
	require.NoError(t, err)
	second, err := extractor.ExtractFlags(t.Context(), "App", raw, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("extraction is not stable (-first +second):\n%s", diff)
	}
}

func TestExtractFlagsMalformedTokenNamesTarget(t *testing.T) {
	extractor := newFakeExtractor(nil)
	_, err := extractor.ExtractFlags(t.Context(), "App", `"-framework App -framework Rome/Alamofire"`, nil)
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
	require.Contains(t, err.Error(), `malformed token "Rome/Alamofire"`)
	require.Contains(t, err.Error(), "(target App)")
}

func TestExtractFlagsRejectsEmptyTargetName(t *testing.T) {
	extractor := newFakeExtractor(nil)
	for _, name := range []string{"", "  "} {
		_, err := extractor.ExtractFlags(t.Context(), name, `"-framework Self -framework Alamofire"`, nil)
		require.Error(t, err)
		if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
			t.Fatalf("unexpected error code for %q (-want +got):\n%s", name, diff)
		}
	}
}

func TestExtractReadsSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := ports.NewMockLinkerSettingsPort(ctrl)
	settings.EXPECT().
		ReadLinkerFlags("Pods/Target Support Files/Pods-App/Pods-App.debug.xcconfig").
		Return(`$(inherited) -ObjC -framework "Alamofire"`, true, nil)

	target := types.BuildTarget{
		Label:        "Pods-App",
		Name:         "App",
		SettingsPath: "Pods/Target Support Files/Pods-App/Pods-App.debug.xcconfig",
	}
	set, err := newFakeExtractor(settings).Extract(t.Context(), target, nil)
	require.NoError(t, err)
	if diff := cmp.Diff([]types.Dependency{
		types.NewArtifactDependency("Alamofire", "Rome/Alamofire.framework", true),
	}, set.Dependencies); diff != "" {
		t.Fatalf("unexpected dependencies (-want +got):\n%s", diff)
	}
}

func TestExtractMissingLinkerSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := ports.NewMockLinkerSettingsPort(ctrl)
	settings.EXPECT().ReadLinkerFlags(gomock.Any()).Return("", false, nil)

	target := types.BuildTarget{Label: "Pods-Widget", Name: "Widget", SettingsPath: "Pods-Widget.release.xcconfig"}
	_, err := newFakeExtractor(settings).Extract(t.Context(), target, nil)
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
	require.Contains(t, err.Error(), "missing linker settings")
	require.Contains(t, err.Error(), "target Widget")
}

func TestExtractWithoutSettingsPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := ports.NewMockLinkerSettingsPort(ctrl)

	_, err := newFakeExtractor(settings).Extract(t.Context(), types.BuildTarget{Label: "Pods-App", Name: "App"}, nil)
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeNotFound, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
}
