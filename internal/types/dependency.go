package types

// Dependency is one classified entry from a target's linker flags. Values
// are built with NewSDKDependency or NewArtifactDependency and never
// modified afterwards.
type Dependency struct {
	RawName      string
	Kind         DependencyKind
	ArtifactPath string
	IsDynamic    bool
	SDKName      string
}

func NewSDKDependency(name string) Dependency {
	return Dependency{
		RawName: name,
		Kind:    DependencyKindSDK,
		SDKName: name,
	}
}

func NewArtifactDependency(name string, path string, dynamic bool) Dependency {
	return Dependency{
		RawName:      name,
		Kind:         DependencyKindArtifact,
		ArtifactPath: path,
		IsDynamic:    dynamic,
	}
}

func (d Dependency) IsArtifact() bool {
	return d.Kind == DependencyKindArtifact
}

type TargetDependencySet struct {
	TargetName   string
	ConfigFiles  map[string]string
	Dependencies []Dependency
}

// Manifest maps normalized target names to their dependency sets.
type Manifest map[string]TargetDependencySet

// BuildTarget is one umbrella target discovered in the Pods sandbox.
type BuildTarget struct {
	// Label is the host label, e.g. "Pods-App".
	Label string
	// Name is Label with the "Pods-" prefix removed.
	Name         string
	SettingsPath string
}
