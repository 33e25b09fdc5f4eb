package types

type DependencyKind string

const (
	DependencyKindSDK      DependencyKind = "sdk"
	DependencyKindArtifact DependencyKind = "artifact"
)

type BinaryKind string

const (
	BinaryKindDynamic BinaryKind = "dynamic"
	BinaryKindStatic  BinaryKind = "static"
)

// Platform selects the binary format used to tell dynamic artifacts from
// static ones.
type Platform string

const (
	PlatformApple Platform = "apple"
	PlatformLinux Platform = "linux"
)

type ConfigurationSource string

const (
	ConfigurationSourceExplicit ConfigurationSource = "explicit"
	ConfigurationSourceDefault  ConfigurationSource = "default"
)
