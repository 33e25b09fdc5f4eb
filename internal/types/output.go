package types

type ManifestDependency struct {
	Framework string `yaml:"framework,omitempty"`
	Embed     *bool  `yaml:"embed,omitempty"`
	SDK       string `yaml:"sdk,omitempty"`
}

type ManifestTarget struct {
	ConfigFiles  map[string]string    `yaml:"configFiles"`
	Dependencies []ManifestDependency `yaml:"dependencies"`
}

// ManifestFile is the document consumed by XcodeGen's include mechanism.
type ManifestFile struct {
	Targets map[string]ManifestTarget `yaml:"targets"`
}
