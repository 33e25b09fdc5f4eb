package app

import (
	"xcodegen-deps/internal/adapters"
	"xcodegen-deps/internal/ports"
	"xcodegen-deps/internal/types"
)

type Service struct {
	Targets        ports.TargetSourcePort
	Settings       ports.LinkerSettingsPort
	ManifestWriter ports.ManifestWriterPort
	ManifestReader ports.ManifestReaderPort
	NewResolver    func(searchPaths []string) ports.ArtifactResolverPort
	NewInspector   func(platform types.Platform) (ports.BinaryInspectorPort, error)
}

func NewService() Service {
	manifest := adapters.NewManifestFileAdapter()
	return Service{
		Targets:        adapters.NewPodsSandboxAdapter(),
		Settings:       adapters.NewXCConfigFileAdapter(),
		ManifestWriter: manifest,
		ManifestReader: manifest,
		NewResolver: func(searchPaths []string) ports.ArtifactResolverPort {
			return adapters.NewArtifactSearchAdapter(searchPaths)
		},
		NewInspector: adapters.NewBinaryInspector,
	}
}
