package ports

import "xcodegen-deps/internal/types"

type ManifestWriterPort interface {
	WriteManifest(path string, manifest types.ManifestFile) error
}

type ManifestReaderPort interface {
	ReadManifest(path string) (types.ManifestFile, error)
}
