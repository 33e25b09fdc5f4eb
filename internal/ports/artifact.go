//go:generate mockgen -source=$GOFILE -destination=artifact_mock.go -package=$GOPACKAGE

package ports

import "xcodegen-deps/internal/types"

// ArtifactResolverPort locates the on-disk binary artifact for a linker
// token.  A miss is reported as ("", false, nil) and is not an error;
// err is reserved for probes that could not be completed.
type ArtifactResolverPort interface {
	Resolve(token string) (path string, found bool, err error)
}

// BinaryInspectorPort reads an artifact's binary header to tell a shared
// object from a static archive.  Implementations exist per platform.
type BinaryInspectorPort interface {
	Inspect(artifactPath string) (types.BinaryKind, error)
}
