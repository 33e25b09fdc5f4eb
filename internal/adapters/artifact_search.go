package adapters

import (
	"os"
	"path/filepath"

	"xcodegen-deps/internal/ports"
	"xcodegen-deps/internal/shared"
)

// DefaultSearchPath is where prebuilt pods are collected.
const DefaultSearchPath = "Rome"

// ArtifactSearchAdapter looks for a token's bundle or library in a list of
// directories.  The first directory holding any candidate wins.
type ArtifactSearchAdapter struct {
	SearchPaths []string
}

func NewArtifactSearchAdapter(searchPaths []string) ArtifactSearchAdapter {
	return ArtifactSearchAdapter{SearchPaths: searchPaths}
}

type searchCandidate struct {
	name  string
	isDir bool
}

func searchCandidates(token string) []searchCandidate {
	return []searchCandidate{
		{name: token + ".xcframework", isDir: true},
		{name: token + ".framework", isDir: true},
		{name: "lib" + token + ".dylib"},
		{name: "lib" + token + ".so"},
		{name: "lib" + token + ".a"},
	}
}

func (a ArtifactSearchAdapter) Resolve(token string) (string, bool, error) {
	for _, dir := range a.SearchPaths {
		for _, candidate := range searchCandidates(token) {
			path := filepath.Join(dir, candidate.name)
			info, err := os.Stat(path)
			if err != nil {
				if shared.IsNotFound(err) {
					continue
				}
				return "", false, err
			}
			if info.IsDir() != candidate.isDir {
				continue
			}
			return path, true, nil
		}
	}
	return "", false, nil
}

var _ ports.ArtifactResolverPort = ArtifactSearchAdapter{}
