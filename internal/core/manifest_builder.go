package core

import (
	"context"
	"fmt"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"xcodegen-deps/internal/types"
)

const defaultWorkers = 4

// ManifestBuilder extracts every target independently and joins the
// results by target name.  Any failing target aborts the whole build.
type ManifestBuilder struct {
	Extractor Extractor
	Workers   int
}

func NewManifestBuilder(extractor Extractor, workers int) ManifestBuilder {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return ManifestBuilder{
		Extractor: extractor,
		Workers:   workers,
	}
}

func (b ManifestBuilder) Build(ctx context.Context, targets []types.BuildTarget, configFiles map[string]string) (types.Manifest, error) {
	seen := map[string]string{}
	for _, target := range targets {
		if previous, ok := seen[target.Name]; ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate target name %s (%s and %s)", target.Name, previous, target.Label))
		}
		seen[target.Name] = target.Label
	}

	workers := b.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	p := pool.NewWithResults[types.TargetDependencySet]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(workers)
	for _, target := range targets {
		p.Go(func(ctx context.Context) (types.TargetDependencySet, error) {
			return b.Extractor.Extract(ctx, target, configFiles)
		})
	}
	sets, err := p.Wait()
	if err != nil {
		return nil, err
	}

	manifest := make(types.Manifest, len(sets))
	for _, set := range sets {
		assert.NotEmpty(ctx, set.TargetName, "extracted set must name its target")
		manifest[set.TargetName] = set
	}
	log.Ctx(ctx).Debug().Int("targets", len(manifest)).Msg("manifest built")
	return manifest, nil
}

// ToManifestFile maps classified dependencies onto the XcodeGen entry
// shape: frameworks carry an embed flag, SDKs carry only their name.
func ToManifestFile(manifest types.Manifest) types.ManifestFile {
	file := types.ManifestFile{Targets: make(map[string]types.ManifestTarget, len(manifest))}
	for name, set := range manifest {
		entries := make([]types.ManifestDependency, 0, len(set.Dependencies))
		for _, dep := range set.Dependencies {
			entries = append(entries, manifestEntry(dep))
		}
		configFiles := set.ConfigFiles
		if configFiles == nil {
			configFiles = map[string]string{}
		}
		file.Targets[name] = types.ManifestTarget{
			ConfigFiles:  configFiles,
			Dependencies: entries,
		}
	}
	return file
}

func manifestEntry(dep types.Dependency) types.ManifestDependency {
	if dep.IsArtifact() {
		embed := dep.IsDynamic
		return types.ManifestDependency{Framework: dep.ArtifactPath, Embed: &embed}
	}
	return types.ManifestDependency{SDK: dep.SDKName}
}

// TargetNames returns the manifest's target names in sorted order.
func TargetNames(manifest types.Manifest) []string {
	names := make([]string, 0, len(manifest))
	for name := range manifest {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
