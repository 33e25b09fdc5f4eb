package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xcodegen-deps/internal/types"
)

// Inspect summarizes an existing manifest per target.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	req.ManifestPath = strings.TrimSpace(req.ManifestPath)
	if err := validateRequest("inspect", req); err != nil {
		return InspectResult{}, err
	}
	if s.ManifestReader == nil {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("inspect requires a manifest reader port")
	}
	manifest, err := s.ManifestReader.ReadManifest(req.ManifestPath)
	if err != nil {
		return InspectResult{}, err
	}
	log.Ctx(ctx).Debug().Str("manifest", req.ManifestPath).Int("targets", len(manifest.Targets)).Msg("manifest loaded")
	return InspectResult{Targets: summarizeManifest(manifest)}, nil
}

func summarizeManifest(manifest types.ManifestFile) []TargetSummary {
	summaries := make([]TargetSummary, 0, len(manifest.Targets))
	for _, name := range sortedKeys(manifest.Targets) {
		target := manifest.Targets[name]
		summary := TargetSummary{Name: name, ConfigFiles: len(target.ConfigFiles)}
		for _, dep := range target.Dependencies {
			switch {
			case dep.Framework != "":
				summary.Frameworks++
				if dep.Embed != nil && *dep.Embed {
					summary.Embedded++
				}
			case dep.SDK != "":
				summary.SDKs++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func sortedKeys[K comparable, V any](input map[K]V) []K {
	keys := make([]K, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}
