package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xcodegen-deps/internal/ports"
	"xcodegen-deps/internal/shared"
	"xcodegen-deps/internal/types"
)

const (
	// DefaultSandboxRoot is the Pods directory next to the Podfile.
	DefaultSandboxRoot = "Pods"
	targetSupportDir   = "Target Support Files"
	umbrellaPrefix     = "Pods-"
)

// PodsSandboxAdapter discovers umbrella targets from the support files
// CocoaPods writes for each of them.
type PodsSandboxAdapter struct{}

func NewPodsSandboxAdapter() PodsSandboxAdapter {
	return PodsSandboxAdapter{}
}

func (a PodsSandboxAdapter) DiscoverTargets(sandboxRoot string) ([]types.BuildTarget, error) {
	if strings.TrimSpace(sandboxRoot) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("sandbox root is empty")
	}
	supportDir := filepath.Join(sandboxRoot, targetSupportDir)
	entries, err := os.ReadDir(supportDir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(shared.FileErrorCode(err)).
			WithMsg("failed to read target support files in " + sandboxRoot).
			WithCause(err)
	}

	var targets []types.BuildTarget
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), umbrellaPrefix) {
			continue
		}
		label := entry.Name()
		name := TargetNameFromLabel(label)
		if strings.TrimSpace(name) == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("umbrella target %q has an empty name", label))
		}
		settings, err := targetSettingsPath(supportDir, label)
		if err != nil {
			return nil, err
		}
		targets = append(targets, types.BuildTarget{
			Label:        label,
			Name:         name,
			SettingsPath: settings,
		})
	}
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].Label < targets[j].Label
	})
	return targets, nil
}

// TargetNameFromLabel strips the umbrella prefix from a CocoaPods label.
func TargetNameFromLabel(label string) string {
	return strings.TrimPrefix(label, umbrellaPrefix)
}

// targetSettingsPath picks the first <label>.*.xcconfig in lexical order.
func targetSettingsPath(supportDir string, label string) (string, error) {
	pattern := filepath.Join(supportDir, label, label+".*.xcconfig")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("invalid settings pattern for " + label).
			WithCause(err)
	}
	if len(matches) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no xcconfig found for target %s", label))
	}
	sort.Strings(matches)
	return matches[0], nil
}

var _ ports.TargetSourcePort = PodsSandboxAdapter{}
