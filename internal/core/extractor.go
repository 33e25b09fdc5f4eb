package core

import (
	"context"
	"maps"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xcodegen-deps/internal/ports"
	"xcodegen-deps/internal/types"
)

// Extractor turns one target's linker flags into its ordered dependency
// list.
type Extractor struct {
	Classifier Classifier
	Settings   ports.LinkerSettingsPort
}

func NewExtractor(classifier Classifier, settings ports.LinkerSettingsPort) Extractor {
	return Extractor{
		Classifier: classifier,
		Settings:   settings,
	}
}

// Extract reads the target's settings file and extracts its dependencies.
// A settings file without an OTHER_LDFLAGS line is an error; an empty
// value is not.
func (e Extractor) Extract(ctx context.Context, target types.BuildTarget, configFiles map[string]string) (types.TargetDependencySet, error) {
	if e.Settings == nil {
		return types.TargetDependencySet{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("extractor requires a linker settings port")
	}
	if strings.TrimSpace(target.SettingsPath) == "" {
		return types.TargetDependencySet{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no settings file for target " + target.Name)
	}
	raw, found, err := e.Settings.ReadLinkerFlags(target.SettingsPath)
	if err != nil {
		return types.TargetDependencySet{}, withTarget(err, target.Name)
	}
	if !found {
		return types.TargetDependencySet{}, missingLinkerSettingsError(target.Name, target.SettingsPath)
	}
	return e.ExtractFlags(ctx, target.Name, raw, configFiles)
}

func (e Extractor) ExtractFlags(ctx context.Context, targetName string, raw string, configFiles map[string]string) (types.TargetDependencySet, error) {
	if strings.TrimSpace(targetName) == "" {
		return types.TargetDependencySet{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("target name is empty")
	}

	self, tokens := DependencyTokens(raw)
	logger := log.Ctx(ctx).With().Str("target", targetName).Logger()
	if self != "" && self != targetName {
		logger.Debug().Str("dropped", self).Msg("first linker token does not name the target")
	}

	deps := make([]types.Dependency, 0, len(tokens))
	for _, token := range tokens {
		dep, err := e.Classifier.Classify(ctx, token)
		if err != nil {
			return types.TargetDependencySet{}, withTarget(err, targetName)
		}
		deps = append(deps, dep)
	}
	logger.Debug().Int("dependencies", len(deps)).Msg("target dependencies extracted")

	return types.TargetDependencySet{
		TargetName:   targetName,
		ConfigFiles:  maps.Clone(configFiles),
		Dependencies: deps,
	}, nil
}
