package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xcodegen-deps/internal/core"
	"xcodegen-deps/internal/types"
)

// Generate discovers the sandbox's umbrella targets, classifies their
// linked dependencies and writes the XcodeGen manifest.  Nothing is
// written unless every target succeeds.
func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	req = applyGenerateDefaults(req)
	if err := validateRequest("generate", req); err != nil {
		return GenerateResult{}, err
	}
	if s.Targets == nil || s.Settings == nil || s.ManifestWriter == nil {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("generate requires target source, settings and manifest writer ports")
	}
	configFiles, err := resolveConfigFiles(req)
	if err != nil {
		return GenerateResult{}, err
	}
	classifier, err := s.classifier(req.SearchPaths, req.Platform)
	if err != nil {
		return GenerateResult{}, err
	}

	targets, err := s.Targets.DiscoverTargets(req.SandboxRoot)
	if err != nil {
		return GenerateResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("sandbox", req.SandboxRoot).
		Int("targets", len(targets)).
		Msg("umbrella targets discovered")

	builder := core.NewManifestBuilder(core.NewExtractor(classifier, s.Settings), req.Workers)
	manifest, err := builder.Build(ctx, targets, configFiles)
	if err != nil {
		return GenerateResult{}, err
	}
	file := core.ToManifestFile(manifest)
	if err := s.ManifestWriter.WriteManifest(req.OutputPath, file); err != nil {
		return GenerateResult{}, err
	}
	log.Ctx(ctx).Info().Str("output", req.OutputPath).Msg("dependency manifest written")

	return GenerateResult{
		OutputPath: req.OutputPath,
		Targets:    summarizeManifest(file),
	}, nil
}

func (s Service) classifier(searchPaths []string, platform types.Platform) (core.Classifier, error) {
	if s.NewResolver == nil || s.NewInspector == nil {
		return core.Classifier{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("service requires resolver and inspector factories")
	}
	inspector, err := s.NewInspector(platform)
	if err != nil {
		return core.Classifier{}, err
	}
	return core.NewClassifier(s.NewResolver(searchPaths), inspector), nil
}
