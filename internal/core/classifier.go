package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xcodegen-deps/internal/policies"
	"xcodegen-deps/internal/ports"
	"xcodegen-deps/internal/types"
)

// Classifier decides whether a linker token names a vendored binary or a
// platform SDK.
type Classifier struct {
	Resolver  ports.ArtifactResolverPort
	Inspector ports.BinaryInspectorPort
}

func NewClassifier(resolver ports.ArtifactResolverPort, inspector ports.BinaryInspectorPort) Classifier {
	return Classifier{
		Resolver:  resolver,
		Inspector: inspector,
	}
}

func (c Classifier) Classify(ctx context.Context, token string) (types.Dependency, error) {
	if c.Resolver == nil || c.Inspector == nil {
		return types.Dependency{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("classifier requires artifact resolver and binary inspector ports")
	}
	if err := policies.ValidateToken(token); err != nil {
		return types.Dependency{}, err
	}

	path, found, err := c.Resolver.Resolve(token)
	if err != nil {
		return types.Dependency{}, artifactResolutionError(token, err)
	}
	if !found {
		log.Ctx(ctx).Debug().Str("token", token).Msg("no artifact on disk, treating as sdk")
		return types.NewSDKDependency(token), nil
	}

	kind, err := c.Inspector.Inspect(path)
	if err != nil {
		return types.Dependency{}, artifactResolutionError(token, err)
	}
	if kind != types.BinaryKindDynamic && kind != types.BinaryKindStatic {
		return types.Dependency{}, artifactResolutionError(token, fmt.Errorf("unsupported binary kind %q at %s", kind, path))
	}
	log.Ctx(ctx).Debug().
		Str("token", token).
		Str("path", path).
		Str("kind", string(kind)).
		Msg("artifact classified")
	return types.NewArtifactDependency(token, path, kind == types.BinaryKindDynamic), nil
}
