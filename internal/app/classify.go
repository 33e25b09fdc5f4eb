package app

import (
	"context"

	"xcodegen-deps/internal/adapters"
	"xcodegen-deps/internal/types"
)

// Classify runs the classifier on ad-hoc tokens with the same search
// policy generate uses.
func (s Service) Classify(ctx context.Context, req ClassifyRequest) (ClassifyResult, error) {
	if len(req.SearchPaths) == 0 {
		req.SearchPaths = []string{adapters.DefaultSearchPath}
	}
	if req.Platform == "" {
		req.Platform = types.PlatformApple
	}
	if err := validateRequest("classify", req); err != nil {
		return ClassifyResult{}, err
	}
	classifier, err := s.classifier(req.SearchPaths, req.Platform)
	if err != nil {
		return ClassifyResult{}, err
	}
	deps := make([]types.Dependency, 0, len(req.Tokens))
	for _, token := range req.Tokens {
		dep, err := classifier.Classify(ctx, token)
		if err != nil {
			return ClassifyResult{}, err
		}
		deps = append(deps, dep)
	}
	return ClassifyResult{Dependencies: deps}, nil
}
