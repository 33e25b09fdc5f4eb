package ports

import "xcodegen-deps/internal/types"

// TargetSourcePort enumerates the umbrella targets of a Pods sandbox.
type TargetSourcePort interface {
	DiscoverTargets(sandboxRoot string) ([]types.BuildTarget, error)
}
