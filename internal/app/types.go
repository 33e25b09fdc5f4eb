package app

import "xcodegen-deps/internal/types"

type GenerateRequest struct {
	SandboxRoot         string                    `validate:"required"`
	SearchPaths         []string                  `validate:"required,min=1,dive,required"`
	OutputPath          string                    `validate:"required"`
	Platform            types.Platform            `validate:"oneof=apple linux"`
	ConfigurationSource types.ConfigurationSource `validate:"oneof=explicit default"`
	Configurations      []string                  `validate:"dive,required"`
	EnvironmentConfigs  map[string]string         `validate:"dive,keys,required,endkeys,required"`
	Workers             int                       `validate:"gte=0"`
}

type GenerateResult struct {
	OutputPath string
	Targets    []TargetSummary
}

type ClassifyRequest struct {
	Tokens      []string       `validate:"required,min=1"`
	SearchPaths []string       `validate:"required,min=1,dive,required"`
	Platform    types.Platform `validate:"oneof=apple linux"`
}

type ClassifyResult struct {
	Dependencies []types.Dependency
}

type InspectRequest struct {
	ManifestPath string `validate:"required"`
}

type InspectResult struct {
	Targets []TargetSummary
}

// TargetSummary counts one target's manifest entries.
type TargetSummary struct {
	Name        string
	ConfigFiles int
	Frameworks  int
	Embedded    int
	SDKs        int
}
