package app

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xcodegen-deps/internal/adapters"
	"xcodegen-deps/internal/types"
)

// DefaultConfigurations are the build configurations of a fresh Xcode
// project.
var DefaultConfigurations = []string{"Debug", "Release"}

const defaultWorkers = 4

// applyGenerateDefaults fills every option the caller left empty.  An
// unset configuration source becomes explicit when environment configs
// were supplied and default otherwise.
func applyGenerateDefaults(req GenerateRequest) GenerateRequest {
	if strings.TrimSpace(req.SandboxRoot) == "" {
		req.SandboxRoot = adapters.DefaultSandboxRoot
	}
	if len(req.SearchPaths) == 0 {
		req.SearchPaths = []string{adapters.DefaultSearchPath}
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		req.OutputPath = adapters.DefaultManifestFile
	}
	if req.Platform == "" {
		req.Platform = types.PlatformApple
	}
	if req.ConfigurationSource == "" {
		if len(req.EnvironmentConfigs) > 0 {
			req.ConfigurationSource = types.ConfigurationSourceExplicit
		} else {
			req.ConfigurationSource = types.ConfigurationSourceDefault
		}
	}
	if req.ConfigurationSource == types.ConfigurationSourceDefault && len(req.Configurations) == 0 {
		req.Configurations = append([]string(nil), DefaultConfigurations...)
	}
	if req.Workers == 0 {
		req.Workers = defaultWorkers
	}
	return req
}

// resolveConfigFiles returns the configuration -> settings file map
// handed through to every target.
func resolveConfigFiles(req GenerateRequest) (map[string]string, error) {
	switch req.ConfigurationSource {
	case types.ConfigurationSourceExplicit:
		if len(req.EnvironmentConfigs) == 0 {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("explicit configuration source requires environment configs")
		}
		files := make(map[string]string, len(req.EnvironmentConfigs))
		for name, path := range req.EnvironmentConfigs {
			files[name] = path
		}
		return files, nil
	case types.ConfigurationSourceDefault:
		files := make(map[string]string, len(req.Configurations))
		for _, name := range req.Configurations {
			files[name] = DefaultSettingsPath(name)
		}
		return files, nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown configuration source %q", req.ConfigurationSource))
	}
}

// DefaultSettingsPath names the settings file for a configuration after
// the first word of its name, with '-' treated as a word break.
func DefaultSettingsPath(configuration string) string {
	words := strings.Fields(strings.ReplaceAll(configuration, "-", " "))
	base := ""
	if len(words) > 0 {
		base = words[0]
	}
	return "Supporting Files/Settings-" + base + ".xcconfig"
}
