package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"xcodegen-deps/internal/adapters"
	"xcodegen-deps/internal/app"
	"xcodegen-deps/internal/types"
)

type generateOptions struct {
	Sandbox             string
	SearchPaths         []string
	Output              string
	Platform            string
	ConfigurationSource string
	Configurations      []string
	EnvironmentConfigs  map[string]string
	Workers             int
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the per-target dependency manifest for XcodeGen",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, map[string]string{
				"sandbox":              "sandbox",
				"search_paths":         "search-path",
				"output":               "output",
				"platform":             "platform",
				"configuration_source": "configuration-source",
				"configurations":       "configurations",
				"workers":              "workers",
			})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Sandbox, "sandbox", adapters.DefaultSandboxRoot, "CocoaPods sandbox root")
	cmd.Flags().StringSliceVar(&opts.SearchPaths, "search-path", []string{adapters.DefaultSearchPath}, "Directories holding prebuilt frameworks")
	cmd.Flags().StringVar(&opts.Output, "output", adapters.DefaultManifestFile, "Manifest output path")
	cmd.Flags().StringVar(&opts.Platform, "platform", string(types.PlatformApple), "Binary format of the artifacts (apple|linux)")
	cmd.Flags().StringVar(&opts.ConfigurationSource, "configuration-source", "", "Config file source (explicit|default)")
	cmd.Flags().StringSliceVar(&opts.Configurations, "configurations", app.DefaultConfigurations, "Build configurations for default config files")
	cmd.Flags().StringToStringVar(&opts.EnvironmentConfigs, "environment-config", nil, "Explicit configuration=path config files")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "Targets extracted in parallel")
	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	service := newAppService()
	result, err := service.Generate(ctx, app.GenerateRequest{
		SandboxRoot:         resolveString(cmd, opts.Sandbox, "sandbox", "sandbox"),
		SearchPaths:         resolveStrings(cmd, opts.SearchPaths, "search_paths", "search-path"),
		OutputPath:          resolveString(cmd, opts.Output, "output", "output"),
		Platform:            types.Platform(resolveString(cmd, opts.Platform, "platform", "platform")),
		ConfigurationSource: types.ConfigurationSource(resolveString(cmd, opts.ConfigurationSource, "configuration_source", "configuration-source")),
		Configurations:      resolveStrings(cmd, opts.Configurations, "configurations", "configurations"),
		EnvironmentConfigs:  resolveStringMap(cmd, opts.EnvironmentConfigs, "environment_configs", "environment-config"),
		Workers:             resolveInt(cmd, opts.Workers, "workers", "workers"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote dependency manifest: %s\n", result.OutputPath)
	printSummaries(result.Targets)
	return nil
}

func printSummaries(targets []app.TargetSummary) {
	for _, target := range targets {
		fmt.Printf("- %s: %d frameworks (%d embedded), %d sdks, %d config files\n",
			target.Name, target.Frameworks, target.Embedded, target.SDKs, target.ConfigFiles)
	}
}
