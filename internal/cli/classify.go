package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"xcodegen-deps/internal/adapters"
	"xcodegen-deps/internal/app"
	"xcodegen-deps/internal/types"
)

type classifyOptions struct {
	SearchPaths []string
	Platform    string
}

func newClassifyCommand() *cobra.Command {
	opts := classifyOptions{}
	cmd := &cobra.Command{
		Use:   "classify <token>...",
		Short: "Classify linker tokens as frameworks or SDKs",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, map[string]string{
				"search_paths": "search-path",
				"platform":     "platform",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.Flags().StringSliceVar(&opts.SearchPaths, "search-path", []string{adapters.DefaultSearchPath}, "Directories holding prebuilt frameworks")
	cmd.Flags().StringVar(&opts.Platform, "platform", string(types.PlatformApple), "Binary format of the artifacts (apple|linux)")
	return cmd
}

func runClassify(ctx context.Context, cmd *cobra.Command, opts classifyOptions, tokens []string) error {
	service := newAppService()
	result, err := service.Classify(ctx, app.ClassifyRequest{
		Tokens:      tokens,
		SearchPaths: resolveStrings(cmd, opts.SearchPaths, "search_paths", "search-path"),
		Platform:    types.Platform(resolveString(cmd, opts.Platform, "platform", "platform")),
	})
	if err != nil {
		return err
	}
	for _, dep := range result.Dependencies {
		if dep.IsArtifact() {
			linkage := types.BinaryKindStatic
			if dep.IsDynamic {
				linkage = types.BinaryKindDynamic
			}
			fmt.Printf("%s: framework %s (%s)\n", dep.RawName, dep.ArtifactPath, linkage)
			continue
		}
		fmt.Printf("%s: sdk\n", dep.RawName)
	}
	return nil
}
