package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codebundle/pkg/combine"
)

// bundleFlags holds the values bound to the root command's flags.
type bundleFlags struct {
	root              string
	output            string
	excludeDirs       []string
	excludeFiles      []string
	includeExtensions []string
	copyToClipboard   bool
	debug             bool
}

func newBundleFlags() *bundleFlags {
	return &bundleFlags{root: "."}
}

func (f *bundleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", combine.DefaultOutputFile, "File to write the bundle to")
	cmd.Flags().StringSliceVar(&f.excludeDirs, "exclude-dir", combine.DefaultExcludeDirs(), "Directory names to skip entirely")
	cmd.Flags().StringSliceVar(&f.excludeFiles, "exclude-file", combine.DefaultExcludeFiles(), "File names to leave out of the tree and contents")
	cmd.Flags().StringSliceVar(&f.includeExtensions, "include-ext", combine.DefaultIncludeExtensions(), "File suffixes whose contents are included")
	cmd.Flags().BoolVarP(&f.copyToClipboard, "copy", "c", false, "Also copy the bundle to the system clipboard")
	cmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "Enable debug logging")
}

// runBundle executes one bundling run and reports the written file.
func runBundle(cmd *cobra.Command, f *bundleFlags, logger *zap.Logger) error {
	result, err := combine.Run(combine.Options{
		Root:              f.root,
		OutputFile:        f.output,
		ExcludeDirs:       f.excludeDirs,
		ExcludeFiles:      f.excludeFiles,
		IncludeExtensions: f.includeExtensions,
	}, logger)
	if err != nil {
		return err
	}

	if f.copyToClipboard {
		if err := copyFileToClipboard(result.OutputPath, logger); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Main files summary saved to %s\n", result.OutputPath)
	return nil
}
