package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codebundle/pkg/logging"
	"codebundle/pkg/version"
)

// NewRootCmd builds the codebundle command tree. Running the root command
// bundles a directory; subcommands provide auxiliary information.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	flags := newBundleFlags()

	rootCmd := &cobra.Command{
		Use:   "codebundle [root]",
		Short: "Codebundle combines a project tree and its sources into one file",
		Long: `Codebundle walks a project directory and writes a single text document containing
an indented tree of its directories and files, followed by the contents of every
file with an allowed extension. Dependency, build and dot directories are skipped.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !flags.debug {
				return nil
			}
			if err := logging.Setup(true, "codebundle", version.Get().Version); err != nil {
				return err
			}
			logger = logging.Logger
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.root = args[0]
			}
			return runBundle(cmd, flags, logger)
		},
	}

	flags.register(rootCmd)
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}
