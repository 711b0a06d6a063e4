package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/sitepatch/cmd/sitepatch/commands"
	"github.com/walteh/sitepatch/cmd/sitepatch/opts"
)

// NewRootCommand builds the sitepatch command tree writing console output to out
func NewRootCommand(out io.Writer) *cobra.Command {
	rootOpts := &opts.RootOpts{Out: out}

	cmd := &cobra.Command{
		Use:   "sitepatch",
		Short: "Idempotent content and navigation updates for a static website",
		Long: `sitepatch rewrites the HTML of a static website in place. Every rule
checks whether its change is already present before touching a file, so
running a command twice changes nothing the second time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, rootOpts)
		},
	}

	addRootFlags(cmd, rootOpts)

	cmd.SetOut(out)
	cmd.AddCommand(
		commands.NewCopyCmd(rootOpts),
		commands.NewNavCmd(rootOpts),
		commands.NewRulesCmd(rootOpts),
		commands.NewVersionCmd(rootOpts),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, rootOpts *opts.RootOpts) {
	cmd.PersistentFlags().BoolVarP(&rootOpts.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging raises the context logger to debug when asked
func setupLogging(cmd *cobra.Command, rootOpts *opts.RootOpts) {
	if !rootOpts.Debug {
		return
	}
	logger := zerolog.Ctx(cmd.Context()).Level(zerolog.DebugLevel)
	cmd.SetContext(logger.WithContext(cmd.Context()))
}
