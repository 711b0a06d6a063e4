package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/walteh/sitepatch/cmd/sitepatch/opts"
	"github.com/walteh/sitepatch/pkg/log"
	"github.com/walteh/sitepatch/pkg/operation"
	"github.com/walteh/sitepatch/pkg/provider"
	"github.com/walteh/sitepatch/pkg/ruleset"
)

// NewNavCmd creates the command updating the site navigation
func NewNavCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		apply    bool
		dir      string
		showDiff bool
		exclude  []string
	)

	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Add the new links to the desktop and mobile navigation",
		Long: `Nav scans every HTML file under --dir and replaces the desktop and mobile
navigation with the current link list. Without --apply it only reports what
would change. Files that already carry the new links are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd, rootOpts)
			logger := log.FromContext(ctx)

			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() {
				logger.Errorf("Directory not found: %s", dir)
				return ErrIssues
			}

			rules, invalid := ruleset.Navigation()

			mode := operation.ModePreview
			if apply {
				mode = operation.ModeApply
			}

			scan := provider.NewRecursiveScan(dir, provider.WithExtraExcludeDirs(exclude...))

			logger.List("Adding new nav links:", ruleset.NavAdditions)

			reporter, err := execute(ctx, runSpec{
				name:     "nav",
				header:   "updating site navigation",
				source:   "recursive scan",
				provider: scan,
				rules:    rules,
				invalid:  invalid,
				mode:     mode,
				showDiff: showDiff,
			})
			if err != nil {
				return err
			}

			summary := reporter.Summary()
			logger.LogNewline()
			switch {
			case summary.Total == 0:
				logger.Info("No HTML files found.")
			case summary.Errors > 0 || summary.InvalidRules > 0:
				logger.Warningf("%d file(s) could not be processed.", summary.Errors+summary.InvalidRules)
				return ErrIssues
			case !apply && summary.Applied > 0:
				logger.Hint("To apply these changes, run:", "sitepatch nav --apply")
			case apply:
				logger.Success("Navigation updated in all files!")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "write changes (default is a dry run)")
	cmd.Flags().StringVar(&dir, "dir", ".", "root directory to scan")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a line diff for every changed file")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "extra directory names to skip, on top of "+strings.Join(provider.DefaultExcludeDirs, ", "))

	return cmd
}
