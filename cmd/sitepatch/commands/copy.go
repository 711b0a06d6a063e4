package commands

import (
	"github.com/spf13/cobra"

	"github.com/walteh/sitepatch/cmd/sitepatch/opts"
	"github.com/walteh/sitepatch/pkg/log"
	"github.com/walteh/sitepatch/pkg/operation"
	"github.com/walteh/sitepatch/pkg/provider"
	"github.com/walteh/sitepatch/pkg/ruleset"
)

// NewCopyCmd creates the command applying the copy edits
func NewCopyCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		dryRun   bool
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "copy [root]",
		Short: "Apply the copy edits and footer logo update",
		Long: `Copy applies the page copy edits and the footer logo update to the fixed
list of site pages under root (default: the current directory).
It will:
1. Abort when index.html is missing from root
2. Update the footer logo on every listed page that exists
3. Apply the per-page copy edits, reporting missing pages as issues
4. Report every edit whose anchor is missing from its page
5. Print a summary and exit non-zero when anything needs review`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd, rootOpts)
			logger := log.FromContext(ctx)

			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			rules, invalid := ruleset.CopyEdits()

			mode := operation.ModeApply
			if dryRun {
				mode = operation.ModePreview
			}

			reporter, err := execute(ctx, runSpec{
				name:     "copy",
				header:   "updating site copy",
				source:   "fixed page list",
				provider: provider.NewFixedList(root, ruleset.CopyPages).Require(ruleset.RequiredCopyPages...),
				rules:    rules,
				invalid:  invalid,
				mode:     mode,
				entry:    ruleset.EntryFile,
				showDiff: showDiff,
			})
			if err != nil {
				return err
			}

			summary := reporter.Summary()
			logger.LogNewline()
			if issues := summary.Issues(); issues > 0 {
				logger.Warningf("%d update(s) had issues. Please review and fix them manually.", issues)
				return ErrIssues
			}

			if dryRun {
				logger.Successf("Dry run complete. %d file(s) would change; nothing was written.", summary.Applied)
				logger.Hint("To apply these changes, run:", "sitepatch copy "+root)
				return nil
			}

			logger.Success("All updates completed successfully!")
			logger.Hint("Next steps:",
				"Review the changes: git diff",
				"Test locally if desired",
				"Upload images/logo-white.webp to your repo",
				"Commit: git add . && git commit -m 'Update copy for clarity and compliance'",
				"Push: git push origin [branch-name]",
			)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report changes without writing files")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a line diff for every changed file")

	return cmd
}
