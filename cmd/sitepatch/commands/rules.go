package commands

import (
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sitepatch/cmd/sitepatch/opts"
	"github.com/walteh/sitepatch/pkg/log"
	"github.com/walteh/sitepatch/pkg/config"
	"github.com/walteh/sitepatch/pkg/operation"
	"github.com/walteh/sitepatch/pkg/provider"
	"github.com/walteh/sitepatch/pkg/text"
)

// NewRulesCmd creates the command running a rule set file
func NewRulesCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		apply    bool
		dir      string
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "rules FILE",
		Short: "Run the rules of a YAML, HCL or JSON rule set file",
		Long: `Rules loads a rule set file and applies it to every matching file under
--dir. The file format follows the extension (.yaml, .yml, .hcl, .json).
Every rule needs a guard telling when its change is already present.
Rules without one, or with a broken pattern or selector, are reported and
skipped; the rest still run. exclude_dirs adds to the default excluded
directories. Without --apply nothing is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd, rootOpts)
			logger := log.FromContext(ctx)

			cfg, err := config.Load(ctx, args[0])
			if err != nil {
				return errors.Errorf("loading rule set: %w", err)
			}

			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() {
				logger.Errorf("Directory not found: %s", dir)
				return ErrIssues
			}

			rules, invalid := text.CompileAll(cfg.Specs())

			var scanOpts []provider.ScanOption
			if len(cfg.ExcludeDirs) > 0 {
				scanOpts = append(scanOpts, provider.WithExtraExcludeDirs(cfg.ExcludeDirs...))
			}
			if len(cfg.Patterns) > 0 {
				scanOpts = append(scanOpts, provider.WithPatterns(cfg.Patterns...))
			}

			mode := operation.ModePreview
			if apply {
				mode = operation.ModeApply
			}

			reporter, err := execute(ctx, runSpec{
				name:     "rules",
				header:   "running " + cfg.String(),
				source:   "recursive scan",
				provider: provider.NewRecursiveScan(dir, scanOpts...),
				rules:    rules,
				invalid:  invalid,
				mode:     mode,
				entry:    cfg.Entry,
				showDiff: showDiff,
			})
			if err != nil {
				return err
			}

			summary := reporter.Summary()
			logger.LogNewline()
			if summary.Errors > 0 || summary.InvalidRules > 0 {
				logger.Warningf("%d problem(s) need manual review.", summary.Errors+summary.InvalidRules)
				return ErrIssues
			}
			if !apply && summary.Applied > 0 {
				logger.Hint("To apply these changes, run:", "sitepatch rules "+args[0]+" --dir "+dir+" --apply")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "write changes (default is a dry run)")
	cmd.Flags().StringVar(&dir, "dir", ".", "root directory to scan")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a line diff for every changed file")

	return cmd
}
