package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sitepatch/cmd/sitepatch/opts"
	"github.com/walteh/sitepatch/pkg/log"
	"github.com/walteh/sitepatch/pkg/operation"
	"github.com/walteh/sitepatch/pkg/provider"
	"github.com/walteh/sitepatch/pkg/status"
	"github.com/walteh/sitepatch/pkg/text"
)

// ErrIssues signals a run that finished but left something for a person to
// look at. The details have already been printed.
var ErrIssues = errors.Base("run finished with issues")

// runSpec is everything a command decides before handing off to the operator
type runSpec struct {
	name     string
	header   string
	source   string
	provider provider.Provider
	rules    []text.Rule
	invalid  []error
	mode     operation.Mode
	entry    string
	showDiff bool
}

// withLogger carries the console logger for a command in its context
func withLogger(cmd *cobra.Command, rootOpts *opts.RootOpts) context.Context {
	ctx := cmd.Context()
	return log.NewContext(ctx, log.New(rootOpts.Out, *zerolog.Ctx(ctx)))
}

// execute runs spec and renders per-file lines and the summary
func execute(ctx context.Context, spec runSpec) (*status.Reporter, error) {
	logger := log.FromContext(ctx)

	logger.Header(spec.header)
	logger.StartRun(ctx, log.RunInfo{
		Name:    spec.name,
		Root:    spec.provider.Root(),
		Source:  spec.source,
		Preview: spec.mode == operation.ModePreview,
		Rules:   len(spec.rules),
	})
	defer logger.EndRun(ctx)

	op, err := operation.New(operation.Options{
		Name:         spec.name,
		Provider:     spec.provider,
		Files:        provider.NewLocalFiles(spec.provider.Root()),
		Rules:        spec.rules,
		InvalidRules: spec.invalid,
		Mode:         spec.mode,
		Entry:        spec.entry,
		ShowDiff:     spec.showDiff,
	})
	if err != nil {
		return nil, errors.Errorf("creating operator: %w", err)
	}

	reporter, err := op.Run(ctx)
	if err != nil {
		if errors.Is(err, operation.ErrMissingEntry) {
			logger.Errorf("%s not found. Run this from the website root.", spec.entry)
			logger.Infof("Current path: %s", spec.provider.Root())
			return nil, ErrIssues
		}
		return nil, errors.Errorf("running %s: %w", spec.name, err)
	}

	logger.LogNewline()
	if err := reporter.Render(logger.Console()); err != nil {
		return nil, errors.Errorf("rendering report: %w", err)
	}

	return reporter, nil
}
