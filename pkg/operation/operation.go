// Package operation runs a rule set over the files of a website root
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sitepatch/pkg/provider"
	"github.com/walteh/sitepatch/pkg/status"
	"github.com/walteh/sitepatch/pkg/text"
)

// ErrMissingEntry is returned when the entry file is absent from the root.
// Nothing is read or written in that case.
var ErrMissingEntry = errors.Base("entry file not found")

// 🎚️ Mode selects whether changes reach disk
type Mode int

const (
	ModeApply   Mode = iota // Write changed files in place
	ModePreview             // Report what would change, write nothing
)

// String returns a string representation of Mode
func (m Mode) String() string {
	if m == ModePreview {
		return "preview"
	}
	return "apply"
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Name labels the run in logs
	Name string
	// Provider enumerates the target files
	Provider provider.Provider
	// Files reads and writes the targets
	Files provider.FileManager
	// Rules are applied to every target they are scoped to, in order
	Rules []text.Rule
	// InvalidRules were dropped at construction and are reported once
	InvalidRules []error
	// Rewriter defaults to text.NewRewriter()
	Rewriter text.Rewriter
	// Mode defaults to ModeApply
	Mode Mode
	// Entry is checked before anything else; empty disables the check
	Entry string
	// ShowDiff attaches a line diff to every changed file's outcome
	ShowDiff bool
}

// 🎮 Operator processes one run. It holds no state between runs.
type Operator struct {
	opts Options
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Provider == nil {
		return nil, errors.Errorf("provider is required")
	}
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	if opts.Rewriter == nil {
		opts.Rewriter = text.NewRewriter()
	}
	if err := opts.Rewriter.ValidateRules(opts.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}
	return &Operator{opts: opts}, nil
}

// 🏃 Run processes every target in provider order and returns the filled
// reporter. Targets no rule is scoped to are passed over. File level
// failures become outcomes; the returned error is set only when the run
// could not start or was cancelled.
func (o *Operator) Run(ctx context.Context) (*status.Reporter, error) {
	logger := zerolog.Ctx(ctx).With().Str("run", o.opts.Name).Logger()
	ctx = logger.WithContext(ctx)

	if o.opts.Entry != "" {
		ok, err := o.opts.Files.FileExists(ctx, o.opts.Entry)
		if err != nil {
			return nil, errors.Errorf("checking entry file: %w", err)
		}
		if !ok {
			return nil, errors.Errorf("%w: %s in %s", ErrMissingEntry, o.opts.Entry, o.opts.Provider.Root())
		}
	}

	reporter := status.NewReporter(o.opts.Mode == ModePreview)
	for _, err := range o.opts.InvalidRules {
		reporter.RecordRuleError(ctx, err)
	}

	logger.Debug().
		Str("root", o.opts.Provider.Root()).
		Str("mode", o.opts.Mode.String()).
		Int("rules", len(o.opts.Rules)).
		Msg("starting run")

	for path, err := range o.opts.Provider.ListTargets(ctx) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return reporter, errors.Errorf("run cancelled: %w", ctxErr)
		}
		if err != nil {
			reporter.Record(ctx, path, status.IOError(err))
			continue
		}
		rules := text.ForPath(o.opts.Rules, path)
		if len(rules) == 0 {
			logger.Debug().Str("path", path).Msg("no rules in scope")
			continue
		}
		reporter.Record(ctx, path, o.processFile(ctx, path, rules))
	}

	return reporter, nil
}

// processFile runs the rules scoped to path against its content
func (o *Operator) processFile(ctx context.Context, path string, rules []text.Rule) status.Outcome {
	content, err := o.opts.Files.ReadFile(ctx, path)
	if err != nil {
		return status.IOError(errors.Errorf("reading %s: %w", path, err))
	}

	result := o.opts.Rewriter.Apply(ctx, string(content), rules)
	outcome := status.FromResult(result)

	if !result.WasModified() {
		return outcome
	}

	if o.opts.ShowDiff {
		outcome.Diff = text.Diff(result.Original, result.Document)
	}

	if o.opts.Mode == ModePreview {
		return outcome
	}

	if err := o.opts.Files.WriteFile(ctx, path, []byte(result.Document)); err != nil {
		failed := status.IOError(errors.Errorf("writing %s: %w", path, err))
		failed.Rules = outcome.Rules
		return failed
	}
	outcome.Written = true

	return outcome
}
