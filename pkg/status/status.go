// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/sitepatch/pkg/text"
)

// 📊 Kind classifies the outcome of processing one file
type Kind int

const (
	KindUnknown  Kind = iota
	KindApplied       // One or more rules fired
	KindSkipped       // Every change was already present
	KindNotFound      // No anchor was located
	KindIOError       // The file could not be read or written
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindApplied:
		return "applied"
	case KindSkipped:
		return "skipped"
	case KindNotFound:
		return "not-found"
	case KindIOError:
		return "io-error"
	default:
		return "unknown"
	}
}

// 📄 Outcome is the result of running one rule set against one file
type Outcome struct {
	Kind    Kind
	Count   int               // Rules applied, for KindApplied
	Reason  string            // Why the file was skipped
	Err     error             // Cause, for KindIOError
	Written bool              // Whether the change reached disk
	Rules   []text.RuleResult // Per rule detail, when the rewriter ran
	Missed  []string          // Rules whose anchor was absent while others matched
	Diff    string            // Optional preview diff
}

// Applied creates a KindApplied outcome
func Applied(count int) Outcome {
	return Outcome{Kind: KindApplied, Count: count}
}

// Skipped creates a KindSkipped outcome
func Skipped(reason string) Outcome {
	return Outcome{Kind: KindSkipped, Reason: reason}
}

// NotFound creates a KindNotFound outcome
func NotFound() Outcome {
	return Outcome{Kind: KindNotFound}
}

// IOError creates a KindIOError outcome
func IOError(err error) Outcome {
	return Outcome{Kind: KindIOError, Err: err}
}

// FromResult derives a file outcome from a rewriter result. Any fired rule
// makes it applied; otherwise an already applied rule makes it skipped;
// otherwise nothing matched. Rules that found no anchor on an applied or
// skipped file are listed in Missed.
func FromResult(result *text.Result) Outcome {
	var out Outcome
	switch {
	case result.AppliedCount > 0:
		out = Applied(result.AppliedCount)
	case result.Count(text.StateAlreadyApplied) > 0:
		out = Skipped("already updated")
	default:
		out = NotFound()
	}
	out.Rules = result.Rules
	if out.Kind != KindNotFound {
		for _, rr := range result.Rules {
			if rr.State == text.StateNotFound {
				out.Missed = append(out.Missed, rr.ID)
			}
		}
	}
	return out
}

// 📝 Record pairs a path with its outcome
type Record struct {
	Path    string
	Outcome Outcome
}

// RuleIssue is a rule that could not be constructed
type RuleIssue struct {
	Err error
}

// 📈 Summary holds the counts for one run
type Summary struct {
	Total        int
	Applied      int
	Skipped      int
	NotFound     int
	MissedRules  int // Unmatched rules on files that otherwise matched
	Errors       int
	Written      int
	InvalidRules int
	Preview      bool
}

// Issues counts everything a person should look at
func (s Summary) Issues() int {
	return s.NotFound + s.MissedRules + s.Errors + s.InvalidRules
}

// 🎯 Reporter accumulates outcomes for a single run. It is not safe for
// concurrent use; runs process files one at a time.
type Reporter struct {
	preview    bool
	records    []Record
	ruleIssues []RuleIssue
	formatter  FileFormatter
}

// NewReporter creates a Reporter. Preview selects "would update" wording.
func NewReporter(preview bool) *Reporter {
	return &Reporter{
		preview:   preview,
		formatter: NewDefaultFileFormatter(preview),
	}
}

// Preview reports whether the run only previews changes
func (r *Reporter) Preview() bool {
	return r.preview
}

// Record stores the outcome for path and logs it
func (r *Reporter) Record(ctx context.Context, path string, outcome Outcome) {
	r.records = append(r.records, Record{Path: path, Outcome: outcome})

	event := zerolog.Ctx(ctx).Debug()
	if outcome.Kind == KindIOError {
		event = zerolog.Ctx(ctx).Warn().Err(outcome.Err)
	}
	event.
		Str("path", path).
		Str("outcome", outcome.Kind.String()).
		Int("count", outcome.Count).
		Strs("missed", outcome.Missed).
		Bool("written", outcome.Written).
		Msg(r.formatter.FormatOutcome(path, outcome))
}

// RecordRuleError stores a rule that was dropped before the run
func (r *Reporter) RecordRuleError(ctx context.Context, err error) {
	r.ruleIssues = append(r.ruleIssues, RuleIssue{Err: err})
	zerolog.Ctx(ctx).Warn().Err(err).Msg("invalid rule")
}

// Records returns the recorded outcomes in order
func (r *Reporter) Records() []Record {
	return r.records
}

// RuleIssues returns the rules dropped before the run
func (r *Reporter) RuleIssues() []RuleIssue {
	return r.ruleIssues
}

// Summary counts the recorded outcomes
func (r *Reporter) Summary() Summary {
	s := Summary{
		Total:        len(r.records),
		InvalidRules: len(r.ruleIssues),
		Preview:      r.preview,
	}
	for _, rec := range r.records {
		switch rec.Outcome.Kind {
		case KindApplied:
			s.Applied++
			s.MissedRules += len(rec.Outcome.Missed)
		case KindSkipped:
			s.Skipped++
			s.MissedRules += len(rec.Outcome.Missed)
		case KindNotFound:
			s.NotFound++
		case KindIOError:
			s.Errors++
		}
		if rec.Outcome.Written {
			s.Written++
		}
	}
	return s
}

// HasIssues reports whether anything needs manual review
func (r *Reporter) HasIssues() bool {
	return r.Summary().Issues() > 0
}
