package status

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// FileFormatter defines how file outcomes should be formatted
type FileFormatter interface {
	// FormatOutcome formats a one line outcome message
	FormatOutcome(path string, outcome Outcome) string

	// FormatSummary formats the counts for a run
	FormatSummary(s Summary) (string, error)
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct {
	preview bool
}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter(preview bool) *DefaultFileFormatter {
	return &DefaultFileFormatter{preview: preview}
}

// FormatOutcome formats a file outcome with a leading symbol
func (f *DefaultFileFormatter) FormatOutcome(path string, outcome Outcome) string {
	switch outcome.Kind {
	case KindApplied:
		if f.preview || !outcome.Written {
			return fmt.Sprintf("→ Would update (%s): %s%s", pluralRules(outcome.Count), path, missedSuffix(outcome))
		}
		return fmt.Sprintf("✓ Updated (%s): %s%s", pluralRules(outcome.Count), path, missedSuffix(outcome))
	case KindSkipped:
		reason := outcome.Reason
		if reason == "" {
			reason = "already updated"
		}
		return fmt.Sprintf("✓ %s: %s%s", capitalize(reason), path, missedSuffix(outcome))
	case KindNotFound:
		return fmt.Sprintf("⚠ No matching patterns: %s", path)
	case KindIOError:
		return fmt.Sprintf("✗ Failed %s: %v", path, outcome.Err)
	default:
		return fmt.Sprintf("- %s", path)
	}
}

// FormatSummary renders the counts as a table
func (f *DefaultFileFormatter) FormatSummary(s Summary) (string, error) {
	appliedLabel := "Updated"
	if s.Preview {
		appliedLabel = "Would update"
	}

	data := pterm.TableData{
		{"Summary", "Files"},
		{"Total HTML files", strconv.Itoa(s.Total)},
		{appliedLabel, strconv.Itoa(s.Applied)},
		{"Already updated", strconv.Itoa(s.Skipped)},
		{"No matching patterns", strconv.Itoa(s.NotFound)},
		{"Errors", strconv.Itoa(s.Errors)},
		{"Written to disk", strconv.Itoa(s.Written)},
	}
	if s.MissedRules > 0 {
		data = append(data, []string{"Rules without a match", strconv.Itoa(s.MissedRules)})
	}
	if s.InvalidRules > 0 {
		data = append(data, []string{"Invalid rules", strconv.Itoa(s.InvalidRules)})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// Render writes every recorded outcome followed by the summary table
func (r *Reporter) Render(w io.Writer) error {
	for _, rec := range r.records {
		fmt.Fprintln(w, FormatRecord(rec, r.formatter))
		if rec.Outcome.Diff != "" {
			for _, line := range strings.Split(strings.TrimRight(rec.Outcome.Diff, "\n"), "\n") {
				fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", fileIndent+2), colorDiffLine(line))
			}
		}
	}

	for _, issue := range r.ruleIssues {
		fmt.Fprintln(w, FormatRuleIssue(issue))
	}

	table, err := r.formatter.FormatSummary(r.Summary())
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, table)
	if !strings.HasSuffix(table, "\n") {
		fmt.Fprintln(w)
	}
	return nil
}

// missedSuffix names the rules that found no anchor, e.g. " (no match: a, b)"
func missedSuffix(outcome Outcome) string {
	if len(outcome.Missed) == 0 {
		return ""
	}
	return " (no match: " + strings.Join(outcome.Missed, ", ") + ")"
}

func pluralRules(n int) string {
	if n == 1 {
		return "1 rule"
	}
	return strconv.Itoa(n) + " rules"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
