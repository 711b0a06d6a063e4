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

package text

import (
	"context"

	"github.com/bmatcuk/doublestar/v4"
)

// RuleState describes what happened to a single rule during Apply
type RuleState int

const (
	StateUnknown        RuleState = iota
	StateApplied                  // Anchor found and replaced
	StateAlreadyApplied           // Guard matched, or the replacement changed nothing
	StateNotFound                 // Anchor absent from the document
)

// String returns a string representation of RuleState
func (s RuleState) String() string {
	switch s {
	case StateApplied:
		return "applied"
	case StateAlreadyApplied:
		return "already-applied"
	case StateNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Rule is one ordered unit of work for the rewriter
type Rule struct {
	// ID identifies the rule in results and reports
	ID string

	// Description is a short human readable summary
	Description string

	// Matcher locates the anchor in the document
	Matcher Matcher

	// Replacement is the payload written over each matched span.
	// Unless Literal is set, $1 and ${name} expand to captured groups.
	Replacement string

	// Literal disables capture group expansion in Replacement
	Literal bool

	// Guard skips the rule when the document already carries the change.
	// A nil guard never skips.
	Guard Guard

	// Count caps the number of spans replaced; zero replaces all of them
	Count int

	// Files restricts the rule to paths matching one of these doublestar
	// patterns; empty means every file
	Files []string
}

// AppliesTo reports whether the rule targets the given slash separated path
func (r Rule) AppliesTo(path string) bool {
	if len(r.Files) == 0 {
		return true
	}
	for _, pattern := range r.Files {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// ForPath keeps the rules that target path, in order
func ForPath(rules []Rule, path string) []Rule {
	var out []Rule
	for _, rule := range rules {
		if rule.AppliesTo(path) {
			out = append(out, rule)
		}
	}
	return out
}

// RuleResult records the fate of one rule
type RuleResult struct {
	ID           string
	State        RuleState
	Replacements int
}

// Result contains the results of applying a rule set to a document
type Result struct {
	// Original is the document before any rule ran
	Original string

	// Document is the cumulative result after the last rule
	Document string

	// AppliedCount is the number of rules that fired
	AppliedCount int

	// Replacements is the total number of spans replaced
	Replacements int

	// Fired lists the IDs of the rules that fired, in order
	Fired []string

	// Rules holds one entry per attempted rule, in order
	Rules []RuleResult
}

// WasModified reports whether the document changed
func (r *Result) WasModified() bool {
	return r.Document != r.Original
}

// Count returns how many rules ended in the given state
func (r *Result) Count(state RuleState) int {
	n := 0
	for _, rr := range r.Rules {
		if rr.State == state {
			n++
		}
	}
	return n
}

// Rewriter applies rule sets to documents. Implementations are pure text
// transformations; persistence is the caller's job.
type Rewriter interface {
	// Apply runs every rule in order against the current document state
	Apply(ctx context.Context, doc string, rules []Rule) *Result

	// ValidateRules checks that all rules are usable
	ValidateRules(rules []Rule) error
}
