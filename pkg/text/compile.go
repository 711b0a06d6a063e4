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
	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// RuleSpec is the declarative form of a Rule. Exactly one of Pattern and
// Text names the anchor, and at least one guard field must be set.
type RuleSpec struct {
	ID          string
	Description string

	Pattern string // regular expression anchor
	Text    string // literal anchor

	Replacement string
	Literal     bool
	Count       int
	Files       []string

	GuardContains []string
	GuardPattern  string
	GuardSelector string
}

// CompileError ties a construction failure to the rule that caused it
type CompileError struct {
	ID  string
	Err error
}

func (e *CompileError) Error() string {
	return "rule " + e.ID + ": " + e.Err.Error()
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compile turns a RuleSpec into a Rule, validating its patterns
func Compile(spec RuleSpec) (Rule, error) {
	wrap := func(err error) (Rule, error) {
		return Rule{}, &CompileError{ID: spec.ID, Err: err}
	}

	if spec.ID == "" {
		return wrap(errors.New("id is required"))
	}

	rule := Rule{
		ID:          spec.ID,
		Description: spec.Description,
		Replacement: spec.Replacement,
		Literal:     spec.Literal,
		Count:       spec.Count,
		Files:       spec.Files,
	}

	if rule.Count < 0 {
		return wrap(errors.New("count must not be negative"))
	}

	switch {
	case spec.Pattern != "" && spec.Text != "":
		return wrap(errors.New("pattern and text are mutually exclusive"))
	case spec.Pattern != "":
		m, err := Regex(spec.Pattern)
		if err != nil {
			return wrap(err)
		}
		rule.Matcher = m
	case spec.Text != "":
		rule.Matcher = Literal(spec.Text)
	default:
		return wrap(errors.New("one of pattern or text is required"))
	}

	for _, pattern := range spec.Files {
		if !doublestar.ValidatePattern(pattern) {
			return wrap(errors.Errorf("invalid file pattern %q", pattern))
		}
	}

	var guards AnyOf
	if len(spec.GuardContains) > 0 {
		guards = append(guards, Contains(spec.GuardContains))
	}
	if spec.GuardPattern != "" {
		g, err := Pattern(spec.GuardPattern)
		if err != nil {
			return wrap(err)
		}
		guards = append(guards, g)
	}
	if spec.GuardSelector != "" {
		g, err := Selector(spec.GuardSelector)
		if err != nil {
			return wrap(err)
		}
		guards = append(guards, g)
	}

	switch len(guards) {
	case 0:
		return wrap(errors.New("a guard (contains, pattern or selector) is required"))
	case 1:
		rule.Guard = guards[0]
	default:
		rule.Guard = guards
	}

	return rule, nil
}

// CompileAll compiles every spec. Rules that fail are left out and their
// errors returned alongside the rules that compiled, so one bad pattern
// never stops the rest of the set.
func CompileAll(specs []RuleSpec) ([]Rule, []error) {
	rules := make([]Rule, 0, len(specs))
	var errs []error
	for _, spec := range specs {
		rule, err := Compile(spec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rules = append(rules, rule)
	}
	return rules, errs
}
