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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// IdempotentRewriter implements Rewriter with guard-then-anchor semantics:
// a rule whose guard holds is skipped, a rule whose anchor is missing is
// recorded as not found, and everything else is replaced in place.
type IdempotentRewriter struct{}

// NewRewriter creates a new IdempotentRewriter
func NewRewriter() *IdempotentRewriter {
	return &IdempotentRewriter{}
}

// Apply implements Rewriter.Apply
func (r *IdempotentRewriter) Apply(ctx context.Context, doc string, rules []Rule) *Result {
	logger := zerolog.Ctx(ctx)

	result := &Result{
		Original: doc,
		Document: doc,
		Rules:    make([]RuleResult, 0, len(rules)),
	}

	current := doc
	for _, rule := range rules {
		rr := RuleResult{ID: rule.ID}

		switch {
		case rule.Guard != nil && rule.Guard.Applied(current):
			rr.State = StateAlreadyApplied
		case rule.Matcher == nil || !rule.Matcher.Match(current):
			rr.State = StateNotFound
		default:
			updated, n := rule.Matcher.Replace(current, rule.Replacement, rule.Count, !rule.Literal)
			if updated == current {
				// the payload is already what the anchor holds
				rr.State = StateAlreadyApplied
				break
			}
			current = updated
			rr.State = StateApplied
			rr.Replacements = n
			result.AppliedCount++
			result.Replacements += n
			result.Fired = append(result.Fired, rule.ID)
		}

		logger.Debug().
			Str("rule", rule.ID).
			Str("state", rr.State.String()).
			Int("replacements", rr.Replacements).
			Msg("rule evaluated")

		result.Rules = append(result.Rules, rr)
	}

	result.Document = current
	return result
}

// ValidateRules implements Rewriter.ValidateRules
func (r *IdempotentRewriter) ValidateRules(rules []Rule) error {
	seen := make(map[string]struct{}, len(rules))
	for i, rule := range rules {
		if rule.ID == "" {
			return errors.Errorf("rule %d: id is required", i)
		}
		if _, ok := seen[rule.ID]; ok {
			return errors.Errorf("rule %d: duplicate id %q", i, rule.ID)
		}
		seen[rule.ID] = struct{}{}
		if rule.Matcher == nil {
			return errors.Errorf("rule %q: matcher is required", rule.ID)
		}
		if rule.Count < 0 {
			return errors.Errorf("rule %q: count must not be negative", rule.ID)
		}
	}
	return nil
}
