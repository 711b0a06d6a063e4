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
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"gitlab.com/tozd/go/errors"
)

// 🛡️ Guard detects that a rule's change is already present in a document
type Guard interface {
	Applied(doc string) bool
}

// GuardFunc adapts a plain function to Guard
type GuardFunc func(doc string) bool

func (f GuardFunc) Applied(doc string) bool {
	return f(doc)
}

// Contains is satisfied when every marker occurs in the document
type Contains []string

func (c Contains) Applied(doc string) bool {
	if len(c) == 0 {
		return false
	}
	for _, marker := range c {
		if !strings.Contains(doc, marker) {
			return false
		}
	}
	return true
}

// AnyOf is satisfied when at least one non-nil guard is
type AnyOf []Guard

func (a AnyOf) Applied(doc string) bool {
	for _, g := range a {
		if g != nil && g.Applied(doc) {
			return true
		}
	}
	return false
}

// PatternGuard is satisfied when a regular expression matches
type PatternGuard struct {
	re *regexp.Regexp
}

// Pattern compiles a PatternGuard
func Pattern(pattern string) (*PatternGuard, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("compiling guard pattern %q: %w", pattern, err)
	}
	return &PatternGuard{re: re}, nil
}

func (g *PatternGuard) Applied(doc string) bool {
	return g.re.MatchString(doc)
}

// 🔍 SelectorGuard parses the document and is satisfied when a CSS selector
// matches at least one element. It only inspects markup; rewriting stays
// textual.
type SelectorGuard struct {
	selector string
}

// Selector validates sel and creates a SelectorGuard
func Selector(sel string) (*SelectorGuard, error) {
	if strings.TrimSpace(sel) == "" {
		return nil, errors.New("selector is empty")
	}
	if _, err := cascadia.ParseGroup(sel); err != nil {
		return nil, errors.Errorf("parsing selector %q: %w", sel, err)
	}
	return &SelectorGuard{selector: sel}, nil
}

// MustSelector is like Selector but panics on an invalid selector
func MustSelector(sel string) *SelectorGuard {
	g, err := Selector(sel)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *SelectorGuard) Applied(doc string) bool {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return false
	}
	return d.Find(g.selector).Length() > 0
}
