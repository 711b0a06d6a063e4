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

	"gitlab.com/tozd/go/errors"
)

// Matcher locates an anchor in a document and replaces it
type Matcher interface {
	// Match reports whether the anchor occurs in doc
	Match(doc string) bool

	// Replace swaps at most n anchor spans (all when n <= 0) for repl and
	// returns the new document plus the number of spans replaced. When
	// expand is set, capture group references in repl are expanded.
	Replace(doc, repl string, n int, expand bool) (string, int)

	// String returns the anchor in its source form
	String() string
}

// RegexMatcher anchors on a regular expression
type RegexMatcher struct {
	re *regexp.Regexp
}

// Regex compiles pattern into a RegexMatcher
func Regex(pattern string) (*RegexMatcher, error) {
	if pattern == "" {
		return nil, errors.New("pattern is empty")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Errorf("compiling pattern %q: %w", pattern, err)
	}
	return &RegexMatcher{re: re}, nil
}

// MustRegex is like Regex but panics on an invalid pattern
func MustRegex(pattern string) *RegexMatcher {
	m, err := Regex(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *RegexMatcher) Match(doc string) bool {
	return m.re.MatchString(doc)
}

func (m *RegexMatcher) Replace(doc, repl string, n int, expand bool) (string, int) {
	limit := n
	if limit <= 0 {
		limit = -1
	}

	matches := m.re.FindAllStringSubmatchIndex(doc, limit)
	if len(matches) == 0 {
		return doc, 0
	}

	var b strings.Builder
	b.Grow(len(doc))
	last := 0
	for _, loc := range matches {
		b.WriteString(doc[last:loc[0]])
		if expand {
			b.Write(m.re.ExpandString(nil, repl, doc, loc))
		} else {
			b.WriteString(repl)
		}
		last = loc[1]
	}
	b.WriteString(doc[last:])

	return b.String(), len(matches)
}

func (m *RegexMatcher) String() string {
	return m.re.String()
}

// LiteralMatcher anchors on an exact substring
type LiteralMatcher struct {
	old string
}

// Literal creates a LiteralMatcher for old
func Literal(old string) *LiteralMatcher {
	return &LiteralMatcher{old: old}
}

func (m *LiteralMatcher) Match(doc string) bool {
	return m.old != "" && strings.Contains(doc, m.old)
}

// Replace never expands; a literal anchor has no groups.
func (m *LiteralMatcher) Replace(doc, repl string, n int, _ bool) (string, int) {
	if m.old == "" {
		return doc, 0
	}
	count := strings.Count(doc, m.old)
	if n > 0 && count > n {
		count = n
	}
	if count == 0 {
		return doc, 0
	}
	return strings.Replace(doc, m.old, repl, count), count
}

func (m *LiteralMatcher) String() string {
	return m.old
}
