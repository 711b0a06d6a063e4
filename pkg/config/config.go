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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sitepatch/pkg/text"
)

// DefaultEntry is the file that marks a website root
const DefaultEntry = "index.html"

// 🔌 Parser is the interface for rule set parsers
type Parser interface {
	// 📝 Parse decodes a rule set from bytes
	Parse(ctx context.Context, data []byte) (*RuleSetConfig, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🛡️ GuardConfig declares how a rule recognises a page it already changed
type GuardConfig struct {
	Contains []string `json:"contains,omitempty" yaml:"contains,omitempty" hcl:"contains,optional"`
	Pattern  string   `json:"pattern,omitempty" yaml:"pattern,omitempty" hcl:"pattern,optional"`
	Selector string   `json:"selector,omitempty" yaml:"selector,omitempty" hcl:"selector,optional"`
}

// 🔄 RuleConfig is one rewrite rule as written in a rule set file
type RuleConfig struct {
	ID          string       `json:"id" yaml:"id" hcl:"id,label"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty" hcl:"description,optional"`
	Pattern     string       `json:"pattern,omitempty" yaml:"pattern,omitempty" hcl:"pattern,optional"`
	Text        string       `json:"text,omitempty" yaml:"text,omitempty" hcl:"text,optional"`
	Replacement string       `json:"replacement" yaml:"replacement" hcl:"replacement"`
	Literal     bool         `json:"literal,omitempty" yaml:"literal,omitempty" hcl:"literal,optional"`
	Count       int          `json:"count,omitempty" yaml:"count,omitempty" hcl:"count,optional"`
	Files       []string     `json:"files,omitempty" yaml:"files,omitempty" hcl:"files,optional"`
	Guard       *GuardConfig `json:"guard,omitempty" yaml:"guard,omitempty" hcl:"guard,block"`
}

// 📚 RuleSetConfig represents a complete rule set file
type RuleSetConfig struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty" hcl:"name,optional"`
	Entry       string       `json:"entry,omitempty" yaml:"entry,omitempty" hcl:"entry,optional"`
	ExcludeDirs []string     `json:"exclude_dirs,omitempty" yaml:"exclude_dirs,omitempty" hcl:"exclude_dirs,optional"`
	Patterns    []string     `json:"patterns,omitempty" yaml:"patterns,omitempty" hcl:"patterns,optional"`
	Rules       []RuleConfig `json:"rules" yaml:"rules" hcl:"rule,block"`

	location string
}

// 🎯 Load loads a rule set from a file, picking the parser by extension
func Load(ctx context.Context, path string) (*RuleSetConfig, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading rule set")

	p := GetParser(strings.ToLower(filepath.Base(path)))
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading rule set: %w", err)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing rule set: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating rule set: %w", err)
	}

	cfg.location = path
	logger.Debug().Str("name", cfg.Name).Int("rules", len(cfg.Rules)).Msg("rule set loaded")

	return cfg, nil
}

// 🔍 Validate checks the file level shape and fills in defaults. Pattern
// problems are left to the rule compiler so one bad rule never hides the rest.
func (cfg *RuleSetConfig) Validate() error {
	if len(cfg.Rules) == 0 {
		return errors.New("at least one rule is required")
	}

	seen := make(map[string]struct{}, len(cfg.Rules))
	for i, r := range cfg.Rules {
		if r.ID == "" {
			return errors.Errorf("rules[%d]: id is required", i)
		}
		if _, ok := seen[r.ID]; ok {
			return errors.Errorf("rules[%d]: duplicate id %q", i, r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	if cfg.Entry == "" {
		cfg.Entry = DefaultEntry
	}
	cfg.Entry = filepath.ToSlash(filepath.Clean(cfg.Entry))

	return nil
}

// Specs converts the configured rules into compiler input, in file order
func (cfg *RuleSetConfig) Specs() []text.RuleSpec {
	specs := make([]text.RuleSpec, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		spec := text.RuleSpec{
			ID:          r.ID,
			Description: r.Description,
			Pattern:     r.Pattern,
			Text:        r.Text,
			Replacement: r.Replacement,
			Literal:     r.Literal,
			Count:       r.Count,
			Files:       r.Files,
		}
		if r.Guard != nil {
			spec.GuardContains = r.Guard.Contains
			spec.GuardPattern = r.Guard.Pattern
			spec.GuardSelector = r.Guard.Selector
		}
		specs = append(specs, spec)
	}
	return specs
}

// Location returns the path the rule set was loaded from
func (cfg *RuleSetConfig) Location() string {
	return cfg.location
}

// 📝 String returns a short description of the rule set
func (cfg *RuleSetConfig) String() string {
	name := cfg.Name
	if name == "" {
		name = filepath.Base(cfg.location)
	}
	return fmt.Sprintf("%s (%d rules, entry %s)", name, len(cfg.Rules), cfg.Entry)
}
