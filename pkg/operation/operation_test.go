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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sitepatch/pkg/provider"
	"github.com/walteh/sitepatch/pkg/ruleset"
	"github.com/walteh/sitepatch/pkg/status"
	"github.com/walteh/sitepatch/pkg/text"
)

// 🔧 MockFileManager is a mock implementation of provider.FileManager
type MockFileManager struct {
	mock.Mock
}

func (m *MockFileManager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *MockFileManager) WriteFile(ctx context.Context, path string, content []byte) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}

func (m *MockFileManager) FileExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

const (
	oldNav      = `<header><ul class="nav-links"><li><a href="/">Home</a></li></ul><nav class="mobile-nav"><ul><li><a href="/">Home</a></li></ul></nav></header>`
	desktopOnly = `<header><ul class="nav-links"><li><a href="/">Home</a></li></ul></header>`
	currentNav  = `<header><ul class="nav-links"><li><a href="/enterprise/">x</a><a href="/integrate/">y</a></li></ul></header>`
	noNav       = `<p>plain page</p>`
)

func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func readSite(t *testing.T, root, rel string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(content)
}

func navRules(t *testing.T) []text.Rule {
	t.Helper()
	rules, errs := ruleset.Navigation()
	require.Empty(t, errs)
	return rules
}

func newOperator(t *testing.T, root string, opts Options) *Operator {
	t.Helper()
	if opts.Provider == nil {
		opts.Provider = provider.NewRecursiveScan(root)
	}
	if opts.Files == nil {
		opts.Files = provider.NewLocalFiles(root)
	}
	if opts.Rules == nil {
		opts.Rules = navRules(t)
	}
	op, err := New(opts)
	require.NoError(t, err)
	return op
}

func TestNew(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{
			name:    "missing_provider",
			opts:    Options{Files: provider.NewLocalFiles(root)},
			wantErr: "provider is required",
		},
		{
			name:    "missing_files",
			opts:    Options{Provider: provider.NewRecursiveScan(root)},
			wantErr: "file manager is required",
		},
		{
			name: "duplicate_rule_ids",
			opts: Options{
				Provider: provider.NewRecursiveScan(root),
				Files:    provider.NewLocalFiles(root),
				Rules: []text.Rule{
					{ID: "a", Matcher: text.Literal("x")},
					{ID: "a", Matcher: text.Literal("y")},
				},
			},
			wantErr: `duplicate id "a"`,
		},
		{
			name: "valid",
			opts: Options{
				Provider: provider.NewRecursiveScan(root),
				Files:    provider.NewLocalFiles(root),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := New(tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, op)
			assert.NotNil(t, op.opts.Rewriter, "rewriter should default")
		})
	}
}

func TestRun_ApplyNavigation(t *testing.T) {
	root := writeSite(t, map[string]string{
		"index.html":         oldNav,
		"contact/index.html": oldNav,
	})

	reporter, err := newOperator(t, root, Options{Entry: "index.html"}).Run(context.Background())
	require.NoError(t, err)

	summary := reporter.Summary()
	assert.Equal(t, status.Summary{Total: 2, Applied: 2, Written: 2}, summary)

	for _, rel := range []string{"contact/index.html", "index.html"} {
		assert.Contains(t, readSite(t, root, rel), ruleset.NavLinks)
	}

	// a second run finds everything in place
	reporter, err = newOperator(t, root, Options{Entry: "index.html"}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, status.Summary{Total: 2, Skipped: 2}, reporter.Summary())
}

func TestRun_PreviewScenario(t *testing.T) {
	root := writeSite(t, map[string]string{
		"index.html":          oldNav,
		"a/index.html":        oldNav,
		"b/index.html":        oldNav,
		"compare/index.html":  currentNav,
		"partners/index.html": currentNav,
	})

	reporter, err := newOperator(t, root, Options{Mode: ModePreview, Entry: "index.html"}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, status.Summary{Total: 5, Applied: 3, Skipped: 2, Preview: true}, reporter.Summary())
	assert.Equal(t, oldNav, readSite(t, root, "index.html"), "preview must not write")
	assert.Equal(t, oldNav, readSite(t, root, "a/index.html"))

	var paths []string
	for _, rec := range reporter.Records() {
		paths = append(paths, rec.Path)
	}
	assert.Equal(t, []string{"a/index.html", "b/index.html", "compare/index.html", "index.html", "partners/index.html"}, paths)
}

func TestRun_MissingAnchorIsNotAnError(t *testing.T) {
	root := writeSite(t, map[string]string{"index.html": noNav})

	reporter, err := newOperator(t, root, Options{Entry: "index.html"}).Run(context.Background())
	require.NoError(t, err)

	records := reporter.Records()
	require.Len(t, records, 1)
	assert.Equal(t, status.KindNotFound, records[0].Outcome.Kind)
	assert.Equal(t, 0, records[0].Outcome.Count)
	assert.False(t, records[0].Outcome.Written)
	assert.Equal(t, noNav, readSite(t, root, "index.html"))
}

func TestRun_RecordsRulesWithoutAnchor(t *testing.T) {
	root := writeSite(t, map[string]string{"index.html": desktopOnly})

	reporter, err := newOperator(t, root, Options{Entry: "index.html"}).Run(context.Background())
	require.NoError(t, err)

	records := reporter.Records()
	require.Len(t, records, 1)
	assert.Equal(t, status.KindApplied, records[0].Outcome.Kind)
	assert.Equal(t, []string{"mobile-nav"}, records[0].Outcome.Missed)
	assert.Equal(t, status.Summary{Total: 1, Applied: 1, MissedRules: 1, Written: 1}, reporter.Summary())
	assert.True(t, reporter.HasIssues())

	// the desktop menu is current now, the mobile one is still absent
	reporter, err = newOperator(t, root, Options{Entry: "index.html"}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, status.Summary{Total: 1, Skipped: 1, MissedRules: 1}, reporter.Summary())
}

func TestRun_MissingEntry(t *testing.T) {
	root := writeSite(t, map[string]string{"about/index.html": oldNav})

	reporter, err := newOperator(t, root, Options{Entry: "index.html"}).Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingEntry))
	assert.Nil(t, reporter)
	assert.Equal(t, oldNav, readSite(t, root, "about/index.html"), "nothing is touched")
}

func TestRun_InvalidRulesReportedOnce(t *testing.T) {
	root := writeSite(t, map[string]string{"index.html": oldNav})

	rules, errs := text.CompileAll(append(ruleset.NavigationSpecs(), text.RuleSpec{
		ID:          "broken",
		Pattern:     "(",
		Replacement: "x",
	}))
	require.Len(t, errs, 1)

	reporter, err := newOperator(t, root, Options{Rules: rules, InvalidRules: errs}).Run(context.Background())
	require.NoError(t, err)

	summary := reporter.Summary()
	assert.Equal(t, 1, summary.InvalidRules)
	assert.Equal(t, 1, summary.Applied, "valid rules still run")
	assert.True(t, reporter.HasIssues())
}

func TestRun_FailureIsolation(t *testing.T) {
	ctx := context.Background()
	root := writeSite(t, map[string]string{
		"a.html": "",
		"b.html": "",
		"c.html": "",
	})

	files := &MockFileManager{}
	files.On("ReadFile", mock.Anything, "a.html").Return([]byte(oldNav), nil)
	files.On("ReadFile", mock.Anything, "b.html").Return(nil, errors.New("permission denied"))
	files.On("ReadFile", mock.Anything, "c.html").Return([]byte(oldNav), nil)
	files.On("WriteFile", mock.Anything, "a.html", mock.Anything).Return(nil)
	files.On("WriteFile", mock.Anything, "c.html", mock.Anything).Return(errors.New("disk full"))

	reporter, err := newOperator(t, root, Options{Files: files}).Run(ctx)
	require.NoError(t, err)

	records := reporter.Records()
	require.Len(t, records, 3)

	assert.Equal(t, status.KindApplied, records[0].Outcome.Kind)
	assert.True(t, records[0].Outcome.Written)

	assert.Equal(t, status.KindIOError, records[1].Outcome.Kind)
	assert.Contains(t, records[1].Outcome.Err.Error(), "permission denied")

	assert.Equal(t, status.KindIOError, records[2].Outcome.Kind)
	assert.Contains(t, records[2].Outcome.Err.Error(), "disk full")
	assert.NotEmpty(t, records[2].Outcome.Rules, "rule detail survives a failed write")

	assert.Equal(t, status.Summary{Total: 3, Applied: 1, Errors: 2, Written: 1}, reporter.Summary())
	files.AssertExpectations(t)
	files.AssertNotCalled(t, "FileExists", mock.Anything, mock.Anything)
}

func TestRun_UnreadableTargetOnDisk(t *testing.T) {
	root := writeSite(t, map[string]string{
		"index.html":         oldNav,
		"contact/index.html": oldNav,
	})
	// a directory sitting where a page should be
	require.NoError(t, os.MkdirAll(filepath.Join(root, "partners", "index.html"), 0o755))

	list := provider.NewFixedList(root, []string{"index.html", "partners/index.html", "contact/index.html"})
	reporter, err := newOperator(t, root, Options{Provider: list, Entry: "index.html"}).Run(context.Background())
	require.NoError(t, err)

	summary := reporter.Summary()
	assert.Equal(t, 2, summary.Applied)
	assert.Equal(t, 1, summary.Errors)
	assert.Contains(t, readSite(t, root, "contact/index.html"), ruleset.NavLinks)
}

func TestRun_RequiredPageMissing(t *testing.T) {
	root := writeSite(t, map[string]string{"index.html": oldNav})

	list := provider.NewFixedList(root, []string{"index.html", "404.html", "contact/index.html"}).
		Require("contact/index.html")
	reporter, err := newOperator(t, root, Options{Provider: list, Entry: "index.html"}).Run(context.Background())
	require.NoError(t, err)

	records := reporter.Records()
	require.Len(t, records, 2, "optional pages are skipped silently")
	assert.Equal(t, "contact/index.html", records[1].Path)
	assert.Equal(t, status.KindIOError, records[1].Outcome.Kind)
	assert.True(t, errors.Is(records[1].Outcome.Err, provider.ErrNotFound))
}

func TestRun_ShowDiff(t *testing.T) {
	root := writeSite(t, map[string]string{"index.html": "<p>old</p>\n"})

	rules := []text.Rule{{ID: "p", Matcher: text.Literal("<p>old</p>"), Replacement: "<p>new</p>"}}
	reporter, err := newOperator(t, root, Options{Rules: rules, Mode: ModePreview, ShowDiff: true}).Run(context.Background())
	require.NoError(t, err)

	records := reporter.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "-<p>old</p>\n+<p>new</p>\n", records[0].Outcome.Diff)
}

func TestRun_Cancelled(t *testing.T) {
	root := writeSite(t, map[string]string{"index.html": oldNav, "b.html": oldNav})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reporter, err := newOperator(t, root, Options{}).Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, reporter)
	assert.Empty(t, reporter.Records())
	assert.Equal(t, oldNav, readSite(t, root, "index.html"))
}

func TestRun_SkipsTargetsOutOfScope(t *testing.T) {
	root := writeSite(t, map[string]string{
		"index.html":      "<p>old</p>",
		"blog/post.html":  "<p>old</p>",
		"blog/index.html": "<p>old</p>",
	})

	rules := []text.Rule{{
		ID:          "p",
		Matcher:     text.Literal("<p>old</p>"),
		Replacement: "<p>new</p>",
		Files:       []string{"blog/**"},
	}}
	reporter, err := newOperator(t, root, Options{Rules: rules}).Run(context.Background())
	require.NoError(t, err)

	var paths []string
	for _, rec := range reporter.Records() {
		paths = append(paths, rec.Path)
	}
	assert.Equal(t, []string{"blog/index.html", "blog/post.html"}, paths)
	assert.Equal(t, "<p>old</p>", readSite(t, root, "index.html"))
	assert.Equal(t, "<p>new</p>", readSite(t, root, "blog/post.html"))
}
