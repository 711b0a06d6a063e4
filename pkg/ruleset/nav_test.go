package ruleset

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/sitepatch/pkg/text"
)

const oldNavPage = `<!DOCTYPE html>
<html>
<body>
    <header>
        <nav class="navbar">
            <a href="/" class="logo">Insurio</a>
            <ul class="nav-links">
                <li><a href="/for-clients/">For Clients</a></li>
                <li><a href="/compare/">Compare</a></li>
                <li><a href="/contact/">Contact</a></li>
            </ul>
        </nav>
        <nav class="mobile-nav">
            <ul>
                <li><a href="/for-clients/">For Clients</a></li>
                <li><a href="/contact/">Contact</a></li>
            </ul>
        </nav>
    </header>
    <main><p>Body copy stays put.</p></main>
</body>
</html>
`

func navRules(t *testing.T) []text.Rule {
	t.Helper()
	rules, errs := Navigation()
	require.Empty(t, errs)
	require.Len(t, rules, 2)
	require.NoError(t, text.NewRewriter().ValidateRules(rules))
	return rules
}

func TestNavigation_ReplacesBothMenus(t *testing.T) {
	rules := navRules(t)
	rewriter := text.NewRewriter()

	result := rewriter.Apply(context.Background(), oldNavPage, rules)
	require.Equal(t, 2, result.AppliedCount)
	assert.Equal(t, []string{"desktop-nav", "mobile-nav"}, result.Fired)

	assert.Contains(t, result.Document, NavLinks)
	assert.Contains(t, result.Document, MobileNav)
	assert.Equal(t, 1, strings.Count(result.Document, `<ul class="nav-links">`))
	assert.Equal(t, 1, strings.Count(result.Document, `<nav class="mobile-nav">`))
	assert.Contains(t, result.Document, "<main><p>Body copy stays put.</p></main>")
	assert.Contains(t, result.Document, `<a href="/" class="logo">Insurio</a>`)

	second := rewriter.Apply(context.Background(), result.Document, rules)
	assert.Equal(t, 0, second.AppliedCount, "rerunning should change nothing")
	assert.Equal(t, result.Document, second.Document)
	assert.Equal(t, 2, second.Count(text.StateAlreadyApplied))
}

func TestNavigation_DesktopOnlyPageIsIdempotent(t *testing.T) {
	page := `<header><ul class="nav-links"><li><a href="/">Home</a></li></ul></header>`
	rules := navRules(t)
	rewriter := text.NewRewriter()

	first := rewriter.Apply(context.Background(), page, rules)
	require.Equal(t, 1, first.AppliedCount)
	assert.Equal(t, []string{"desktop-nav"}, first.Fired)
	assert.Equal(t, text.StateNotFound, first.Rules[1].State)

	second := rewriter.Apply(context.Background(), first.Document, rules)
	assert.Equal(t, 0, second.AppliedCount)
	assert.Equal(t, text.StateAlreadyApplied, second.Rules[0].State)
	assert.Equal(t, text.StateNotFound, second.Rules[1].State)
}

func TestNavigation_MissingAnchors(t *testing.T) {
	page := "<html><body><p>No navigation here.</p></body></html>"
	result := text.NewRewriter().Apply(context.Background(), page, navRules(t))

	assert.Equal(t, 0, result.AppliedCount)
	assert.Equal(t, page, result.Document)
	assert.Equal(t, 2, result.Count(text.StateNotFound))
}

func TestNavigation_AlreadyUpdatedByMarkers(t *testing.T) {
	page := `<ul class="nav-links"><li><a href="/enterprise/">x</a></li></ul>
<nav class="mobile-nav"><a href="/integrate/">y</a></nav>`
	result := text.NewRewriter().Apply(context.Background(), page, navRules(t))

	assert.Equal(t, 0, result.AppliedCount)
	assert.Equal(t, 2, result.Count(text.StateAlreadyApplied))
}
