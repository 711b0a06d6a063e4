package ruleset

import (
	"github.com/walteh/sitepatch/pkg/text"
)

// NavLinks is the desktop navigation list every page should carry
const NavLinks = `<ul class="nav-links">
                    <li><a href="/for-clients/">For Clients</a></li>
                    <li><a href="/compare/">Compare</a></li>
                    <li><a href="/partners/">Partner Program</a></li>
                    <li><a href="/enterprise/">For Platforms</a></li>
                    <li><a href="/contact/">Contact</a></li>
                </ul>`

// MobileNav is the mobile navigation block every page should carry
const MobileNav = `<nav class="mobile-nav">
            <ul>
                <li><a href="/for-clients/">For Clients</a></li>
                <li><a href="/compare/">Compare</a></li>
                <li><a href="/partners/">Partner Program</a></li>
                <li><a href="/enterprise/">For Platforms</a></li>
                <li><a href="/integrate/">Integration & API</a></li>
                <li><a href="/contact/">Contact</a></li>
            </ul>
        </nav>`

// NavMarkers are present on every page whose navigation is current
var NavMarkers = []string{"/enterprise/", "/integrate/"}

// NavAdditions describes the links the navigation rules introduce
var NavAdditions = []string{
	"/enterprise/ (For Platforms)",
	"/integrate/ (Integration & API)",
}

// Navigation returns the desktop and mobile navigation rules. A page is
// considered current once it carries both new links, or once the specific
// menu already links the new page.
func Navigation() ([]text.Rule, []error) {
	return text.CompileAll(NavigationSpecs())
}

// NavigationSpecs returns the declarative navigation rules
func NavigationSpecs() []text.RuleSpec {
	return []text.RuleSpec{
		{
			ID:            "desktop-nav",
			Description:   "desktop nav",
			Pattern:       `(?s)<ul class="nav-links">.*?</ul>`,
			Replacement:   NavLinks,
			Literal:       true,
			GuardContains: NavMarkers,
			GuardSelector: `ul.nav-links a[href="/enterprise/"]`,
		},
		{
			ID:            "mobile-nav",
			Description:   "mobile nav",
			Pattern:       `(?s)<nav class="mobile-nav">.*?</nav>`,
			Replacement:   MobileNav,
			Literal:       true,
			GuardContains: NavMarkers,
			GuardSelector: `nav.mobile-nav a[href="/integrate/"]`,
		},
	}
}
