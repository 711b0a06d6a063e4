// Package ruleset holds the built-in rule sets for the marketing site.
package ruleset

import (
	"github.com/walteh/sitepatch/pkg/text"
)

// EntryFile marks the website root; runs abort when it is missing
const EntryFile = "index.html"

// Page paths touched by the copy edits
const (
	PageHome       = "index.html"
	PageNotFound   = "404.html"
	PageForClients = "for-clients/index.html"
	PageCompare    = "compare/index.html"
	PagePartners   = "partners/index.html"
	PageContact    = "contact/index.html"
	PagePrivacy    = "privacy/index.html"
	PageTerms      = "terms/index.html"
)

// CopyPages lists every page the copy edits visit, in processing order
var CopyPages = []string{
	PageHome,
	PageNotFound,
	PageForClients,
	PageCompare,
	PagePartners,
	PageContact,
	PagePrivacy,
	PageTerms,
}

// RequiredCopyPages must exist; a missing one is an issue rather than a
// silent skip
var RequiredCopyPages = []string{
	PageForClients,
	PageCompare,
	PagePartners,
	PageContact,
}

// CopyEdits returns the copy edit rules, each scoped to its pages
func CopyEdits() ([]text.Rule, []error) {
	return text.CompileAll(CopyEditSpecs())
}

// CopyEditSpecs returns the declarative copy edit rules
func CopyEditSpecs() []text.RuleSpec {
	specs := []text.RuleSpec{footerLogo}
	specs = append(specs, homepage...)
	specs = append(specs, forClients...)
	specs = append(specs, compare...)
	specs = append(specs, partners...)
	specs = append(specs, contact...)
	return specs
}

var footerLogo = text.RuleSpec{
	ID:            "footer-logo",
	Description:   "Updated footer logo",
	Pattern:       `<img src="(?:\.\./)?images/logo\.webp" alt="Insurio">`,
	Replacement:   `<img src="/images/logo-white.webp" alt="Insurio" style="height:44px;width:auto">`,
	Literal:       true,
	GuardContains: []string{`src="/images/logo-white.webp"`},
	Files:         CopyPages,
}

var homepage = []text.RuleSpec{
	{
		ID:            "home-hero",
		Description:   "hero description",
		Text:          `<p class="hero-description">Not the bank. Get coverage that's portable, stays level, and pays your family directly—not the lender's balance sheet. Exposed the truth about bank mortgage insurance.</p>`,
		Replacement:   `<p class="hero-description">For Canadian homeowners with a mortgage, backed by Canada's leading insurers. Get coverage that's portable, stays level, and pays your family directly—not the lender's balance sheet.</p>`,
		GuardContains: []string{"For Canadian homeowners with a mortgage, backed by Canada's leading insurers."},
		Files:         []string{PageHome},
	},
	{
		ID:          "home-timing",
		Description: "why this matters now section",
		Pattern:     `(</section>\s*\n\s*<!-- Stats -->)`,
		Replacement: `</section>

        <!-- Why This Matters Now -->
        <section style="padding:60px 0;background:var(--slate-50)">
            <div class="container">
                <div style="max-width:800px;margin:0 auto;text-align:center">
                    <p style="font-size:17px;color:var(--slate-600);line-height:1.7">Most Canadians are offered mortgage insurance automatically when they get their mortgage—without being shown what else is available. Individual mortgage protection gives you ownership, portability, and control that bank insurance doesn't.</p>
                </div>
            </div>
        </section>

        <!-- Stats -->`,
		Literal:       true,
		GuardContains: []string{"Why This Matters Now"},
		Files:         []string{PageHome},
	},
}

var forClients = []text.RuleSpec{
	{
		ID:          "clients-coverage-guidance",
		Description: "coverage guidance",
		Pattern:     `(Most clients combine these coverages based on their mortgage amount, income, and family situation\.</p>\s*</div>\s*\n\s*<div class="problem-grid">)`,
		Replacement: `Most clients combine these coverages based on their mortgage amount, income, and family situation.</p>
                </div>

                <p style="font-size:17px;color:var(--slate-600);line-height:1.7;margin-bottom:32px;text-align:center">Most clients start with life insurance as the foundation and add disability or critical illness coverage based on their income, family situation, and existing coverage.</p>

                <div class="problem-grid">`,
		Literal:       true,
		GuardContains: []string{"Most clients start with life insurance as the foundation"},
		Files:         []string{PageForClients},
	},
	{
		ID:            "clients-process",
		Description:   "process description",
		Text:          `<p>We make it easy to understand your options and decide on your terms.</p>`,
		Replacement:   `<p>We make it easy to understand your options and decide on your terms. Quotes are personalized based on your age, health, and coverage amount—final pricing is confirmed after underwriting.</p>`,
		GuardContains: []string{"final pricing is confirmed after underwriting"},
		Files:         []string{PageForClients},
	},
}

var compare = []text.RuleSpec{
	{
		ID:          "compare-disclaimer",
		Description: "Added disclaimer after comparison table",
		Pattern:     `(</table>\s*</div>\s*</div>\s*</div>\s*</section>\s*\n\s*<!-- Warning Section -->)`,
		Replacement: `</table>
                </div>

                <p style="text-align:center;font-size:14px;color:var(--slate-500);margin-top:32px;max-width:800px;margin-left:auto;margin-right:auto">This comparison reflects typical bank creditor insurance structures. Specific terms and conditions vary by lender. Individual mortgage protection policies are underwritten by Canada's leading life insurers and subject to individual underwriting approval.</p>
            </div>
        </section>

        <!-- Warning Section -->`,
		Literal:       true,
		Count:         1,
		GuardContains: []string{"typical bank creditor insurance structures"},
		Files:         []string{PageCompare},
	},
}

var partners = []text.RuleSpec{
	{
		ID:          "partners-derisk",
		Description: "de-risk section",
		Pattern:     `(</section>\s*\n\s*<section class="trust-bar">)`,
		Replacement: `</section>

        <!-- De-Risk Message -->
        <section style="padding:48px 0;background:var(--navy-50)">
            <div class="container">
                <div style="max-width:900px;margin:0 auto;text-align:center">
                    <p style="font-size:17px;color:var(--slate-700);line-height:1.7">Insurio handles all licensing, compliance, carrier communication, and underwriting. You make the introduction—we take care of everything else.</p>
                </div>
            </div>
        </section>

        <section class="trust-bar">`,
		Literal:       true,
		Count:         1,
		GuardContains: []string{"De-Risk Message"},
		Files:         []string{PagePartners},
	},
	{
		ID:          "partners-compensation",
		Description: "compensation structure",
		Pattern:     `(<p>If your clients need mortgage protection, we should be working together\.</p>\s*</div>)`,
		Replacement: `<p>If your clients need mortgage protection, we should be working together.</p>
                    <div style="max-width:800px;margin:24px auto 0;padding:20px 24px;background:var(--slate-50);border-radius:12px;border:1px solid var(--slate-200)">
                        <p style="font-size:15px;color:var(--slate-700);line-height:1.7;margin:0"><strong>Compensation structure:</strong> Licensed insurance professionals may receive commission where permitted by their license and provincial regulations. Non-licensed referral partners receive a flat referral fee that is not contingent on policy approval or issuance.</p>
                    </div>
                </div>`,
		Literal:       true,
		GuardContains: []string{"Compensation structure"},
		Files:         []string{PagePartners},
	},
	{
		ID:          "partners-pilot",
		Description: "pilot program line",
		Pattern:     `(<div>\s*<div class="form-card">\s*<form id="partnerForm")`,
		Replacement: `<div>
                        <p style="font-size:15px;color:var(--slate-600);line-height:1.7;margin-bottom:24px;text-align:center">Insurio is currently onboarding a select group of referral partners as we expand the program across Canada.</p>

                        <div class="form-card">
                            <form id="partnerForm"`,
		Literal:       true,
		GuardContains: []string{"currently onboarding a select group"},
		Files:         []string{PagePartners},
	},
}

var contact = []text.RuleSpec{
	{
		ID:            "contact-heading",
		Description:   "hero heading",
		Text:          `<h1>Let's talk about <span class="highlight">protection</span></h1>`,
		Replacement:   `<h1>Questions about <span class="highlight">mortgage protection?</span></h1>`,
		GuardContains: []string{`<span class="highlight">mortgage protection?</span>`},
		Files:         []string{PageContact},
	},
	{
		ID:            "contact-description",
		Description:   "hero description",
		Text:          `<p class="hero-description" style="margin-left:auto;margin-right:auto">Get a personalized quote or ask us anything. No obligation, fast response, real conversation.</p>`,
		Replacement:   `<p class="hero-description" style="margin-left:auto;margin-right:auto">Request a personalized quote or ask us about coverage options. No obligation, fast response.</p>`,
		GuardContains: []string{"Request a personalized quote or ask us about coverage options."},
		Files:         []string{PageContact},
	},
}
