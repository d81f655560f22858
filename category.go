package docpack

import "strings"

// OtherCategory is the label for pages matching no category rule.
// Pages in this category are excluded from the rendered output and the
// table of contents.
const OtherCategory = "Other"

// CategoryRule maps a literal URL substring to a category label.
type CategoryRule struct {
	Marker string
	Label  string
}

// CategoryRules is evaluated in order; the first marker contained in a
// page URL wins. Markers that are substrings of other markers must stay
// most-specific-first: "/for-developers/hyperevm/" has to precede
// "/hyperevm/" or every developer HyperEVM page would classify as
// "HyperEVM". Treat the ordering as part of the data.
var CategoryRules = []CategoryRule{
	{Marker: "/about-hyperliquid/", Label: "About Hyperliquid"},
	{Marker: "/onboarding/", Label: "Onboarding"},
	{Marker: "/hypercore/", Label: "HyperCore"},
	{Marker: "/for-developers/api/", Label: "API Documentation"},
	{Marker: "/for-developers/hyperevm/", Label: "HyperEVM for Developers"},
	{Marker: "/for-developers/nodes", Label: "Nodes"},
	{Marker: "/hyperevm/", Label: "HyperEVM"},
	{Marker: "/trading/", Label: "Trading"},
	{Marker: "/validators/", Label: "Validators"},
	{Marker: "/historical-data/", Label: "Historical Data"},
	{Marker: "/risks/", Label: "Risks"},
	{Marker: "/referrals/", Label: "Referrals"},
	{Marker: "/points/", Label: "Points"},
	{Marker: "/bug-bounty-program/", Label: "Bug Bounty Program"},
	{Marker: "/audits/", Label: "Audits"},
	{Marker: "/brand-kit/", Label: "Brand Kit"},
	{Marker: "/hyperliquid-improvement-proposals-", Label: "Hyperliquid Improvement Proposals (HIPs)"},
}

// Categorize classifies a page URL into a category label.
// Classification depends only on the URL, so it is stable across runs and
// independent of the other pages in the set.
func Categorize(url string) string {
	for _, rule := range CategoryRules {
		if strings.Contains(url, rule.Marker) {
			return rule.Label
		}
	}
	return OtherCategory
}
