// Package goquery extracts concept-scheme facets from the id.loc.gov
// search page HTML using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locid"
)

// ExtractSchemes parses the search page HTML and returns a mapping from
// normalized scheme name to scheme identifier.
//
// The concept schemes are the first .facet-box on the page. This is a
// structural assumption about service-controlled markup: there is no
// stable identifier for the box itself, only its position.
//
// Identifiers are taken from each link's href with the leading "?q="
// stripped and are otherwise kept verbatim, so they retain the "cs:"
// prefix the service embeds in facet links. Names are the nested span
// text lowercased, with spaces and slashes converted to hyphens and any
// resulting triple hyphen collapsed to one. Empty names are skipped, and
// when two facets normalize to the same name the first one wins (the
// service exposes two facets both labeled "preservation level").
func ExtractSchemes(html string) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, locid.Errorf(locid.EINVALID, "failed to parse HTML: %v", err)
	}

	schemes := make(map[string]string)
	doc.Find(".facet-box").First().Find("li a").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}

		name := normalizeSchemeName(sel.Find("span").First().Text())
		if name == "" {
			return
		}
		if _, ok := schemes[name]; ok {
			return
		}

		schemes[name] = strings.TrimPrefix(href, "?q=")
	})

	return schemes, nil
}

// normalizeSchemeName converts a facet display label to its registry form.
func normalizeSchemeName(label string) string {
	name := strings.ToLower(label)
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "---", "-")
	return name
}
