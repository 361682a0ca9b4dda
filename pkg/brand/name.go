package brand

import (
	"encoding/json"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Common separators in page titles, in priority order.
var titleSeparators = []string{"|", "-", "—", ":", "•", "–", "«", "»"}

// ExtractName derives the best-guess brand name for a page. It tries, in
// order: the Open Graph site name, a JSON-LD Organization, a heuristic over
// the page title, and finally the domain name. Each tier is tried only when
// the previous one fully fails; the last resort is defaultTitle verbatim.
func ExtractName(doc *goquery.Document, defaultTitle, sourceURL string) string {
	if name := openGraphSiteName(doc); name != "" {
		return name
	}

	if name := jsonLDOrganization(doc); name != "" {
		return name
	}

	if name := nameFromTitle(defaultTitle); name != "" {
		return name
	}

	if name := nameFromDomain(sourceURL); name != "" {
		return name
	}

	return defaultTitle
}

func openGraphSiteName(doc *goquery.Document) string {
	content, _ := doc.Find(`meta[property="og:site_name"]`).First().Attr("content")
	return strings.TrimSpace(content)
}

func jsonLDOrganization(doc *goquery.Document) string {
	var found string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data map[string]interface{}
		// Malformed blocks are skipped silently.
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}

		if name := organizationName(data); name != "" {
			found = name
			return false
		}

		graph, _ := data["@graph"].([]interface{})
		for _, item := range graph {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			if name := organizationName(entry); name != "" {
				found = name
				return false
			}
		}
		return true
	})
	return found
}

func organizationName(d map[string]interface{}) string {
	if t, _ := d["@type"].(string); t != "Organization" {
		return ""
	}
	name, _ := d["name"].(string)
	return name
}

func nameFromTitle(title string) string {
	if title == "" {
		return ""
	}

	for _, sep := range titleSeparators {
		if !strings.Contains(title, sep) {
			continue
		}

		// Usually the brand name is the shortest part; very long parts are
		// descriptions, not brand-like.
		best := ""
		for _, part := range strings.Split(title, sep) {
			part = strings.TrimSpace(part)
			if part == "" || utf8.RuneCountInString(part) >= 40 {
				continue
			}
			if best == "" || utf8.RuneCountInString(part) < utf8.RuneCountInString(best) {
				best = part
			}
		}
		// Only the first separator present in the title is considered.
		return best
	}
	return ""
}

func nameFromDomain(sourceURL string) string {
	if sourceURL == "" {
		return ""
	}

	host := ""
	if u, err := url.Parse(sourceURL); err == nil {
		host = u.Host
	}
	if host == "" {
		host = sourceURL
	}
	host = strings.TrimPrefix(host, "www.")

	idx := strings.LastIndex(host, ".")
	if idx < 0 {
		return ""
	}
	return titleCase(strings.ReplaceAll(host[:idx], "-", " "))
}

// titleCase uppercases the first letter of every letter run and lowercases
// the rest, like "my shop" -> "My Shop".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
