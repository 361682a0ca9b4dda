package scraper

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"neuroad-server/config"
	"neuroad-server/models"
	"neuroad-server/pkg/brand"
)

// Scraper fetches a page and derives structured brand data from it.
// Certificate validation is disabled: best-effort scraping over strict
// transport correctness.
type Scraper struct {
	client    *http.Client
	userAgent string
}

func New(cfg *config.Config) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: cfg.Scraper.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		userAgent: cfg.Scraper.UserAgent,
	}
}

// NormalizeURL trims a single leading slash and defaults to https for
// schemeless input.
func NormalizeURL(raw string) string {
	raw = strings.TrimPrefix(raw, "/")
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return raw
}

// Scrape fetches url and assembles a WebsiteData record. It fails when the
// target cannot be fetched or parsed; the caller surfaces that as a client
// error.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*models.WebsiteData, error) {
	target := NormalizeURL(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", target, err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch website: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("could not fetch website: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not parse website: %w", err)
	}

	return buildWebsiteData(doc, target), nil
}

func buildWebsiteData(doc *goquery.Document, pageURL string) *models.WebsiteData {
	rawTitle := doc.Find("title").First().Text()
	title := brand.ExtractName(doc, rawTitle, pageURL)
	description := doc.Find(`meta[name="description"]`).First().AttrOr("content", "")

	palette := extractPalette(doc)
	services := extractServices(doc)
	images := extractImages(doc, pageURL)

	analysis := &models.BrandAnalysis{
		BrandVoice:     analyzeBrandVoice(pageText(doc)),
		ColorPalette:   palette,
		PrimaryColor:   paletteColor(palette, 0, "#000000"),
		SecondaryColor: paletteColor(palette, 1, "#666666"),
		AccentColor:    paletteColor(palette, 2, "#3B82F6"),
		Tone:           paletteTone(palette),
	}

	return &models.WebsiteData{
		Title:         title,
		Description:   description,
		Services:      services,
		Images:        images,
		Keywords:      []string{},
		BrandAnalysis: analysis,
	}
}

// extractPalette unions colors from every <style> block and every inline
// style attribute, deduplicated in first-seen order and capped at 10.
func extractPalette(doc *goquery.Document) []string {
	palette := []string{}
	seen := make(map[string]bool)

	add := func(colors []string) {
		for _, c := range colors {
			if seen[c] || len(palette) >= 10 {
				continue
			}
			seen[c] = true
			palette = append(palette, c)
		}
	}

	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		add(brand.ExtractColors(s.Text()))
	})
	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		add(brand.ExtractColors(s.AttrOr("style", "")))
	})

	return palette
}

// extractServices collects h1/h2/h3 text with a trimmed length strictly
// between 5 and 100 runes, in document order, capped at 10.
func extractServices(doc *goquery.Document) []string {
	services := []string{}
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if n := utf8.RuneCountInString(text); n > 5 && n < 100 {
			services = append(services, text)
		}
		return len(services) < 10
	})
	return services
}

// extractImages collects absolute img sources, upgrading protocol-relative
// URLs to https and resolving root-relative ones against the page URL.
// Data URIs are skipped; the result is capped at 8.
func extractImages(doc *goquery.Document, pageURL string) []string {
	base, _ := url.Parse(pageURL)

	images := []string{}
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src := s.AttrOr("src", "")
		switch {
		case src == "" || strings.HasPrefix(src, "data:"):
			return true
		case strings.HasPrefix(src, "//"):
			src = "https:" + src
		case strings.HasPrefix(src, "/") && base != nil:
			if ref, err := url.Parse(src); err == nil {
				src = base.ResolveReference(ref).String()
			}
		}
		if strings.HasPrefix(src, "http") {
			images = append(images, src)
		}
		return len(images) < 8
	})
	return images
}

var brandVoiceKeywords = []struct {
	voice string
	words []string
}{
	{"luxury", []string{"luxury", "premium", "فاخر", "حصري"}},
	{"playful", []string{"fun", "exciting", "مرح", "ممتع"}},
	{"formal", []string{"professional", "trusted", "موثوق"}},
}

// analyzeBrandVoice keyword-matches the page text against the voice
// categories, first match wins, default friendly.
func analyzeBrandVoice(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range brandVoiceKeywords {
		for _, word := range entry.words {
			if strings.Contains(lower, word) {
				return entry.voice
			}
		}
	}
	return "friendly"
}

// pageText returns the page's whitespace-normalized visible text, truncated
// to the first 2000 runes.
func pageText(doc *goquery.Document) string {
	text := strings.Join(strings.Fields(doc.Text()), " ")
	runes := []rune(text)
	if len(runes) > 2000 {
		runes = runes[:2000]
	}
	return string(runes)
}

func paletteColor(palette []string, idx int, fallback string) string {
	if idx < len(palette) {
		return palette[idx]
	}
	return fallback
}

func paletteTone(palette []string) string {
	if len(palette) == 0 {
		return brand.ToneNeutral
	}
	return brand.ColorTone(palette[0])
}
