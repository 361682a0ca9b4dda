package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"neuroad-server/config"
	"neuroad-server/pkg/logger"
)

func init() {
	logger.Logger = logrus.New()
}

func testScraper() *Scraper {
	cfg := &config.Config{}
	cfg.Scraper.Timeout = 5 * time.Second
	cfg.Scraper.UserAgent = "test-agent"
	return New(cfg)
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"example.com", "https://example.com"},
		{"/example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/page", "https://example.com/page"},
	}

	for _, tt := range tests {
		if got := NormalizeURL(tt.raw); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestScrape(t *testing.T) {
	const page = `<html>
	<head>
		<title>Luxury Watches | Chronos</title>
		<meta name="description" content="Premium timepieces">
		<style>.hero { color: #AA0000; background: #00CCCC }</style>
	</head>
	<body>
		<h1>Our Premium Collection</h1>
		<h2>Swiss Craftsmanship Since 1920</h2>
		<h3>Tiny</h3>
		<div style="border-color: #112233">content</div>
		<img src="/img/watch.png">
		<img src="//cdn.example.com/banner.jpg">
		<img src="data:image/png;base64,AAAA">
		<img src="https://static.example.com/logo.svg">
	</body>
</html>`

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	data, err := testScraper().Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	if gotUA != "test-agent" {
		t.Errorf("User-Agent = %q", gotUA)
	}

	// Brand name comes from the title heuristic: shortest part of the first
	// separator split.
	if data.Title != "Chronos" {
		t.Errorf("Title = %q, want Chronos", data.Title)
	}
	if data.Description != "Premium timepieces" {
		t.Errorf("Description = %q", data.Description)
	}

	wantServices := []string{"Our Premium Collection", "Swiss Craftsmanship Since 1920"}
	if !reflect.DeepEqual(data.Services, wantServices) {
		t.Errorf("Services = %v, want %v", data.Services, wantServices)
	}

	wantImages := []string{
		srv.URL + "/img/watch.png",
		"https://cdn.example.com/banner.jpg",
		"https://static.example.com/logo.svg",
	}
	if !reflect.DeepEqual(data.Images, wantImages) {
		t.Errorf("Images = %v, want %v", data.Images, wantImages)
	}

	analysis := data.BrandAnalysis
	if analysis == nil {
		t.Fatal("BrandAnalysis is nil")
	}
	if analysis.BrandVoice != "luxury" {
		t.Errorf("BrandVoice = %q, want luxury", analysis.BrandVoice)
	}

	wantPalette := []string{"#AA0000", "#00CCCC", "#112233"}
	if !reflect.DeepEqual(analysis.ColorPalette, wantPalette) {
		t.Errorf("ColorPalette = %v, want %v", analysis.ColorPalette, wantPalette)
	}
	if analysis.PrimaryColor != "#AA0000" {
		t.Errorf("PrimaryColor = %q", analysis.PrimaryColor)
	}
	if analysis.SecondaryColor != "#00CCCC" {
		t.Errorf("SecondaryColor = %q", analysis.SecondaryColor)
	}
	// First palette color is red, so the tone is warm.
	if analysis.Tone != "warm" {
		t.Errorf("Tone = %q, want warm", analysis.Tone)
	}
}

func TestScrapeColorFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><head><title>Bare</title></head><body></body></html>"))
	}))
	defer srv.Close()

	data, err := testScraper().Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	analysis := data.BrandAnalysis
	if analysis.PrimaryColor != "#000000" {
		t.Errorf("PrimaryColor = %q, want #000000", analysis.PrimaryColor)
	}
	if analysis.SecondaryColor != "#666666" {
		t.Errorf("SecondaryColor = %q, want #666666", analysis.SecondaryColor)
	}
	if analysis.AccentColor != "#3B82F6" {
		t.Errorf("AccentColor = %q, want #3B82F6", analysis.AccentColor)
	}
	if analysis.Tone != "neutral" {
		t.Errorf("Tone = %q, want neutral", analysis.Tone)
	}
	if analysis.BrandVoice != "friendly" {
		t.Errorf("BrandVoice = %q, want friendly", analysis.BrandVoice)
	}
}

func TestScrapeNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := testScraper().Scrape(context.Background(), srv.URL); err == nil {
		t.Fatal("Scrape() of a 403 page should fail")
	}
}

func TestAnalyzeBrandVoice(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Experience our LUXURY collection", "luxury"},
		{"منتجات فاخرة وحصرية", "luxury"},
		{"So much fun for everyone", "playful"},
		{"Trusted by professionals", "formal"},
		{"Just a plain page", "friendly"},
	}

	for _, tt := range tests {
		if got := analyzeBrandVoice(tt.text); got != tt.want {
			t.Errorf("analyzeBrandVoice(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestPageTextTruncation(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<html><body><p>" + strings.Repeat("د", 3000) + "</p></body></html>"))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	got := pageText(doc)
	if n := len([]rune(got)); n != 2000 {
		t.Errorf("pageText() length = %d runes, want 2000", n)
	}
}
