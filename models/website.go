package models

// WebsiteData is the structured result of one scrape call. It is not
// persisted on its own; the client embeds it into a project on creation.
type WebsiteData struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Services      []string       `json:"services"`
	Images        []string       `json:"images"`
	Keywords      []string       `json:"keywords"`
	BrandAnalysis *BrandAnalysis `json:"brand_analysis,omitempty"`
}

// BrandAnalysis is the heuristic summary of a scraped site's voice and colors.
type BrandAnalysis struct {
	BrandVoice     string   `json:"brand_voice"`
	ColorPalette   []string `json:"color_palette"`
	PrimaryColor   string   `json:"primary_color"`
	SecondaryColor string   `json:"secondary_color"`
	AccentColor    string   `json:"accent_color"`
	Tone           string   `json:"tone"`
	Industry       string   `json:"industry"`
}

type ScrapeRequest struct {
	URL string `json:"url" binding:"required"`
}
