package catalog

// Platform is a named output-dimension preset for a target social surface.
type Platform struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameEn   string `json:"name_en"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Aspect   string `json:"aspect"`
	Platform string `json:"platform"`
}

var platformSizes = []Platform{
	{ID: "tiktok_reels", Name: "تيك توك / ريلز", NameEn: "TikTok / Reels", Width: 1080, Height: 1920, Aspect: "9:16", Platform: "vertical"},
	{ID: "post_square", Name: "بوست مربع", NameEn: "Square Post", Width: 1080, Height: 1080, Aspect: "1:1", Platform: "square"},
	{ID: "youtube_banner", Name: "يوتيوب / بنر", NameEn: "YouTube / Banner", Width: 1920, Height: 1080, Aspect: "16:9", Platform: "landscape"},
	{ID: "ig_story", Name: "ستوري", NameEn: "Story", Width: 1080, Height: 1920, Aspect: "9:16", Platform: "vertical"},
	{ID: "fb_feed", Name: "فيسبوك فيد", NameEn: "Facebook Feed", Width: 1200, Height: 628, Aspect: "1.91:1", Platform: "wide"},
}

// Aspect ratios requested from the generation API per platform. fb_feed maps
// to 16:9 even though its preset aspect is 1.91:1.
var generationAspectRatios = map[string]string{
	"tiktok_reels":   "9:16",
	"post_square":    "1:1",
	"youtube_banner": "16:9",
	"ig_story":       "9:16",
	"fb_feed":        "16:9",
}

// Platforms returns the full platform size catalog.
func Platforms() []Platform {
	return platformSizes
}

// PlatformByID looks up a platform preset by id. Unknown ids fall back to
// the square post preset rather than failing.
func PlatformByID(id string) Platform {
	for _, p := range platformSizes {
		if p.ID == id {
			return p
		}
	}
	return platformSizes[1]
}

// AspectRatio returns the generation aspect ratio for a platform id,
// defaulting to 1:1.
func AspectRatio(platformID string) string {
	if aspect, ok := generationAspectRatios[platformID]; ok {
		return aspect
	}
	return "1:1"
}
