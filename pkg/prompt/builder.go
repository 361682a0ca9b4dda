package prompt

import (
	"fmt"
	"strings"

	"neuroad-server/models"
	"neuroad-server/pkg/catalog"
)

var variationStyles = []string{
	"Clean and minimalist",
	"Bold and dynamic",
	"Elegant and sophisticated",
}

// BuildImagePrompt renders the image-generation instruction for one
// variation (1-based). Out-of-range variation indexes use the first style.
func BuildImagePrompt(project *models.Project, variation int) string {
	strategy := catalog.StrategyByID(project.PsychologicalStrategyID)
	platform := catalog.PlatformByID(project.Platform)

	style := variationStyles[0]
	if variation >= 1 && variation <= len(variationStyles) {
		style = variationStyles[variation-1]
	}

	return fmt.Sprintf(`Create a HIGH-CONVERTING advertisement image:

BRAND: %s
Description: %s
Strengths: %s

COLORS: Primary %s, Secondary %s, Accent %s

PLATFORM: %s (%dx%d)

NEUROMARKETING STRATEGY: %s
%s

STYLE: %s

REQUIREMENTS:
- Arabic text, RTL flow
- Mobile-optimized, readable on small screens
- Modern professional aesthetic
- Apply psychological strategy exactly`,
		project.CompanyName,
		project.CompanyDescription,
		strings.Join(project.Strengths, ", "),
		brandColor(project, "primary", "#000000"),
		brandColor(project, "secondary", "#FFFFFF"),
		brandColor(project, "accent", "#3B82F6"),
		platform.NameEn, platform.Width, platform.Height,
		strategy.NameEn,
		strategy.VisualInstructions,
		style,
	)
}

// BuildVideoPrompt renders the short-form video instruction. Strategies
// without dedicated video text reuse their visual instructions.
func BuildVideoPrompt(project *models.Project) string {
	strategy := catalog.StrategyByID(project.PsychologicalStrategyID)

	instructions := strategy.VideoInstructions
	if instructions == "" {
		instructions = strategy.VisualInstructions
	}

	return fmt.Sprintf(`Create SHORT-FORM VIDEO AD (5-10 seconds loop):

BRAND: %s
Product: %s

STRATEGY: %s
%s

SPECS: Modern, cinematic, high-energy. Capture attention in FIRST FRAME. Smooth transitions.`,
		project.CompanyName,
		project.CompanyDescription,
		strategy.NameEn,
		instructions,
	)
}

// strategyCaptions covers only a handful of strategy ids; everything else
// gets the generic default.
var strategyCaptions = map[string]models.Caption{
	"hook":          {CaptionAr: "توقف! 🛑 هل رأيت هذا من قبل؟", CaptionEn: "Stop! 🛑 Have you seen this before?"},
	"scarcity":      {CaptionAr: "⏰ الكمية محدودة جداً!", CaptionEn: "⏰ Very limited quantity!"},
	"social_proof":  {CaptionAr: "⭐⭐⭐⭐⭐ آلاف العملاء السعداء", CaptionEn: "⭐⭐⭐⭐⭐ Thousands of happy customers"},
	"loss_aversion": {CaptionAr: "😱 لا تفوّت الفرصة!", CaptionEn: "😱 Don't miss out!"},
}

var defaultCaption = models.Caption{CaptionAr: "عرض خاص ✨", CaptionEn: "Special offer ✨"}

var captionHashtags = []string{"#اعلان", "#تسويق", "#عرض_خاص"}

// BuildCaption derives the social caption for a generation run from the
// matched strategy id.
func BuildCaption(project *models.Project, strategy catalog.Strategy) models.Caption {
	base, ok := strategyCaptions[strategy.ID]
	if !ok {
		base = defaultCaption
	}

	tags := strings.Join(captionHashtags, " ")
	return models.Caption{
		CaptionAr: fmt.Sprintf("%s\n\n%s\n\n%s", base.CaptionAr, project.CompanyName, tags),
		CaptionEn: fmt.Sprintf("%s\n\n%s\n\n%s", base.CaptionEn, project.CompanyName, tags),
		Hashtags:  append([]string(nil), captionHashtags...),
	}
}

// brandColor falls back only when the key is absent; a stored empty string
// is returned as-is.
func brandColor(project *models.Project, key, fallback string) string {
	if c, ok := project.BrandColors[key]; ok {
		return c
	}
	return fallback
}
