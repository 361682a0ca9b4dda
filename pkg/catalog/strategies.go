package catalog

// Strategy is a named persuasion-technique template driving prompt content.
type Strategy struct {
	ID                 string `json:"id"`
	NameAr             string `json:"name_ar"`
	NameEn             string `json:"name_en"`
	Icon               string `json:"icon"`
	DescriptionAr      string `json:"description_ar"`
	DescriptionEn      string `json:"description_en"`
	VisualInstructions string `json:"visual_instructions"`
	VideoInstructions  string `json:"video_instructions"`
}

// psychologicalStrategies is the immutable strategy catalog, loaded once at
// startup. Lookups fall back to the first entry for unknown ids.
var psychologicalStrategies = []Strategy{
	{
		ID:                 "hook",
		NameAr:             "الخطاف",
		NameEn:             "Hook Strategy",
		Icon:               "hook",
		DescriptionAr:      "عنصر مفاجئ يوقف التصفح",
		DescriptionEn:      "Surprising element that stops scrolling",
		VisualInstructions: "Use HIGH CONTRAST colors, FISH-EYE angles, include ONE ILLOGICAL element. Text should be BOLD and off-center.",
		VideoInstructions:  "Start with unexpected visual. Quick cuts, dynamic movement.",
	},
	{
		ID:                 "shock_comparison",
		NameAr:             "المقارنة الصادمة",
		NameEn:             "Shock Comparison",
		Icon:               "scale",
		DescriptionAr:      "تقسيم يبرز التباين الحاد",
		DescriptionEn:      "Split screen showing stark contrast",
		VisualInstructions: "SPLIT SCREEN - left dark/chaotic, right bright/organized. Sharp diagonal dividing line.",
		VideoInstructions:  "Wipe transition from problem to solution.",
	},
	{
		ID:                 "bold_opinion",
		NameAr:             "الرأي الجريء",
		NameEn:             "Bold Opinion",
		Icon:               "megaphone",
		DescriptionAr:      "موقف قوي يثير النقاش",
		DescriptionEn:      "Strong stance that sparks discussion",
		VisualInstructions: "Extensive NEGATIVE SPACE (60%+). One powerful statement in large typography.",
		VideoInstructions:  "Static shot with slowly appearing text.",
	},
	{
		ID:                 "whisper_insight",
		NameAr:             "الهمس",
		NameEn:             "Whisper Insight",
		Icon:               "lightbulb",
		DescriptionAr:      "جو غامض يوحي بالسرية",
		DescriptionEn:      "Mysterious atmosphere suggesting secrets",
		VisualInstructions: "DIM LIGHTING with spotlight. MACRO close-ups. Muted colors with one accent.",
		VideoInstructions:  "Slow motion, shallow depth of field.",
	},
	{
		ID:                 "pain_of_paying",
		NameAr:             "ألم الدفع",
		NameEn:             "Pain of Paying",
		Icon:               "credit-card",
		DescriptionAr:      "إظهار القيمة أكبر من السعر",
		DescriptionEn:      "Show value larger than price",
		VisualInstructions: "VALUE in HUGE typography (200%+), price in small text. Green checkmarks.",
		VideoInstructions:  "Items appearing with cha-ching effect.",
	},
	{
		ID:                 "loss_aversion",
		NameAr:             "تجنب الخسارة",
		NameEn:             "Loss Aversion",
		Icon:               "shield-alert",
		DescriptionAr:      "الخوف من فقدان الفرصة",
		DescriptionEn:      "Fear of missing out",
		VisualInstructions: "RED gradients. Product FADING effect. Countdown timer. Empty shelf imagery.",
		VideoInstructions:  "Product slowly fading. Clock ticking.",
	},
	{
		ID:                 "problem_solution",
		NameAr:             "المشكلة والحل",
		NameEn:             "Problem-Solution",
		Icon:               "puzzle",
		DescriptionAr:      "من الفوضى إلى الراحة",
		DescriptionEn:      "From chaos to comfort",
		VisualInstructions: "Two-panel: Panel 1 GRAYSCALE showing frustration. Panel 2 FULL COLOR showing relief.",
		VideoInstructions:  "Start BLACK AND WHITE, transition to full color.",
	},
	{
		ID:                 "story_based",
		NameAr:             "القصة",
		NameEn:             "Story-Based",
		Icon:               "book-open",
		DescriptionAr:      "سرد قصة بداية ووسط ونهاية",
		DescriptionEn:      "Narrative with beginning, middle, end",
		VisualInstructions: "CAROUSEL design (3-5 panels). Setup, Conflict, Resolution.",
		VideoInstructions:  "Three-act structure. Character-driven.",
	},
	{
		ID:                 "human_touch",
		NameAr:             "اللمسة البشرية",
		NameEn:             "Human Touch",
		Icon:               "heart-handshake",
		DescriptionAr:      "تواصل بصري مباشر مع الكاميرا",
		DescriptionEn:      "Direct eye contact with camera",
		VisualInstructions: "DIRECT EYE CONTACT mandatory. Real human face. Genuine smile. Natural lighting.",
		VideoInstructions:  "Person looking at camera. Authentic testimonial.",
	},
	{
		ID:                 "engagement_cta",
		NameAr:             "السؤال التفاعلي",
		NameEn:             "Engagement CTA",
		Icon:               "message-circle",
		DescriptionAr:      "عنصر تفاعلي يدعو للمشاركة",
		DescriptionEn:      "Interactive element inviting participation",
		VisualInstructions: "Include FAKE INTERACTIVE ELEMENTS: Poll buttons, A/B choices, quiz format.",
		VideoInstructions:  "Pause for viewer. Point to comment section.",
	},
	{
		ID:                 "herd_mentality",
		NameAr:             "القطيع",
		NameEn:             "Herd Mentality",
		Icon:               "users",
		DescriptionAr:      "ازدحام يظهر الشعبية",
		DescriptionEn:      "Crowd showing popularity",
		VisualInstructions: "Show CROWD using the product. Queue imagery. 'Sold out' stamps.",
		VideoInstructions:  "Multiple people unboxing. Counter showing growing numbers.",
	},
	{
		ID:                 "social_proof",
		NameAr:             "الدليل الاجتماعي",
		NameEn:             "Social Proof",
		Icon:               "star",
		DescriptionAr:      "تقييمات وآراء العملاء",
		DescriptionEn:      "Customer reviews and ratings",
		VisualInstructions: "STAR RATINGS prominently displayed. Chat bubble with testimonial. Trust badges.",
		VideoInstructions:  "Testimonial clips. Star rating animation.",
	},
	{
		ID:                 "reciprocity",
		NameAr:             "المقايضة",
		NameEn:             "Reciprocity Principle",
		Icon:               "gift",
		DescriptionAr:      "الهدية تلمع أكثر من المنتج",
		DescriptionEn:      "Gift shines brighter than product",
		VisualInstructions: "FREE GIFT with GLOW effect - more prominent than main product.",
		VideoInstructions:  "Gift reveal with sparkle effects.",
	},
	{
		ID:                 "commitment",
		NameAr:             "الالتزام",
		NameEn:             "Commitment & Consistency",
		Icon:               "check-circle",
		DescriptionAr:      "شريط تقدم يوحي بالإنجاز",
		DescriptionEn:      "Progress bar suggesting achievement",
		VisualInstructions: "PROGRESS BAR at 70-90%. Step indicators. 'Almost there!' messaging.",
		VideoInstructions:  "Progress bar filling up. Confetti at milestones.",
	},
	{
		ID:                 "scarcity",
		NameAr:             "الندرة",
		NameEn:             "Scarcity Principle",
		Icon:               "clock",
		DescriptionAr:      "عناصر توحي بالنفاد",
		DescriptionEn:      "Elements suggesting running out",
		VisualInstructions: "EMPTY SHELVES with last item. COUNTDOWN TIMER. HOURGLASS. Red urgent colors.",
		VideoInstructions:  "Clock ticking. Items disappearing from shelf.",
	},
}

// Strategies returns the full psychological strategy catalog.
func Strategies() []Strategy {
	return psychologicalStrategies
}

// StrategyByID looks up a strategy by id. Unknown ids fall back to the first
// catalog entry rather than failing.
func StrategyByID(id string) Strategy {
	for _, s := range psychologicalStrategies {
		if s.ID == id {
			return s
		}
	}
	return psychologicalStrategies[0]
}
