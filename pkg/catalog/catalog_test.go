package catalog

import "testing"

func TestStrategiesCatalog(t *testing.T) {
	strategies := Strategies()
	if len(strategies) != 15 {
		t.Fatalf("Strategies() returned %d entries, want 15", len(strategies))
	}

	seen := make(map[string]bool)
	for _, s := range strategies {
		if s.ID == "" || s.NameAr == "" || s.NameEn == "" || s.VisualInstructions == "" {
			t.Errorf("strategy %q has empty required fields", s.ID)
		}
		if seen[s.ID] {
			t.Errorf("duplicate strategy id %q", s.ID)
		}
		seen[s.ID] = true
	}

	if strategies[0].ID != "hook" {
		t.Errorf("first strategy = %q, want hook", strategies[0].ID)
	}
}

func TestStrategyByID(t *testing.T) {
	if got := StrategyByID("scarcity"); got.ID != "scarcity" {
		t.Errorf("StrategyByID(scarcity) = %q", got.ID)
	}

	// Unknown ids fall back to the hook strategy.
	if got := StrategyByID("no_such_strategy"); got.ID != "hook" {
		t.Errorf("StrategyByID(unknown) = %q, want hook", got.ID)
	}
}

func TestPlatformsCatalog(t *testing.T) {
	platforms := Platforms()
	if len(platforms) != 5 {
		t.Fatalf("Platforms() returned %d entries, want 5", len(platforms))
	}

	for _, p := range platforms {
		if p.Width <= 0 || p.Height <= 0 {
			t.Errorf("platform %q has invalid dimensions %dx%d", p.ID, p.Width, p.Height)
		}
	}
}

func TestPlatformByID(t *testing.T) {
	if got := PlatformByID("ig_story"); got.Aspect != "9:16" {
		t.Errorf("PlatformByID(ig_story).Aspect = %q, want 9:16", got.Aspect)
	}

	// Unknown ids fall back to the square post preset.
	if got := PlatformByID("mystery"); got.ID != "post_square" {
		t.Errorf("PlatformByID(unknown) = %q, want post_square", got.ID)
	}
}

func TestAspectRatio(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"tiktok_reels", "9:16"},
		{"post_square", "1:1"},
		{"youtube_banner", "16:9"},
		{"fb_feed", "16:9"}, // generation uses 16:9 despite the 1.91:1 preset
		{"unknown", "1:1"},
	}

	for _, tt := range tests {
		if got := AspectRatio(tt.platform); got != tt.want {
			t.Errorf("AspectRatio(%q) = %q, want %q", tt.platform, got, tt.want)
		}
	}
}

func TestMarketingTips(t *testing.T) {
	tips := MarketingTips()
	if len(tips) != 8 {
		t.Fatalf("MarketingTips() returned %d entries, want 8", len(tips))
	}
	for i, tip := range tips {
		if tip.Ar == "" || tip.En == "" {
			t.Errorf("tip %d is missing a translation", i)
		}
	}
}
