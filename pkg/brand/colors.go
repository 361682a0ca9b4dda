package brand

import (
	"regexp"
	"strconv"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})`)

// Color tones derived from a color's hue.
const (
	ToneWarm    = "warm"
	ToneCool    = "cool"
	ToneNeutral = "neutral"
)

// ExtractColors scans css text for hex colors. 3-digit CSS shorthand is
// expanded by doubling each digit. The result is deduplicated in first-seen
// order and capped at 10 entries.
func ExtractColors(cssText string) []string {
	matches := hexColorPattern.FindAllStringSubmatch(cssText, -1)
	seen := make(map[string]bool, len(matches))
	var colors []string
	for _, m := range matches {
		c := m[1]
		if len(c) == 3 {
			c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
		}
		color := "#" + c
		if seen[color] {
			continue
		}
		seen[color] = true
		colors = append(colors, color)
		if len(colors) == 10 {
			break
		}
	}
	return colors
}

// ColorTone classifies a hex color's hue: [0,60) and [300,360] are warm,
// [180,300) is cool, everything else neutral. Malformed input is neutral,
// never an error.
func ColorTone(hexColor string) string {
	h := strings.TrimLeft(hexColor, "#")
	if len(h) < 6 {
		return ToneNeutral
	}

	var rgb [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 16)
		if err != nil {
			return ToneNeutral
		}
		rgb[i] = float64(v) / 255
	}

	hue := rgbHue(rgb[0], rgb[1], rgb[2])
	switch {
	case hue < 60 || hue >= 300:
		return ToneWarm
	case hue >= 180 && hue < 300:
		return ToneCool
	default:
		return ToneNeutral
	}
}

// rgbHue returns the HSV hue in degrees [0,360). Achromatic input has hue 0.
func rgbHue(r, g, b float64) float64 {
	maxc := max(r, max(g, b))
	minc := min(r, min(g, b))
	if maxc == minc {
		return 0
	}

	d := maxc - minc
	var hue float64
	switch maxc {
	case r:
		hue = (g - b) / d
	case g:
		hue = (b-r)/d + 2
	default:
		hue = (r-g)/d + 4
	}
	hue *= 60
	if hue < 0 {
		hue += 360
	}
	return hue
}
