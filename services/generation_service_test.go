package services

import "testing"

func TestClampVariationCount(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name      string
		requested *int
		want      int
	}{
		{"absent defaults to max", nil, 3},
		{"within range", intPtr(2), 2},
		{"above max is clamped", intPtr(10), 3},
		{"explicit zero is honored", intPtr(0), 0},
		{"negative passes through", intPtr(-1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampVariationCount(tt.requested); got != tt.want {
				t.Errorf("clampVariationCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
