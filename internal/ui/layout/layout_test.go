package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeaderShowsUser(t *testing.T) {
	h := RenderHeader("Matches", "Ana", 80)
	if !strings.Contains(h, "XOXO AI") || !strings.Contains(h, "Ana") {
		t.Errorf("header missing brand or user:\n%s", h)
	}
	if strings.Contains(RenderHeader("Scan", "", 80), "♡") {
		t.Error("header should omit the user marker before a profile exists")
	}
}

func TestHints(t *testing.T) {
	got := Hints([]KeyHint{{Key: "t", Description: "export"}, {Key: "m", Description: "marketplace"}})
	if !strings.Contains(got, "t export · m marketplace") {
		t.Errorf("unexpected hints %q", got)
	}
}

