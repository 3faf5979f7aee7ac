package layout

import "testing"

func TestIsNarrowMode(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{40, true},
		{79, true},
		{80, false},
		{200, false},
	}
	for _, tt := range tests {
		if got := IsNarrowMode(tt.width); got != tt.want {
			t.Errorf("IsNarrowMode(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct {
		name   string
		window int
		want   int
		margin int
	}{
		{"narrow", 60, 56, 2},
		{"capped", 200, MaxContentWidth, 45},
		{"tiny", 3, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentWidth(tt.window); got != tt.want {
				t.Errorf("ContentWidth(%d) = %d, want %d", tt.window, got, tt.want)
			}
			if got := ContentMargin(tt.window); got != tt.margin {
				t.Errorf("ContentMargin(%d) = %d, want %d", tt.window, got, tt.margin)
			}
		})
	}
}

func TestViewportHeight(t *testing.T) {
	tests := []struct {
		name         string
		window       int
		header       int
		notification bool
		want         int
	}{
		{"plain", 40, 1, false, 39},
		{"scrolled header", 40, 2, false, 38},
		{"with notification", 40, 1, true, 38},
		{"too small", 1, 2, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ViewportHeight(tt.window, tt.header, tt.notification); got != tt.want {
				t.Errorf("ViewportHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClampOffset(t *testing.T) {
	tests := []struct {
		offset, content, view, want int
	}{
		{-3, 100, 20, 0},
		{50, 100, 20, 50},
		{95, 100, 20, 80},
		{5, 10, 20, 0},
	}
	for _, tt := range tests {
		if got := ClampOffset(tt.offset, tt.content, tt.view); got != tt.want {
			t.Errorf("ClampOffset(%d, %d, %d) = %d, want %d", tt.offset, tt.content, tt.view, got, tt.want)
		}
	}
}

func TestStrip(t *testing.T) {
	s := Strip{ViewWidth: 100, CardWidth: 30, Gap: 4, Count: 3}

	if got := s.SidePadding(); got != 35 {
		t.Errorf("SidePadding() = %d, want 35", got)
	}
	if got := s.CardLeft(2); got != 35+2*34 {
		t.Errorf("CardLeft(2) = %d, want %d", got, 35+2*34)
	}
	if got := s.CardCenter(0); got != 50 {
		t.Errorf("CardCenter(0) = %v, want 50", got)
	}
	if got := s.Width(); got != 70+90+8 {
		t.Errorf("Width() = %d, want %d", got, 70+90+8)
	}

	// The first card is centered at scroll 0, the last at max scroll.
	if got := s.ScrollToCenter(0); got != 0 {
		t.Errorf("ScrollToCenter(0) = %d, want 0", got)
	}
	if got := s.ScrollToCenter(2); got != s.MaxScroll() {
		t.Errorf("ScrollToCenter(2) = %d, want %d", got, s.MaxScroll())
	}
}

func TestCardWidthFor(t *testing.T) {
	if got := CardWidthFor(50, 36); got != 40 {
		t.Errorf("narrow CardWidthFor = %d, want 40", got)
	}
	if got := CardWidthFor(120, 36); got != 36 {
		t.Errorf("wide CardWidthFor = %d, want 36", got)
	}
}
