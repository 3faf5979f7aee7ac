package scroll

import "testing"

func TestOffset_ByClamps(t *testing.T) {
	var o Offset

	if o.By(-1, 100, 20) {
		t.Error("scrolling up at the top should not change the offset")
	}
	if !o.By(50, 100, 20) || o.Pos() != 50 {
		t.Errorf("Pos() = %d, want 50", o.Pos())
	}
	o.By(100, 100, 20)
	if o.Pos() != 80 {
		t.Errorf("Pos() = %d, want 80 (max)", o.Pos())
	}
}

func TestOffset_ContentShorterThanView(t *testing.T) {
	var o Offset
	o.By(5, 10, 20)
	if o.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", o.Pos())
	}
}

func TestOffset_ClampAfterResize(t *testing.T) {
	var o Offset
	o.To(80, 100, 20)

	// Taller window: less room to scroll.
	if !o.Clamp(100, 40) || o.Pos() != 60 {
		t.Errorf("Pos() = %d, want 60", o.Pos())
	}
}

func TestOffset_Reveal(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       int
	}{
		{"already visible", 12, 18, 10},
		{"above", 4, 8, 4},
		{"below", 35, 40, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Offset{pos: 10}
			o.Reveal(tt.start, tt.end, 100, 20)
			if o.Pos() != tt.want {
				t.Errorf("Pos() = %d, want %d", o.Pos(), tt.want)
			}
		})
	}
}

func TestOffset_Visible(t *testing.T) {
	o := Offset{pos: 90}
	if s, e := o.Visible(100, 20); s != 90 || e != 100 {
		t.Errorf("Visible() = [%d, %d), want [90, 100)", s, e)
	}
	if s, e := o.Visible(0, 20); s != 0 || e != 0 {
		t.Errorf("Visible(empty) = [%d, %d)", s, e)
	}
}

func TestOffset_HandleKey(t *testing.T) {
	tests := []struct {
		key     string
		start   int
		want    int
		handled bool
	}{
		{"j", 0, 1, true},
		{"down", 0, 1, true},
		{"k", 5, 4, true},
		{"ctrl+d", 0, 10, true},
		{"ctrl+u", 15, 5, true},
		{"pgdown", 0, 19, true},
		{"pgup", 30, 11, true},
		{"G", 0, 80, true},
		{"g", 40, 0, true},
		{"x", 7, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			o := Offset{pos: tt.start}
			if got := o.HandleKey(tt.key, 100, 20); got != tt.handled {
				t.Errorf("HandleKey(%q) = %v, want %v", tt.key, got, tt.handled)
			}
			if o.Pos() != tt.want {
				t.Errorf("Pos() = %d, want %d", o.Pos(), tt.want)
			}
		})
	}
}
