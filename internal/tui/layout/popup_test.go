package layout

import "testing"

func TestCalculatePopupWidth(t *testing.T) {
	cfg := DefaultConfig().Popup

	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"normal terminal", 80, 80},
		{"wide terminal capped", 200, 100},
		{"narrow terminal enforces min", 20, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePopupWidth(tt.width, cfg)
			if got != tt.want {
				t.Errorf("CalculatePopupWidth(%d) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestCalculateListHeight(t *testing.T) {
	cfg := DefaultConfig().Popup

	tests := []struct {
		name           string
		terminalHeight int
		want           int
	}{
		{"normal terminal", 24, 17},           // 24 - 7 = 17
		{"small terminal enforces min", 8, 3}, // 8 - 7 = 1, min is 3
		{"terminal smaller than reduction", 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateListHeight(tt.terminalHeight, cfg)
			if got != tt.want {
				t.Errorf("CalculateListHeight(%d) = %d, want %d", tt.terminalHeight, got, tt.want)
			}
		})
	}
}

func TestCalculateViewportOffset(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		total    int
		height   int
		want     int
	}{
		{"fits entirely", 3, 5, 10, 0},
		{"near top", 1, 30, 10, 0},
		{"middle centres selection", 15, 30, 10, 10},
		{"near bottom clamps", 29, 30, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateViewportOffset(tt.selected, tt.total, tt.height)
			if got != tt.want {
				t.Errorf("CalculateViewportOffset(%d, %d, %d) = %d, want %d",
					tt.selected, tt.total, tt.height, got, tt.want)
			}
		})
	}
}
