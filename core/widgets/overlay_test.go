package widgets

import (
	"strings"
	"testing"
)

func testBase(rows int) string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat("b", 20)
	}
	return strings.Join(lines, "\n")
}

func TestRenderPopupKeepsBaseDimensions(t *testing.T) {
	out := RenderPopup(testBase(9), "Popup", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
}

func TestRenderSheetFullyOpenCoversBottom(t *testing.T) {
	out := RenderSheet(testBase(12), "SHEET", 20, 12, 0, 1)
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("line count = %d, want 12", len(lines))
	}
	if !strings.Contains(out, "SHEET") {
		t.Fatalf("expected sheet content in output")
	}
	bottom := strings.Join(lines[len(lines)-3:], "\n")
	if !strings.Contains(bottom, "SHEET") {
		t.Fatalf("sheet should sit at the bottom, got %q", bottom)
	}
}

func TestRenderSheetOffsetPushesOffScreen(t *testing.T) {
	full := RenderSheet(testBase(12), "SHEET", 20, 12, 0, 1)
	gone := RenderSheet(testBase(12), "SHEET", 20, 12, 12, 0)
	if !strings.Contains(full, "SHEET") {
		t.Fatalf("open sheet should be visible")
	}
	if strings.Contains(gone, "SHEET") {
		t.Fatalf("fully offset sheet should be clipped off screen")
	}
}

func TestDimBackdropOnlyAboveHalfOpacity(t *testing.T) {
	base := testBase(3)
	if got := dimBackdrop(base, 0.2); got != base {
		t.Fatalf("low opacity should leave the base untouched")
	}
	if got := dimBackdrop(base, 0.9); got == base {
		t.Fatalf("high opacity should restyle the base")
	}
}

func TestBoxRendersTitleAndContent(t *testing.T) {
	out := Box{Title: "Games", Content: "one\ntwo"}.Render(24, 0)
	if !strings.Contains(out, "Games") || !strings.Contains(out, "two") {
		t.Fatalf("box missing content: %q", out)
	}
}
