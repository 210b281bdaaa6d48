package gui

import (
	"image"
	"testing"
)

func TestAnchorRectPicksEnteredLine(t *testing.T) {
	// Three wrapped lines of one link: first line indented, last line short.
	line1 := image.Rect(40, 10, 300, 28)
	line2 := image.Rect(0, 28, 260, 46)
	line3 := image.Rect(0, 46, 120, 64)
	fallback := line1.Union(line2).Union(line3)

	// (130, 37) +-5 clears line1 vertically and line3 horizontally.
	entry := image.Pt(130, 37)

	orders := [][]image.Rectangle{
		{line1, line2, line3},
		{line2, line1, line3},
		{line3, line1, line2},
		{line2, line3, line1},
	}
	for i, rects := range orders {
		if got := AnchorRect(rects, entry, 5, fallback); got != line2 {
			t.Fatalf("order %d: expected second line %v, got %v", i, line2, got)
		}
	}
}

func TestAnchorRectFirstOverlapWins(t *testing.T) {
	a := image.Rect(0, 0, 100, 20)
	b := image.Rect(0, 20, 100, 40)
	fallback := a.Union(b)

	// On the shared edge both rectangles overlap the region.
	entry := image.Pt(50, 20)
	if got := AnchorRect([]image.Rectangle{a, b}, entry, 5, fallback); got != a {
		t.Fatalf("expected first candidate %v, got %v", a, got)
	}
	if got := AnchorRect([]image.Rectangle{b, a}, entry, 5, fallback); got != b {
		t.Fatalf("expected first candidate %v, got %v", b, got)
	}
}

func TestAnchorRectClosedEdges(t *testing.T) {
	r := image.Rect(20, 20, 40, 30)
	fallback := image.Rect(0, 0, 200, 200)

	// Region [40,50]x[10,20] only touches r's corner at (40, 20).
	if got := AnchorRect([]image.Rectangle{r}, image.Pt(45, 15), 5, fallback); got != r {
		t.Fatalf("expected corner touch to match, got %v", got)
	}
	// One past the corner misses.
	if got := AnchorRect([]image.Rectangle{r}, image.Pt(46, 15), 5, fallback); got != fallback {
		t.Fatalf("expected fallback past the corner, got %v", got)
	}
}

func TestAnchorRectZeroTolerance(t *testing.T) {
	r := image.Rect(10, 10, 50, 30)
	fallback := image.Rect(0, 0, 100, 100)
	if got := AnchorRect([]image.Rectangle{r}, image.Pt(50, 30), 0, fallback); got != r {
		t.Fatalf("expected closed max-edge hit, got %v", got)
	}
	if got := AnchorRect([]image.Rectangle{r}, image.Pt(51, 30), 0, fallback); got != fallback {
		t.Fatalf("expected fallback outside rect, got %v", got)
	}
}

func TestAnchorRectFallback(t *testing.T) {
	fallback := image.Rect(5, 5, 80, 25)
	if got := AnchorRect(nil, image.Pt(10, 10), 5, fallback); got != fallback {
		t.Fatalf("expected fallback for zero rects, got %v", got)
	}
	far := []image.Rectangle{image.Rect(500, 500, 600, 520)}
	if got := AnchorRect(far, image.Pt(10, 10), 5, fallback); got != fallback {
		t.Fatalf("expected fallback when nothing overlaps, got %v", got)
	}
}
