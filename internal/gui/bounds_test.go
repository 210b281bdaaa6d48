package gui

import (
	"image"
	"testing"
)

func TestBoundsWatcherFiresOnChangeOnly(t *testing.T) {
	var fired []image.Rectangle
	w := BoundsWatcher{Enabled: true, OnChange: func(r image.Rectangle) { fired = append(fired, r) }}

	r1 := image.Rect(0, 0, 10, 10)
	r2 := image.Rect(0, 5, 10, 15)

	w.Update(r1)
	w.Update(r1)
	w.Update(r2)
	w.Update(r2)

	if len(fired) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(fired))
	}
	if fired[0] != r1 || fired[1] != r2 {
		t.Fatalf("unexpected notifications: %v", fired)
	}
}

func TestBoundsWatcherDisabled(t *testing.T) {
	count := 0
	w := BoundsWatcher{OnChange: func(image.Rectangle) { count++ }}

	w.Update(image.Rect(0, 0, 10, 10))
	if count != 0 {
		t.Fatalf("expected no notification while disabled, got %d", count)
	}

	w.Enabled = true
	w.Update(image.Rect(0, 0, 10, 10))
	if count != 1 {
		t.Fatalf("expected first enabled update to fire, got %d", count)
	}

	w.Enabled = false
	w.Update(image.Rect(0, 0, 20, 20))
	if count != 1 {
		t.Fatalf("expected no notification after disabling, got %d", count)
	}

	// Re-enabling reports afresh even for an unchanged rectangle.
	w.Enabled = true
	w.Update(image.Rect(0, 0, 20, 20))
	if count != 2 {
		t.Fatalf("expected fresh notification after re-enable, got %d", count)
	}
}

func TestBoundsWatcherNilCallback(t *testing.T) {
	w := BoundsWatcher{Enabled: true}
	w.Update(image.Rect(0, 0, 1, 1))
}
