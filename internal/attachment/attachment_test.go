package attachment

import (
	"strings"
	"testing"

	"gioui.org/layout"
)

func testIcon(gtx layout.Context, sizePx int) layout.Dimensions {
	return layout.Dimensions{}
}

func TestIconWinsOverEverything(t *testing.T) {
	c := Default()
	src := c.Source("https://example.com/report.pdf", testIcon, File{Name: "photo.png"})
	if src.Kind() != KindIcon {
		t.Fatalf("expected icon kind, got %q", src.Kind())
	}
	if _, ok := src.URL(); ok {
		t.Fatalf("expected no URL on icon source")
	}
	if _, ok := src.Icon(); !ok {
		t.Fatalf("expected renderer on icon source")
	}
}

func TestDocumentByURL(t *testing.T) {
	c := Default()
	src := c.Source("https://example.com/files/report.pdf", nil, File{})
	if src.Kind() != KindDocument {
		t.Fatalf("expected document kind, got %q", src.Kind())
	}
	url, ok := src.URL()
	if !ok || url != "https://example.com/files/report.pdf" {
		t.Fatalf("expected original URL back, got %q ok=%v", url, ok)
	}
}

func TestDocumentByFileName(t *testing.T) {
	c := Default()
	src := c.Source("https://example.com/blob/9f31c2", nil, File{Name: "report.pdf"})
	if src.Kind() != KindDocument {
		t.Fatalf("expected document kind from file name, got %q", src.Kind())
	}
}

func TestDocumentBeatsImageName(t *testing.T) {
	c := Default()
	src := c.Source("https://example.com/scan.pdf", nil, File{Name: "scan.png"})
	if src.Kind() != KindDocument {
		t.Fatalf("expected document to win branch order, got %q", src.Kind())
	}
}

func TestImageByName(t *testing.T) {
	c := Default()
	for _, name := range []string{"photo.png", "photo.jpg", "photo.jpeg", "anim.gif", "old.bmp", "new.webp"} {
		src := c.Source("https://example.com/blob/1", nil, File{Name: name})
		if src.Kind() != KindImage {
			t.Fatalf("expected image kind for %q, got %q", name, src.Kind())
		}
	}
}

func TestUnrecognizedFallsThrough(t *testing.T) {
	c := Default()
	for _, name := range []string{"notes.txt", "README", "archive.tar.gz", "", "weird.pdf.bak"} {
		src := c.Source("https://example.com/blob/2", nil, File{Name: name})
		if src.Kind() != KindFile {
			t.Fatalf("expected file kind for %q, got %q", name, src.Kind())
		}
	}
}

func TestMatchingIsCaseInsensitive(t *testing.T) {
	c := Default()
	if got := c.Source("https://example.com/REPORT.PDF", nil, File{}); got.Kind() != KindDocument {
		t.Fatalf("expected document for uppercase URL, got %q", got.Kind())
	}
	if got := c.Source("", nil, File{Name: "PHOTO.PNG"}); got.Kind() != KindImage {
		t.Fatalf("expected image for uppercase name, got %q", got.Kind())
	}
}

func TestQueryAndFragmentIgnored(t *testing.T) {
	c := Default()
	src := c.Source("https://example.com/d.pdf?authToken=abc#page=2", nil, File{})
	if src.Kind() != KindDocument {
		t.Fatalf("expected document with query string present, got %q", src.Kind())
	}
}

func TestNewClassifierRejectsOverlap(t *testing.T) {
	_, err := NewClassifier([]string{"*.pdf", "*.png"}, []string{"*.png"})
	if err == nil {
		t.Fatalf("expected overlap error")
	}
	if !strings.Contains(err.Error(), "overlap") {
		t.Fatalf("expected overlap in error, got %q", err.Error())
	}
}

func TestNewClassifierRejectsInvalidPattern(t *testing.T) {
	_, err := NewClassifier([]string{"[.pdf"}, []string{"*.png"})
	if err == nil {
		t.Fatalf("expected invalid pattern error")
	}
	if !strings.Contains(err.Error(), "invalid pattern") {
		t.Fatalf("expected invalid pattern in error, got %q", err.Error())
	}
}

func TestNewClassifierRejectsEmptySets(t *testing.T) {
	if _, err := NewClassifier(nil, []string{"*.png"}); err == nil {
		t.Fatalf("expected error for empty document set")
	}
	if _, err := NewClassifier([]string{"*.pdf"}, []string{" ", ""}); err == nil {
		t.Fatalf("expected error for blank image set")
	}
}

func TestIconSource(t *testing.T) {
	src := IconSource(testIcon)
	if src.Kind() != KindIcon {
		t.Fatalf("expected icon kind, got %q", src.Kind())
	}
}
