package attachment

import (
	"fmt"
	"path"
	"strings"

	"gioui.org/layout"
	"github.com/bmatcuk/doublestar/v4"
)

// Kind identifies the render branch an attachment resolves to.
type Kind int

const (
	KindIcon Kind = iota
	KindDocument
	KindImage
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindIcon:
		return "icon"
	case KindDocument:
		return "document"
	case KindImage:
		return "image"
	case KindFile:
		return "file"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IconRenderer draws a vector icon inside a square of the given pixel size.
type IconRenderer func(gtx layout.Context, sizePx int) layout.Dimensions

// File carries attachment metadata. Every field is optional; an absent file
// behaves as a File with an empty name.
type File struct {
	Name      string
	Size      int64
	MediaType string
}

// Source is the classified origin of an attachment. It is built exactly once,
// where the raw source enters the system; render code switches on Kind and
// never re-inspects names or URLs.
type Source struct {
	kind Kind
	url  string
	icon IconRenderer
}

func (s Source) Kind() Kind { return s.kind }

// URL returns the remote URL for the document, image and file kinds.
func (s Source) URL() (string, bool) {
	if s.kind == KindIcon {
		return "", false
	}
	return s.url, true
}

// Icon returns the renderer for the icon kind.
func (s Source) Icon() (IconRenderer, bool) {
	if s.kind != KindIcon || s.icon == nil {
		return nil, false
	}
	return s.icon, true
}

// Attachment pairs a classified source with its file metadata.
type Attachment struct {
	ID     string
	File   File
	Source Source
}

// Classifier decides render branches from file extensions. Matching is
// case-insensitive on the base name, query strings and fragments excluded.
// Unrecognized and missing extensions fall through to KindFile.
type Classifier struct {
	document []string
	image    []string
}

// NewClassifier validates both pattern sets. The sets must not share a
// pattern: branch selection is ordered, and an overlap would make the result
// depend on that order rather than on the name.
func NewClassifier(documentPatterns, imagePatterns []string) (*Classifier, error) {
	doc, err := normalizePatterns(documentPatterns)
	if err != nil {
		return nil, fmt.Errorf("document patterns: %w", err)
	}
	img, err := normalizePatterns(imagePatterns)
	if err != nil {
		return nil, fmt.Errorf("image patterns: %w", err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("document patterns: none given")
	}
	if len(img) == 0 {
		return nil, fmt.Errorf("image patterns: none given")
	}
	seen := make(map[string]bool, len(doc))
	for _, p := range doc {
		seen[p] = true
	}
	for _, p := range img {
		if seen[p] {
			return nil, fmt.Errorf("document and image patterns overlap on %q", p)
		}
	}
	return &Classifier{document: doc, image: img}, nil
}

func normalizePatterns(patterns []string) ([]string, error) {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid pattern %q", p)
		}
		out = append(out, p)
	}
	return out, nil
}

// Default returns the stock classifier: PDF documents and the raster image
// formats the image viewer can decode.
func Default() *Classifier {
	c, err := NewClassifier(
		[]string{"*.pdf"},
		[]string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.webp"},
	)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Classifier) IsDocument(name string) bool { return matchAny(c.document, name) }

func (c *Classifier) IsImage(name string) bool { return matchAny(c.image, name) }

func matchAny(patterns []string, name string) bool {
	base := baseName(name)
	if base == "" {
		return false
	}
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}
	return false
}

func baseName(name string) string {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return ""
	}
	return strings.ToLower(path.Base(name))
}

// Source classifies a raw attachment origin. A non-nil icon renderer wins
// unconditionally; otherwise the URL and the file name are both consulted,
// documents before images, and anything unmatched is a plain file.
func (c *Classifier) Source(url string, icon IconRenderer, file File) Source {
	if icon != nil {
		return Source{kind: KindIcon, icon: icon}
	}
	if c.IsDocument(url) || c.IsDocument(file.Name) {
		return Source{kind: KindDocument, url: url}
	}
	if c.IsImage(url) || c.IsImage(file.Name) {
		return Source{kind: KindImage, url: url}
	}
	return Source{kind: KindFile, url: url}
}

// IconSource wraps a renderer directly, for callers that never had a URL.
func IconSource(icon IconRenderer) Source {
	return Source{kind: KindIcon, icon: icon}
}
