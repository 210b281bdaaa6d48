package gui

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/wrenware/natter/internal/authurl"
)

const imageMaxHeight = unit.Dp(240)

// imageCache holds decoded images process-wide; transcripts repeat the same
// attachment across frames and views. Keys are raw attachment URLs, never
// decorated ones.
var imageCache = mustImageCache(64)

func mustImageCache(size int) *lru.Cache[string, paint.ImageOp] {
	c, err := lru.New[string, paint.ImageOp](size)
	if err != nil {
		panic(err)
	}
	return c
}

// ImageView renders an inline image attachment, fetching and decoding it on
// a background goroutine. When AuthRequired is set the URL is decorated at
// fetch time; display state never holds the decorated form.
type ImageView struct {
	URL          string
	AuthRequired bool
	// Invalidate wakes the window when the background load finishes.
	Invalidate func()

	signer *authurl.Signer
	loader BlobLoader

	mu    sync.Mutex
	phase loadPhase
	src   paint.ImageOp
	err   error
}

func NewImageView(url string, authRequired bool, signer *authurl.Signer, loader BlobLoader) *ImageView {
	return &ImageView{URL: url, AuthRequired: authRequired, signer: signer, loader: loader}
}

func (v *ImageView) Layout(gtx C, th *material.Theme) D {
	v.startLoad()

	v.mu.Lock()
	phase, src, err := v.phase, v.src, v.err
	v.mu.Unlock()

	switch phase {
	case loadReady:
		if limit := gtx.Dp(imageMaxHeight); gtx.Constraints.Max.Y > limit {
			gtx.Constraints.Max.Y = limit
		}
		img := widget.Image{Src: src, Fit: widget.Contain, Position: layout.Center}
		return img.Layout(gtx)
	case loadFailed:
		return v.layoutFailed(gtx, th, err)
	default:
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				gtx.Constraints.Min = image.Pt(gtx.Dp(20), gtx.Dp(20))
				gtx.Constraints.Max = gtx.Constraints.Min
				return material.Loader(th).Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx C) D {
				lbl := material.Body2(th, "Loading image")
				lbl.Color = colMuted
				return lbl.Layout(gtx)
			}),
		)
	}
}

func (v *ImageView) layoutFailed(gtx C, th *material.Theme, err error) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layoutIcon(gtx, iconBroken, gtx.Dp(20), colDanger)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			lbl := material.Body2(th, fmt.Sprintf("Could not load image: %v", err))
			lbl.Color = colDanger
			return lbl.Layout(gtx)
		}),
	)
}

func (v *ImageView) startLoad() {
	v.mu.Lock()
	if v.phase != loadIdle {
		v.mu.Unlock()
		return
	}
	if src, ok := imageCache.Get(v.URL); ok {
		v.phase = loadReady
		v.src = src
		v.mu.Unlock()
		return
	}
	v.phase = loadBusy
	v.mu.Unlock()
	go v.load()
}

func (v *ImageView) load() {
	src, err := fetchImage(v.loader, v.fetchURL())

	v.mu.Lock()
	if err != nil {
		v.phase = loadFailed
		v.err = err
	} else {
		v.phase = loadReady
		v.src = src
		imageCache.Add(v.URL, src)
	}
	v.mu.Unlock()

	if err != nil {
		slog.Warn("image load failed", "url", v.URL, "err", err)
	}
	if v.Invalidate != nil {
		v.Invalidate()
	}
}

// fetchURL applies auth decoration at fetch time only.
func (v *ImageView) fetchURL() string {
	if v.AuthRequired && v.signer != nil {
		return v.signer.Decorate(v.URL)
	}
	return v.URL
}

func fetchImage(loader BlobLoader, url string) (paint.ImageOp, error) {
	if loader == nil {
		return paint.ImageOp{}, fmt.Errorf("no loader for %q", url)
	}
	data, err := loader(url)
	if err != nil {
		return paint.ImageOp{}, fmt.Errorf("fetch image %q: %w", url, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return paint.ImageOp{}, fmt.Errorf("decode image %q: %w", url, err)
	}
	return paint.NewImageOp(img), nil
}
