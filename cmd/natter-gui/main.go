package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/wrenware/natter/internal/attachment"
	"github.com/wrenware/natter/internal/authurl"
	"github.com/wrenware/natter/internal/chat"
	"github.com/wrenware/natter/internal/config"
	"github.com/wrenware/natter/internal/gui"
	"github.com/wrenware/natter/internal/version"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

type guiApp struct {
	theme *material.Theme
	ops   op.Ops

	window *app.Window
	list   widget.List

	msgs []*gui.MessageView
}

func main() {
	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("natter"),
			app.Size(unit.Dp(520), unit.Dp(720)),
		)
		if err := run(w); err != nil {
			log.Printf("natter-gui: %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	model, err := newGuiApp(cfg, w)
	if err != nil {
		return err
	}

	for {
		e := w.Event()
		switch e := e.(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&model.ops, e)
			model.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func loadConfig() (config.File, error) {
	if path := strings.TrimSpace(os.Getenv("NATTER_GUI_CONFIG")); path != "" {
		return config.Load(path)
	}
	return config.Default(), nil
}

func authSecret() string {
	if v := strings.TrimSpace(os.Getenv("NATTER_AUTH_SECRET")); v != "" {
		return v
	}
	return "natter-sample-secret"
}

func newGuiApp(cfg config.File, w *app.Window) (*guiApp, error) {
	classifier, err := attachment.NewClassifier(cfg.Attachments.DocumentPatterns, cfg.Attachments.ImagePatterns)
	if err != nil {
		return nil, err
	}
	signer, err := authurl.NewSigner([]byte(authSecret()), cfg.Auth.TTL())
	if err != nil {
		return nil, err
	}

	sample := chat.NewSample(classifier, gui.ContactIcon)
	loader := sampleLoader(sample.Blobs, signer)
	style := gui.TooltipStyle{
		Tolerance: unit.Dp(cfg.Tooltip.ToleranceDp),
		MaxWidth:  unit.Dp(cfg.Tooltip.MaxWidthDp),
		Gap:       unit.Dp(cfg.Tooltip.GapDp),
		Margin:    unit.Dp(cfg.Tooltip.MarginDp),
	}

	m := &guiApp{theme: material.NewTheme(), window: w}
	m.list.Axis = layout.Vertical

	for _, msg := range sample.Messages {
		var atts []*gui.AttachmentView
		for _, att := range msg.Attachments {
			av := gui.NewAttachmentView(att, gui.AttachmentOptions{
				AuthRequired:     true,
				ShowDownloadIcon: !cfg.Attachments.HideDownloadIcon,
				Signer:           signer,
				Loader:           loader,
				Invalidate:       w.Invalidate,
				OnPress: func() {
					log.Printf("attachment pressed: %s", att.File.Name)
				},
				OnScaleChanged: func(s float32) {
					log.Printf("document scale: %.2f", s)
				},
				OnToggleKeyboard: func() {
					log.Printf("keyboard shortcuts toggled")
				},
			})
			av.ApplyTooltipStyle(style)
			atts = append(atts, av)
		}
		mv := gui.NewMessageView(msg, atts)
		mv.ApplyTooltipStyle(style)
		m.msgs = append(m.msgs, mv)
	}
	return m, nil
}

// sampleLoader serves the built-in attachment bytes, checking the auth token
// the way a file host would before handing out the blob. The delay keeps the
// loading states visible.
func sampleLoader(blobs map[string][]byte, signer *authurl.Signer) gui.BlobLoader {
	return func(url string) ([]byte, error) {
		time.Sleep(600 * time.Millisecond)

		raw := url
		if i := strings.IndexByte(raw, '?'); i >= 0 {
			if err := signer.Verify(url); err != nil {
				return nil, err
			}
			raw = raw[:i]
		}
		data, ok := blobs[raw]
		if !ok {
			return nil, fmt.Errorf("no blob for %q", raw)
		}
		return data, nil
	}
}

func (m *guiApp) layout(gtx C) D {
	in := layout.UniformInset(unit.Dp(16))
	return in.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				label := material.H5(m.theme, "natter")
				return label.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(2)}.Layout),
			layout.Rigid(func(gtx C) D {
				lbl := material.Body2(m.theme, "Sample conversation ("+version.Current()+")")
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Flexed(1, func(gtx C) D {
				return material.List(m.theme, &m.list).Layout(gtx, len(m.msgs), func(gtx C, i int) D {
					return layout.Inset{Bottom: unit.Dp(14)}.Layout(gtx, func(gtx C) D {
						return m.msgs[i].Layout(gtx, m.theme)
					})
				})
			}),
		)
	})
}
