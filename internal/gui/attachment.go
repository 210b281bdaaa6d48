package gui

import (
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/dustin/go-humanize"

	"github.com/wrenware/natter/internal/attachment"
	"github.com/wrenware/natter/internal/authurl"
)

// BlobLoader fetches the bytes behind an attachment URL.
type BlobLoader func(url string) ([]byte, error)

// AttachmentOptions configures an AttachmentView. Nil callbacks are no-ops,
// and a nil Signer leaves URLs undecorated even when AuthRequired is set.
type AttachmentOptions struct {
	AuthRequired       bool
	ShowDownloadIcon   bool
	ShowLoadingSpinner bool

	Signer     *authurl.Signer
	Loader     BlobLoader
	Invalidate func()

	OnPress          func()
	OnScaleChanged   func(float32)
	OnToggleKeyboard func()
}

// AttachmentView renders a single attachment through exactly one of four
// branches, fixed at construction by the source's kind: icon, document,
// image or the generic file row. The whole view is pressable; once a
// document finishes loading the press surface goes inert for good.
type AttachmentView struct {
	att  attachment.Attachment
	opts AttachmentOptions

	click        widget.Clickable
	loadComplete bool

	doc        *DocView
	img        *ImageView
	spinnerTip *TooltipArea
}

func NewAttachmentView(att attachment.Attachment, opts AttachmentOptions) *AttachmentView {
	v := &AttachmentView{att: att, opts: opts}
	switch att.Source.Kind() {
	case attachment.KindDocument:
		url, _ := att.Source.URL()
		if opts.AuthRequired && opts.Signer != nil {
			url = opts.Signer.Decorate(url)
		}
		v.doc = NewDocView(url, opts.Loader)
		v.doc.Invalidate = opts.Invalidate
		v.doc.OnLoadComplete = v.handleLoadComplete
		v.doc.OnScaleChanged = opts.OnScaleChanged
		v.doc.OnToggleKeyboard = opts.OnToggleKeyboard
	case attachment.KindImage:
		url, _ := att.Source.URL()
		v.img = NewImageView(url, opts.AuthRequired, opts.Signer, opts.Loader)
		v.img.Invalidate = opts.Invalidate
	case attachment.KindFile:
		v.spinnerTip = NewTooltipArea(nil, new(HoverRegion))
		v.spinnerTip.Tip.Text = "Downloading " + att.File.Name
	}
	return v
}

// LoadComplete reports whether the document branch has finished loading.
func (v *AttachmentView) LoadComplete() bool { return v.loadComplete }

// ApplyTooltipStyle restyles the spinner tooltip on the generic file row.
func (v *AttachmentView) ApplyTooltipStyle(s TooltipStyle) {
	if v.spinnerTip != nil {
		s.apply(v.spinnerTip)
	}
}

// handleLoadComplete flips the one-way flag; repeated completion signals
// from the viewer are no-ops.
func (v *AttachmentView) handleLoadComplete() {
	if v.loadComplete {
		return
	}
	v.loadComplete = true
	if v.opts.Invalidate != nil {
		v.opts.Invalidate()
	}
}

func (v *AttachmentView) pressDisabled() bool {
	return v.att.Source.Kind() == attachment.KindDocument && v.loadComplete
}

func (v *AttachmentView) Layout(gtx C, th *material.Theme) D {
	for v.click.Clicked(gtx) {
		if !v.pressDisabled() && v.opts.OnPress != nil {
			v.opts.OnPress()
		}
	}
	if v.pressDisabled() {
		gtx = gtx.Disabled()
	}
	return material.Clickable(gtx, &v.click, func(gtx C) D {
		return v.layoutBranch(gtx, th)
	})
}

func (v *AttachmentView) layoutBranch(gtx C, th *material.Theme) D {
	switch v.att.Source.Kind() {
	case attachment.KindIcon:
		return v.layoutIconBranch(gtx)
	case attachment.KindDocument:
		return v.doc.Layout(gtx, th)
	case attachment.KindImage:
		return v.img.Layout(gtx, th)
	default:
		return v.layoutFileRow(gtx, th)
	}
}

const attachmentIconSize = unit.Dp(40)

func (v *AttachmentView) layoutIconBranch(gtx C) D {
	render, ok := v.att.Source.Icon()
	if !ok {
		return D{}
	}
	return render(gtx, gtx.Dp(attachmentIconSize))
}

func (v *AttachmentView) layoutFileRow(gtx C, th *material.Theme) D {
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return layoutIcon(gtx, iconPaperclip, gtx.Dp(24), colMuted)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Flexed(1, func(gtx C) D {
				return v.layoutFileMeta(gtx, th)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx C) D {
				return v.layoutIndicator(gtx, th)
			}),
		)
	})
}

func (v *AttachmentView) layoutFileMeta(gtx C, th *material.Theme) D {
	children := []layout.FlexChild{
		layout.Rigid(material.Body1(th, v.att.File.Name).Layout),
	}
	if v.att.File.Size > 0 {
		size := material.Body2(th, humanize.Bytes(uint64(v.att.File.Size)))
		size.Color = colMuted
		children = append(children,
			layout.Rigid(layout.Spacer{Height: unit.Dp(2)}.Layout),
			layout.Rigid(size.Layout),
		)
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

type indicatorKind int

const (
	indicatorNone indicatorKind = iota
	indicatorDownload
	indicatorSpinner
)

// indicator picks the right-hand slot of the file row. The spinner wins
// when both display flags are set; nothing shows when both are clear.
func (v *AttachmentView) indicator() indicatorKind {
	switch {
	case v.opts.ShowLoadingSpinner:
		return indicatorSpinner
	case v.opts.ShowDownloadIcon:
		return indicatorDownload
	}
	return indicatorNone
}

func (v *AttachmentView) layoutIndicator(gtx C, th *material.Theme) D {
	switch v.indicator() {
	case indicatorSpinner:
		return v.spinnerTip.Layout(gtx, th, nil, func(gtx C) D {
			gtx.Constraints.Min = image.Pt(gtx.Dp(20), gtx.Dp(20))
			gtx.Constraints.Max = gtx.Constraints.Min
			return material.Loader(th).Layout(gtx)
		})
	case indicatorDownload:
		return layoutIcon(gtx, iconDownload, gtx.Dp(24), colMuted)
	}
	return D{}
}
