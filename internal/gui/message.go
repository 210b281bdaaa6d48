package gui

import (
	"strings"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/wrenware/natter/internal/chat"
)

type flowItem struct {
	text string
	link bool
}

// linkRange ties one link's tooltip area to the flow items its text wrapped
// into, so the anchor can resolve against the hovered fragment. i and j are
// the first and last item, inclusive.
type linkRange struct {
	area *TooltipArea
	i, j int
}

// MessageView renders one chat message: a header line, the flowed body with
// hoverable links, and the attachment views below it.
type MessageView struct {
	msg   chat.Message
	items []flowItem
	links []linkRange
	flow  Flow
	atts  []*AttachmentView
}

func NewMessageView(msg chat.Message, atts []*AttachmentView) *MessageView {
	m := &MessageView{
		msg:  msg,
		atts: atts,
		flow: Flow{HGap: unit.Dp(4), VGap: unit.Dp(2)},
	}
	for _, seg := range msg.Segments {
		if seg.LinkURL != "" {
			text := seg.Text
			if text == "" {
				text = seg.LinkURL
			}
			start := len(m.items)
			for _, part := range splitURL(text) {
				m.items = append(m.items, flowItem{text: part, link: true})
			}
			area := NewTooltipArea(nil, new(HoverRegion))
			area.Tip.Text = seg.LinkURL
			m.links = append(m.links, linkRange{area: area, i: start, j: len(m.items) - 1})
			continue
		}
		for _, word := range strings.Fields(seg.Text) {
			m.items = append(m.items, flowItem{text: word})
		}
	}
	return m
}

// ApplyTooltipStyle restyles the link tooltips; text is left alone.
func (m *MessageView) ApplyTooltipStyle(s TooltipStyle) {
	for _, l := range m.links {
		s.apply(l.area)
	}
}

func (m *MessageView) Layout(gtx C, th *material.Theme) D {
	children := []layout.FlexChild{
		layout.Rigid(func(gtx C) D { return m.layoutHeader(gtx, th) }),
	}
	if len(m.items) > 0 {
		children = append(children,
			layout.Rigid(layout.Spacer{Height: unit.Dp(2)}.Layout),
			layout.Rigid(func(gtx C) D { return m.layoutBody(gtx, th) }),
		)
	}
	for _, av := range m.atts {
		children = append(children,
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx C) D { return av.Layout(gtx, th) }),
		)
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (m *MessageView) layoutHeader(gtx C, th *material.Theme) D {
	name := material.Body2(th, m.msg.Author.Name)
	name.Font.Weight = font.Bold
	stamp := material.Caption(th, m.msg.SentAt.Format("15:04"))
	stamp.Color = colMuted
	return layout.Flex{Alignment: layout.Baseline}.Layout(gtx,
		layout.Rigid(name.Layout),
		layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		layout.Rigid(stamp.Layout),
	)
}

// layoutBody nests every link's tooltip area around the single flow, so each
// area sees the flow's rects in its own coordinate space.
func (m *MessageView) layoutBody(gtx C, th *material.Theme) D {
	inner := func(gtx C) D {
		return m.flow.Layout(gtx, len(m.items), func(gtx C, i int) D {
			it := m.items[i]
			lbl := material.Body1(th, it.text)
			if it.link {
				lbl.Color = colLink
			}
			return lbl.Layout(gtx)
		})
	}
	for i := len(m.links) - 1; i >= 0; i-- {
		link := m.links[i]
		next := inner
		inner = func(gtx C) D {
			return link.area.Layout(gtx, th, Span{Flow: &m.flow, I: link.i, J: link.j}, next)
		}
	}
	return inner(gtx)
}

// splitURL breaks a URL into wrappable pieces, after each slash past the
// scheme, so a long link can flow across lines.
func splitURL(s string) []string {
	scheme := ""
	if i := strings.Index(s, "://"); i >= 0 {
		scheme, s = s[:i+3], s[i+3:]
	}
	parts := strings.SplitAfter(s, "/")
	out := make([]string, 0, len(parts))
	for i, p := range parts {
		if i == 0 {
			p = scheme + p
		}
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{scheme + s}
	}
	return out
}
