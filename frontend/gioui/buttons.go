package gioui

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"github.com/scorecraft/scorecraft/frontend"
)

type (
	// ActionButton binds a clickable to a frontend.Action. The Action is
	// rebound every frame, as actions carrying e.g. an instrument name are
	// created on the fly.
	ActionButton struct {
		Clickable widget.Clickable
		Tip       component.TipArea
	}

	ActionButtonStyle struct {
		Text       string
		Tooltip    string
		Background color.NRGBA
		Color      color.NRGBA
		Flat       bool
	}
)

// Update performs the action once for every click since the last frame.
func (b *ActionButton) Update(gtx C, action frontend.Action) {
	for b.Clickable.Clicked(gtx) {
		action.Do()
	}
}

func (b *ActionButton) Layout(gtx C, th *Theme, action frontend.Action, style ActionButtonStyle) D {
	b.Update(gtx, action)
	bg, fg := style.Background, style.Color
	if fg == (color.NRGBA{}) {
		fg = white
	}
	if !action.Enabled() {
		gtx = gtx.Disabled()
		if !style.Flat {
			bg = disabledButtonColor
		}
		fg = disabledTextColor
	}
	btn := material.Button(&th.Material, &b.Clickable, style.Text)
	btn.Background = bg
	btn.Color = fg
	btn.CornerRadius = cornerRadius
	if style.Flat {
		btn.Inset = layout.UniformInset(unit.Dp(6))
	}
	if style.Tooltip == "" {
		return btn.Layout(gtx)
	}
	return b.Tip.Layout(gtx, component.PlatformTooltip(&th.Material, style.Tooltip), btn.Layout)
}

// PrimaryButton, CancelButton and FlatButton are the three button looks of the
// wizard: filled blue, filled red, and text only.
func PrimaryButton(text, tooltip string) ActionButtonStyle {
	return ActionButtonStyle{Text: text, Tooltip: tooltip, Background: primaryColor}
}

func CancelButton(text, tooltip string) ActionButtonStyle {
	return ActionButtonStyle{Text: text, Tooltip: tooltip, Background: cancelColor}
}

func FlatButton(text string) ActionButtonStyle {
	return ActionButtonStyle{Text: text, Color: highEmphasisTextColor, Flat: true}
}

// IconButton lays out an icon that performs action when clicked.
func IconButton(gtx C, th *Theme, b *ActionButton, action frontend.Action, icon []byte, description string) D {
	b.Update(gtx, action)
	fg := highEmphasisTextColor
	if !action.Enabled() {
		gtx = gtx.Disabled()
		fg = disabledTextColor
	}
	btn := material.IconButton(&th.Material, &b.Clickable, widgetForIcon(icon), description)
	btn.Background = transparent
	btn.Color = fg
	btn.Size = unit.Dp(16)
	btn.Inset = layout.UniformInset(unit.Dp(4))
	return btn.Layout(gtx)
}

var transparent = color.NRGBA{}

// rounded fills the area of w with a rounded rectangle of the given color.
func rounded(gtx C, bg color.NRGBA, inset layout.Inset, w layout.Widget) D {
	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			rect := image.Rectangle{Max: gtx.Constraints.Min}
			paint.FillShape(gtx.Ops, bg, clip.UniformRRect(rect, gtx.Dp(cornerRadius)).Op(gtx.Ops))
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D { return inset.Layout(gtx, w) },
	)
}
