package gioui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/scorecraft/scorecraft/version"
)

// Landing is the screen under the wizard, offering to create or open a score.
type Landing struct {
	createBtn ActionButton
	openBtn   ActionButton
}

func (l *Landing) Layout(gtx C, t *ScoreCraft) D {
	th := &t.Theme.Material
	return layout.Center.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				h := material.H4(th, "ScoreCraft")
				h.Color = highEmphasisTextColor
				return h.Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				v := version.VersionOrHash
				if v == "" {
					return D{}
				}
				c := material.Caption(th, v)
				c.Color = mediumEmphasisTextColor
				return c.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(24)}.Layout),
			layout.Rigid(func(gtx C) D {
				return l.createBtn.Layout(gtx, t.Theme, t.Wizard().Create(), PrimaryButton("Create Score", "Start the new score wizard"))
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx C) D {
				return l.openBtn.Layout(gtx, t.Theme, t.Wizard().OpenScore(), PrimaryButton("Open Score", "Opening scores is not available yet"))
			}),
		)
	})
}
