package gioui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/scorecraft/scorecraft"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// KeyStep lays out the key signature chooser: the current key with buttons to
// move around the circle of fifths, a grid of all keys and a minor checkbox.
type KeyStep struct {
	flatter ActionButton
	sharper ActionButton
	keys    [scorecraft.MaxFifths - scorecraft.MinFifths + 1]widget.Clickable
	minor   widget.Bool
}

func NewKeyStep() *KeyStep {
	return &KeyStep{}
}

func (s *KeyStep) Layout(gtx C, t *ScoreCraft) D {
	km := t.Key()
	th := &t.Theme.Material
	s.minor.Value = km.Minor().Value()
	if s.minor.Update(gtx) {
		km.Minor().SetValue(s.minor.Value)
	}
	for i := range s.keys {
		for s.keys[i].Clicked(gtx) {
			km.Fifths().SetValue(scorecraft.MinFifths + i)
		}
	}
	sig := km.Signature()
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.Center.Layout(gtx, func(gtx C) D {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						return IconButton(gtx, t.Theme, &s.flatter, km.Shift(-1), icons.ContentRemove, "One more flat")
					}),
					layout.Rigid(func(gtx C) D {
						return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
							return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
								layout.Rigid(func(gtx C) D {
									h := material.H4(th, sig.String())
									h.Color = highEmphasisTextColor
									return h.Layout(gtx)
								}),
								layout.Rigid(func(gtx C) D {
									c := material.Caption(th, sig.Accidentals()+", relative "+sig.Relative().String())
									c.Color = mediumEmphasisTextColor
									return c.Layout(gtx)
								}),
							)
						})
					}),
					layout.Rigid(func(gtx C) D {
						return IconButton(gtx, t.Theme, &s.sharper, km.Shift(1), icons.ContentAdd, "One more sharp")
					}),
				)
			})
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx C) D {
			return grid(gtx, len(s.keys), 5, func(gtx C, i int) D {
				fifths := scorecraft.MinFifths + i
				btn := material.Button(th, &s.keys[i], km.Fifths().StringOf(fifths))
				btn.CornerRadius = cornerRadius
				btn.Background = groupSurfaceColor
				btn.Color = highEmphasisTextColor
				if fifths == sig.Fifths {
					btn.Background = chosenSurfaceColor
				}
				return btn.Layout(gtx)
			})
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx C) D {
			cb := material.CheckBox(th, &s.minor, "Minor")
			cb.Color = highEmphasisTextColor
			cb.IconColor = primaryColor
			return cb.Layout(gtx)
		}),
	)
}
