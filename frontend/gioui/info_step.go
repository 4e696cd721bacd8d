package gioui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// InfoStep lays out the score information form: one editor per field.
type InfoStep struct {
	editors []*Editor
}

func NewInfoStep() *InfoStep {
	return &InfoStep{}
}

// Focus moves keyboard focus to the i:th field.
func (s *InfoStep) Focus(i int) {
	s.ensure(i + 1)
	s.editors[i].Focus()
}

func (s *InfoStep) ensure(n int) {
	for len(s.editors) < n {
		s.editors = append(s.editors, NewEditor())
	}
}

func (s *InfoStep) Layout(gtx C, t *ScoreCraft) D {
	fields := t.Info().Fields()
	s.ensure(len(fields))
	th := &t.Theme.Material
	children := make([]layout.FlexChild, 0, len(fields))
	for i, f := range fields {
		editor := s.editors[i]
		if editor.Update(gtx, f.Value) == EditorEventSubmit {
			if i+1 < len(fields) {
				s.editors[i+1].Focus()
			} else {
				t.Wizard().Next().Do()
			}
		}
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.Inset{Bottom: unit.Dp(12)}.Layout(gtx, func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						l := material.Caption(th, f.Label)
						l.Color = mediumEmphasisTextColor
						return l.Layout(gtx)
					}),
					layout.Rigid(func(gtx C) D {
						return rounded(gtx, groupSurfaceColor, layout.UniformInset(unit.Dp(8)), func(gtx C) D {
							gtx.Constraints.Min.X = gtx.Constraints.Max.X
							return editor.Layout(gtx, f.Value, t.Theme, f.Label)
						})
					}),
				)
			})
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}
