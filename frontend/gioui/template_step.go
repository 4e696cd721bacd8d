package gioui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/scorecraft/scorecraft"
)

// TemplateStep lays out the template chooser. The General group can be
// folded; the other options are always shown.
type TemplateStep struct {
	list    widget.List
	general GroupHeader
	options map[string]*ActionButton
}

func NewTemplateStep() *TemplateStep {
	return &TemplateStep{
		list:    widget.List{List: layout.List{Axis: layout.Vertical}},
		options: map[string]*ActionButton{},
	}
}

func (s *TemplateStep) button(name string) *ActionButton {
	b, ok := s.options[name]
	if !ok {
		b = new(ActionButton)
		s.options[name] = b
	}
	return b
}

func (s *TemplateStep) Layout(gtx C, t *ScoreCraft) D {
	tm := t.Template()
	var rows []layout.Widget
	for _, group := range tm.Groups() {
		options := tm.Options(group)
		if group == scorecraft.GeneralGroup {
			rows = append(rows, func(gtx C) D {
				return s.general.Layout(gtx, t.Theme, tm.Expanded(), group)
			})
			if !tm.Expanded().Value() {
				continue
			}
		} else {
			rows = append(rows, func(gtx C) D {
				return layout.Inset{Top: unit.Dp(12), Bottom: unit.Dp(4)}.Layout(gtx, func(gtx C) D {
					l := material.Subtitle1(&t.Theme.Material, group)
					l.Color = highEmphasisTextColor
					return l.Layout(gtx)
				})
			})
		}
		rows = append(rows, func(gtx C) D {
			return grid(gtx, len(options), 3, func(gtx C, i int) D {
				name := options[i].Name
				style := FlatButton(name)
				if name == tm.Chosen() {
					style = PrimaryButton(name, "")
					style.Background = chosenSurfaceColor
				}
				return s.button(name).Layout(gtx, t.Theme, tm.Choose(name), style)
			})
		})
	}
	return material.List(&t.Theme.Material, &s.list).Layout(gtx, len(rows), func(gtx C, i int) D {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return rows[i](gtx)
	})
}
