package gioui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// InstrumentsStep lays out the instrument picker: a search field, the
// foldable instrument families and the tray of selected instruments.
type InstrumentsStep struct {
	search      *Editor
	families    widget.List
	tray        widget.List
	headers     map[string]*GroupHeader
	instruments map[string]*ActionButton
	chips       []ActionButton
	keyBtn      ActionButton
}

func NewInstrumentsStep() *InstrumentsStep {
	return &InstrumentsStep{
		search:      NewEditor(),
		families:    widget.List{List: layout.List{Axis: layout.Vertical}},
		tray:        widget.List{List: layout.List{Axis: layout.Horizontal}},
		headers:     map[string]*GroupHeader{},
		instruments: map[string]*ActionButton{},
	}
}

func (s *InstrumentsStep) header(family string) *GroupHeader {
	h, ok := s.headers[family]
	if !ok {
		h = new(GroupHeader)
		s.headers[family] = h
	}
	return h
}

func (s *InstrumentsStep) instrument(name string) *ActionButton {
	b, ok := s.instruments[name]
	if !ok {
		b = new(ActionButton)
		s.instruments[name] = b
	}
	return b
}

func (s *InstrumentsStep) Layout(gtx C, t *ScoreCraft) D {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D { return s.layoutSearch(gtx, t) }),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Flexed(1, func(gtx C) D { return s.layoutFamilies(gtx, t) }),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D { return s.layoutTray(gtx, t) }),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			return layout.E.Layout(gtx, func(gtx C) D {
				return s.keyBtn.Layout(gtx, t.Theme, t.Wizard().ChooseKeySignature(), PrimaryButton("Choose Key Signature", "Continue to the key signature"))
			})
		}),
	)
}

func (s *InstrumentsStep) layoutSearch(gtx C, t *ScoreCraft) D {
	return rounded(gtx, groupSurfaceColor, layout.UniformInset(unit.Dp(8)), func(gtx C) D {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Dp(20)
				return widgetForIcon(icons.ActionSearch).Layout(gtx, mediumEmphasisTextColor)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Flexed(1, func(gtx C) D {
				return s.search.Layout(gtx, t.Instruments().Search(), t.Theme, "Search instruments")
			}),
		)
	})
}

func (s *InstrumentsStep) layoutFamilies(gtx C, t *ScoreCraft) D {
	im := t.Instruments()
	searching := im.Search().Value() != ""
	var rows []layout.Widget
	for _, family := range im.VisibleFamilies() {
		expanded := im.Expanded(family)
		rows = append(rows, func(gtx C) D {
			return layout.Inset{Top: unit.Dp(4)}.Layout(gtx, func(gtx C) D {
				return s.header(family).Layout(gtx, t.Theme, expanded, family)
			})
		})
		if !expanded.Value() && !searching {
			continue
		}
		names := im.Visible(family)
		rows = append(rows, func(gtx C) D {
			return grid(gtx, len(names), 3, func(gtx C, i int) D {
				name := names[i]
				return s.instrument(name).Layout(gtx, t.Theme, im.Select(name), FlatButton(name))
			})
		})
	}
	if len(rows) == 0 {
		l := material.Body2(&t.Theme.Material, "No instruments match the search")
		l.Color = mediumEmphasisTextColor
		return l.Layout(gtx)
	}
	return material.List(&t.Theme.Material, &s.families).Layout(gtx, len(rows), func(gtx C, i int) D {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return rows[i](gtx)
	})
}

func (s *InstrumentsStep) layoutTray(gtx C, t *ScoreCraft) D {
	im := t.Instruments()
	selected := im.Selected()
	th := &t.Theme.Material
	if len(selected) == 0 {
		l := material.Body2(th, "No instruments selected")
		l.Color = mediumEmphasisTextColor
		return l.Layout(gtx)
	}
	for len(s.chips) < len(selected) {
		s.chips = append(s.chips, ActionButton{})
	}
	return material.List(th, &s.tray).Layout(gtx, len(selected), func(gtx C, i int) D {
		name := selected[i]
		return layout.Inset{Right: unit.Dp(6)}.Layout(gtx, func(gtx C) D {
			return rounded(gtx, chipColor, layout.Inset{Left: unit.Dp(10), Right: unit.Dp(2), Top: unit.Dp(2), Bottom: unit.Dp(2)}, func(gtx C) D {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						l := material.Body2(th, name)
						l.Color = highEmphasisTextColor
						return l.Layout(gtx)
					}),
					layout.Rigid(func(gtx C) D {
						return IconButton(gtx, t.Theme, &s.chips[i], im.Remove(name), icons.NavigationClose, "Remove "+name)
					}),
				)
			})
		})
	})
}
