package gioui

import (
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/scorecraft/scorecraft/frontend"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// GroupHeader is a clickable header that folds and unfolds a group. The
// chevron points up when the group is unfolded.
type GroupHeader struct {
	Clickable widget.Clickable
}

func (h *GroupHeader) Layout(gtx C, th *Theme, expanded frontend.Bool, text string) D {
	for h.Clickable.Clicked(gtx) {
		if expanded.Enabled() {
			expanded.Toggle()
		}
	}
	icon := icons.NavigationExpandMore
	if expanded.Value() {
		icon = icons.NavigationExpandLess
	}
	return material.Clickable(gtx, &h.Clickable, func(gtx C) D {
		return rounded(gtx, groupSurfaceColor, layout.UniformInset(unit.Dp(8)), func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx C) D {
					l := material.Subtitle1(&th.Material, text)
					l.Color = highEmphasisTextColor
					return l.Layout(gtx)
				}),
				layout.Rigid(func(gtx C) D {
					sz := gtx.Dp(20)
					gtx.Constraints.Min = image.Pt(sz, sz)
					return widgetForIcon(icon).Layout(gtx, mediumEmphasisTextColor)
				}),
			)
		})
	})
}

// grid lays out n cells in rows of cols columns of equal width.
func grid(gtx C, n, cols int, cell layout.ListElement) D {
	rows := make([]layout.FlexChild, 0, (n+cols-1)/cols)
	for start := 0; start < n; start += cols {
		rows = append(rows, layout.Rigid(func(gtx C) D {
			cells := make([]layout.FlexChild, cols)
			for c := range cells {
				i := start + c
				cells[c] = layout.Flexed(1, func(gtx C) D {
					if i >= n {
						return D{Size: gtx.Constraints.Min}
					}
					return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
						gtx.Constraints.Min.X = gtx.Constraints.Max.X
						return cell(gtx, i)
					})
				})
			}
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, cells...)
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}
