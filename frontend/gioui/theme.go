package gioui

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

var primaryColor = color.NRGBA{R: 66, G: 133, B: 244, A: 255}
var cancelColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}
var disabledButtonColor = color.NRGBA{R: 90, G: 90, B: 92, A: 255}

var highEmphasisTextColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}
var mediumEmphasisTextColor = color.NRGBA{R: 153, G: 153, B: 153, A: 153}
var disabledTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 97}

var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
var sheetSurfaceColor = color.NRGBA{R: 37, G: 37, B: 38, A: 255}
var groupSurfaceColor = color.NRGBA{R: 255, G: 255, B: 255, A: 16}
var chosenSurfaceColor = color.NRGBA{R: 66, G: 133, B: 244, A: 64}
var chipColor = color.NRGBA{R: 55, G: 55, B: 61, A: 255}
var scrimColor = color.NRGBA{R: 0, G: 0, B: 0, A: 192}

var infoAlertColor = color.NRGBA{R: 50, G: 50, B: 51, A: 255}
var warningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}
var errorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}

var cornerRadius = unit.Dp(10)

type Theme struct {
	Material material.Theme
}

func NewTheme() *Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette = material.Palette{
		Bg:         backgroundColor,
		Fg:         highEmphasisTextColor,
		ContrastBg: primaryColor,
		ContrastFg: white,
	}
	return &Theme{Material: *th}
}
