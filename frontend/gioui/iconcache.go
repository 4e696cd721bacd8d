package gioui

import (
	"fmt"

	"gioui.org/widget"
)

// icons are decoded once; the IconVG slices from the icons package are
// identified by their first byte.
var iconCache = map[*byte]*widget.Icon{}

func widgetForIcon(icon []byte) *widget.Icon {
	key := &icon[0]
	if w, ok := iconCache[key]; ok {
		return w
	}
	w, err := widget.NewIcon(icon)
	if err != nil {
		panic(fmt.Errorf("decoding icon: %w", err))
	}
	iconCache[key] = w
	return w
}
