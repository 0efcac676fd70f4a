package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers a popup over greyed out main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	for i, popupLine := range strings.Split(styledPopup, "\n") {
		row := y + i
		if row >= len(base) {
			base = append(base, "")
		}
		base[row] = spliceLine(base[row], popupLine, x, modalW)
	}

	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range base {
		if i < y || i >= y+modalH {
			base[i] = grey.Render(line)
		}
	}
	return strings.Join(base, "\n")
}

// desaturateANSI strips ANSI color/style codes
func desaturateANSI(s string) string {
	return ansi.Strip(s)
}

// spliceLine writes overlay into the plain line base at column x.
// Text of base to the left and right of the overlay is kept.
func spliceLine(base, overlay string, x, overlayWidth int) string {
	runes := []rune(base)
	for len(runes) < x {
		runes = append(runes, ' ')
	}
	left := string(runes[:x])

	right := ""
	if end := x + overlayWidth; end < len(runes) {
		right = string(runes[end:])
	}

	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return grey.Render(left) + overlay + grey.Render(right)
}
