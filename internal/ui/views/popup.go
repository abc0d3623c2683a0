package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
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

// RenderPopupOverlay renders a popup centered on top of main content.
// The first line of the popup names the line of the main content that keeps
// its colors; everything else under the popup is greyed out.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int) string {
	styledPopup := pr.styles.Popup.Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")

	modalW := lipgloss.Width(styledPopup)
	modalH := len(popupLines)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	base := strings.Split(mainContent, "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	targetName := extractTitlePlain(popupContent)
	out := make([]string, len(base))
	for i, line := range base {
		if i >= y && i < y+modalH {
			out[i] = spliceLine(line, popupLines[i-y], x, modalW)
			continue
		}
		out[i] = desaturateKeeping(line, targetName)
	}
	return strings.Join(out, "\n")
}

// spliceLine writes overlay into the plain text of line at column x
func spliceLine(line, overlay string, x, overlayW int) string {
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	runes := []rune(ansiRE.ReplaceAllString(line, ""))
	for len(runes) < x {
		runes = append(runes, ' ')
	}

	left := grey.Render(string(runes[:x]))
	right := ""
	if x+overlayW < len(runes) {
		right = grey.Render(string(runes[x+overlayW:]))
	}
	pad := overlayW - lipgloss.Width(overlay)
	if pad < 0 {
		pad = 0
	}
	return left + overlay + strings.Repeat(" ", pad) + right
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// extractTitlePlain returns the first line of popup content without ANSI
func extractTitlePlain(popup string) string {
	if i := strings.IndexByte(popup, '\n'); i >= 0 {
		return ansiRE.ReplaceAllString(popup[:i], "")
	}
	return ansiRE.ReplaceAllString(popup, "")
}

// desaturateKeeping turns a line greyscale unless it contains keepSubstr (plain text match)
func desaturateKeeping(line, keepSubstr string) string {
	plain := ansiRE.ReplaceAllString(line, "")
	if keepSubstr != "" && strings.Contains(plain, keepSubstr) {
		// keep original colored line
		return line
	}
	if plain == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
}
