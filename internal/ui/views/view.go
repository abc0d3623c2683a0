package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
)

// ReadyMarker is printed once the first frame is rendered in e2e runs
const ReadyMarker = "__READY__"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Deck          *Deck
	Current       int
	Count         int
	AtBoundary    bool
	ShowCamera    bool
	CameraReadout string
	FPS           float64
	StatusMessage string
	HelpView      string
	Ready         bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	dots   paginator.Model
	popup  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.ActiveDot = styles.ActiveDot.Render("●")
	dots.InactiveDot = styles.InactiveDot.Render("○")
	return &Renderer{
		styles: styles,
		dots:   dots,
		popup:  NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	content.WriteString(r.renderPanels(state))
	content.WriteString("\n\n")

	r.dots.TotalPages = state.Count
	r.dots.Page = state.Current - 1
	content.WriteString(r.dots.View())

	if state.ShowCamera && state.CameraReadout != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Camera.Render(state.CameraReadout))
		if state.FPS > 0 {
			content.WriteString(r.styles.Dim.Render(fmt.Sprintf("  %.0f fps", state.FPS)))
		}
	}

	if status := r.renderStatus(state); status != "" {
		content.WriteString("\n")
		content.WriteString(status)
	}

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	if state.Ready {
		content.WriteString("\n")
		content.WriteString(ReadyMarker)
	}

	return r.styles.Main.Render(content.String())
}

// RenderWithPopup renders the view with popup drawn over it
func (r *Renderer) RenderWithPopup(state ViewState, popup string) string {
	return r.popup.RenderPopupOverlay(r.Render(state), popup, state.Height, state.Width)
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render(state.Title)
	position := r.styles.PanelIndex.Render(fmt.Sprintf("section %d/%d", state.Current, state.Count))

	// Right-align the position when there is room for it
	padding := state.Width - 4 - lipgloss.Width(logo) - lipgloss.Width(position)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + position
}

func (r *Renderer) renderPanels(state ViewState) string {
	if state.Deck == nil {
		return ""
	}

	visible := state.Deck.Visible()
	if len(visible) == 0 {
		return r.styles.Dim.Render("Scroll to begin.")
	}

	width := state.Width - 8
	if width < 20 {
		width = 20
	}

	rendered := make([]string, 0, len(visible))
	for _, p := range visible {
		body := lipgloss.JoinVertical(lipgloss.Left,
			r.styles.PanelTitle.Render(p.Title),
			r.styles.PanelBody.Render(p.Body),
		)
		rendered = append(rendered, r.styles.Panel.Width(width).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (r *Renderer) renderStatus(state ViewState) string {
	var parts []string
	if state.AtBoundary {
		edge := "first"
		if state.Current == state.Count {
			edge = "last"
		}
		parts = append(parts, r.styles.Boundary.Render(fmt.Sprintf("%s section", edge)))
	}
	if state.StatusMessage != "" {
		parts = append(parts, state.StatusMessage)
	}
	if len(parts) == 0 {
		return ""
	}
	return r.styles.Status.Render(strings.Join(parts, "  "))
}
