package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"scrollshow/internal/ui/views"
)

// PagerOps runs ov on top of the program
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show pages content using ov
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Do not write the document back to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// RenderOutline renders every section, visible or not, for the pager
func RenderOutline(title string, deck *views.Deck, current int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var out strings.Builder
	out.WriteString(titleStyle.Render(title))
	out.WriteString("\n")

	for _, p := range deck.Panels() {
		marker := " "
		if p.Index == current {
			marker = "▶"
		}
		out.WriteString(sectionStyle.Render(fmt.Sprintf("%s %d. %s", marker, p.Index, p.Title)))
		out.WriteString("\n")
		out.WriteString(bodyStyle.Render("   " + p.Body))
		out.WriteString("\n")
	}

	return out.String()
}
