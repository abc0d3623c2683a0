package views

import (
	"scrollshow/internal/sections"
)

// Panel is one narrative section. Its visible flag is written only by the
// section navigator.
type Panel struct {
	Index   int
	Title   string
	Body    string
	visible bool
}

// SetVisible implements sections.Section
func (p *Panel) SetVisible(visible bool) {
	p.visible = visible
}

// Visible reports whether the panel is shown
func (p *Panel) Visible() bool {
	return p.visible
}

// Deck holds the panels addressed 1..N
type Deck struct {
	panels map[int]*Panel
	order  []int
}

// NewDeck creates a deck from panels; a panel's Index is its address
func NewDeck(panels ...*Panel) *Deck {
	d := &Deck{panels: make(map[int]*Panel, len(panels))}
	for _, p := range panels {
		if p == nil {
			continue
		}
		if _, exists := d.panels[p.Index]; !exists {
			d.order = append(d.order, p.Index)
		}
		d.panels[p.Index] = p
	}
	return d
}

// Section implements sections.Surface
func (d *Deck) Section(index int) (sections.Section, bool) {
	p, ok := d.panels[index]
	if !ok {
		return nil, false
	}
	return p, true
}

// Panel returns the panel at index, or nil
func (d *Deck) Panel(index int) *Panel {
	return d.panels[index]
}

// Visible returns the visible panels in deck order
func (d *Deck) Visible() []*Panel {
	var out []*Panel
	for _, idx := range d.order {
		if p := d.panels[idx]; p.visible {
			out = append(out, p)
		}
	}
	return out
}

// Panels returns all panels in deck order
func (d *Deck) Panels() []*Panel {
	out := make([]*Panel, 0, len(d.order))
	for _, idx := range d.order {
		out = append(out, d.panels[idx])
	}
	return out
}
