package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"scrollshow/internal/config"
	"scrollshow/internal/domain"
	"scrollshow/internal/eventbus"
	"scrollshow/internal/gesture"
	"scrollshow/internal/scene"
	"scrollshow/internal/sections"
	"scrollshow/internal/ui/input"
	inputtypes "scrollshow/internal/ui/input/types"
	"scrollshow/internal/ui/views"
)

// Options tunes a Model beyond what the config file covers
type Options struct {
	Clock       func() time.Time // nil means time.Now
	ReadyMarker bool             // print views.ReadyMarker once rendered
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	classifier   *gesture.Classifier
	navigator    *sections.Navigator
	subscription domain.Subscription
	deck         *views.Deck
	rig          *scene.Rig
	frames       scene.Clock

	width         int
	height        int
	help          help.Model
	inputHandler  *input.Handler
	renderer      *views.Renderer
	pager         *PagerOps
	statusMessage string
	atBoundary    bool
	moved         bool
	ready         bool
	readyMarker   bool
	paused        bool
	startup       []tea.Cmd

	program *tea.Program
}

// NewModel creates a new UI model from a validated config
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts Options) (*Model, error) {
	mapping := gesture.PositiveIsBackward
	if cfg.Gesture.PositiveDelta == config.PositiveForward {
		mapping = gesture.PositiveIsForward
	}

	classifier, err := gesture.New(gesture.Options{
		Cooldown: cfg.Cooldown(),
		Mapping:  mapping,
		Clock:    opts.Clock,
	})
	if err != nil {
		return nil, err
	}

	panels := make([]*views.Panel, 0, len(cfg.Sections))
	waypoints := make([]scene.Waypoint, 0, len(cfg.Sections))
	for i, s := range cfg.Sections {
		panels = append(panels, &views.Panel{Index: i + 1, Title: s.Title, Body: s.Body})
		waypoints = append(waypoints, scene.Waypoint{
			Position: scene.Vec3{X: s.Camera[0], Y: s.Camera[1], Z: s.Camera[2]},
			LookAt:   scene.Vec3{X: s.LookAt[0], Y: s.LookAt[1], Z: s.LookAt[2]},
		})
	}
	deck := views.NewDeck(panels...)

	navigator, err := sections.NewNavigator(deck, sections.Options{
		Count:         cfg.SectionCount(),
		RevealInitial: cfg.Navigator.RevealInitial,
	})
	if err != nil {
		return nil, err
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		classifier:   classifier,
		navigator:    navigator,
		deck:         deck,
		rig:          scene.NewRig(waypoints),
		help:         help.New(),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		pager:        NewPagerOps(),
		readyMarker:  opts.ReadyMarker,
	}

	// One subscription for the whole session
	m.subscription = navigator.Bind(classifier, m.handleTransition)

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Close releases the classifier subscription
func (m *Model) Close() {
	if m.subscription != nil {
		m.subscription.Unsubscribe()
		m.subscription = nil
	}
}

// Navigator exposes the section cursor
func (m *Model) Navigator() *sections.Navigator {
	return m.navigator
}

// Classifier exposes the gesture classifier
func (m *Model) Classifier() *gesture.Classifier {
	return m.classifier
}

// Deck exposes the section panels
func (m *Model) Deck() *views.Deck {
	return m.deck
}

// Notify applies an event delivered before the program started.
// Status it sets is cleared on the usual schedule once Init runs.
func (m *Model) Notify(event eventbus.DomainEvent) {
	if cmd := m.handleEvent(event); cmd != nil {
		m.startup = append(m.startup, cmd)
	}
}

// Init starts the render loop
func (m *Model) Init() tea.Cmd {
	if len(m.startup) == 0 {
		return m.nextFrame()
	}
	cmds := append([]tea.Cmd{m.nextFrame()}, m.startup...)
	m.startup = nil
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.ready = true
			m.publish(eventbus.AppReadyEvent{})
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.processActions(m.inputHandler.HandleKey(msg))

	case tea.MouseMsg:
		return m, m.processActions(m.inputHandler.HandleMouse(msg))

	case frameMsg:
		m.frames.Tick(time.Time(msg))
		return m, m.nextFrame()

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Outline pager failed: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.paused = true
		return m, nil

	case resumeRenderingMsg:
		m.paused = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.paused {
		return ""
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         m.config.Title,
		Deck:          m.deck,
		Current:       m.navigator.Current(),
		Count:         m.navigator.Count(),
		AtBoundary:    m.atBoundary,
		ShowCamera:    m.config.Render.ShowCamera,
		CameraReadout: m.rig.Readout(),
		FPS:           m.frames.FPS(),
		StatusMessage: m.statusMessage,
		Ready:         m.readyMarker && m.ready,
	}
	if !m.help.ShowAll {
		state.HelpView = m.help.View(m.inputHandler.Keys())
		return m.renderer.Render(state)
	}

	// Full help floats over the current section, whose title stays lit
	heading := fmt.Sprintf("Section %d", m.navigator.Current())
	if p := m.deck.Panel(m.navigator.Current()); p != nil && p.Visible() {
		heading = p.Title
	}
	return m.renderer.RenderWithPopup(state, heading+"\n\n"+m.help.View(m.inputHandler.Keys()))
}

func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.ScrollAction:
		m.moved = false
		dir, ok := m.classifier.Feed(gesture.Sample{DeltaY: a.DeltaY})
		// Without a subscription nothing moves, which is not a boundary
		if ok && !m.moved && m.subscription != nil {
			m.handleBoundary(dir)
		}

	case inputtypes.NavigateAction:
		if tr, ok := m.navigator.Advance(a.Direction); ok {
			m.handleTransition(tr)
		} else {
			m.handleBoundary(a.Direction)
		}

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.OpenOutlineAction:
		return m.openOutline()

	case inputtypes.QuitAction:
		stats := m.classifier.Stats()
		log.Printf("Quitting on section %d/%d after %s and %d frames (gestures emitted=%d suppressed=%d ignored=%d)",
			m.navigator.Current(), m.navigator.Count(), m.frames.Elapsed(), m.frames.Frames(),
			stats.Emitted, stats.Suppressed, stats.Ignored)
		return tea.Quit
	}
	return nil
}

// handleTransition reacts to a real section change
func (m *Model) handleTransition(tr domain.SectionTransition) {
	m.moved = true
	m.atBoundary = false
	m.rig.Focus(tr.To)

	dir := domain.DirectionForward
	if tr.To < tr.From {
		dir = domain.DirectionBackward
	}

	title := ""
	if p := m.deck.Panel(tr.To); p != nil {
		title = p.Title
	}
	m.publish(eventbus.SectionChangedEvent{Transition: tr, Direction: dir, Title: title})
}

func (m *Model) handleBoundary(dir domain.Direction) {
	atEdge := (dir == domain.DirectionBackward && m.navigator.AtStart()) ||
		(dir == domain.DirectionForward && m.navigator.AtEnd())
	if !atEdge {
		return
	}
	m.atBoundary = true
	m.publish(eventbus.BoundaryReachedEvent{Section: m.navigator.Current(), Direction: dir})
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ConfigSavedEvent:
		return m.setStatus(fmt.Sprintf("Config written to %s", e.Path))
	case eventbus.ErrorEvent:
		text := e.Message
		if e.Err != nil {
			text = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return m.setStatus(m.renderer.Styles().StatusError.Render(text))
	}
	return nil
}

func (m *Model) openOutline() tea.Cmd {
	if m.program == nil {
		return m.setStatus("Outline needs a running program")
	}
	content := RenderOutline(m.config.Title, m.deck, m.navigator.Current())
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.statusMessage = text
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.config.FrameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
