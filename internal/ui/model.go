package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchbox/internal/config"
	"searchbox/internal/domain"
	"searchbox/internal/eventbus"
	"searchbox/internal/search"
	"searchbox/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	search *search.Service

	width     int
	height    int
	textInput textinput.Model
	keys      keyMap
	help      help.Model

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	engine       string
}

// NewModel creates a new UI model around a search service
func NewModel(bus eventbus.EventBus, cfg *config.Config, svc *search.Service, engine string) *Model {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is rendered by the view
	ti.Placeholder = "type to filter"
	ti.SetValue(svc.Query().Text)
	ti.Focus()

	return &Model{
		bus:          bus,
		config:       cfg,
		search:       svc,
		textInput:    ti,
		keys:         newKeyMap(),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		engine:       engine,
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.textInput.Width = msg.Width / 2
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleRegex):
		enabled := m.search.ToggleRegex()
		if m.bus != nil {
			m.bus.Publish(domain.ConfigChangedEvent{Regex: enabled})
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.textInput.Reset()
		m.search.Clear()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.search.NavigateNext()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.search.NavigatePrevious()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		return m, showHelpInPager(m.helpRenderer.RenderHelpContent(m.engine))
	}

	// Everything else edits the query; every change re-runs the search
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.search.SetQuery(m.textInput.Value())
	return m, cmd
}

// View renders the model
func (m *Model) View() string {
	return m.renderer.Render(views.ViewState{
		Width:     m.width,
		Height:    m.height,
		InputView: m.textInput.View(),
		Regex:     m.search.Query().Regex,
		Results:   m.search.Results(),
		Current:   m.search.GetCurrentMatch(),
		Total:     len(m.search.Candidates()),
		Err:       m.search.Err(),
		ShowCount: m.config.UISettings.ShowCount,
		HelpView:  m.help.View(m.keys),
	})
}

// Regex reports whether regex interpretation is currently enabled
func (m *Model) Regex() bool {
	return m.search.Query().Regex
}

// Query returns the current query text
func (m *Model) Query() string {
	return m.textInput.Value()
}
