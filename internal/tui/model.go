// Package tui implements the interactive terminal interface.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/tonematch/internal/capture"
	"github.com/Veraticus/tonematch/internal/common"
	"github.com/Veraticus/tonematch/internal/engine"
	"github.com/Veraticus/tonematch/internal/tui/components"
	"github.com/Veraticus/tonematch/internal/tui/themes"
	"github.com/Veraticus/tonematch/internal/tui/viewmodel"
)

// Model holds the main TUI state.
type Model struct {
	ctx            context.Context
	classifier     engine.Classifier
	theme          themes.Theme
	engine         *engine.Engine
	capture        *capture.Controller
	cancelAnalysis context.CancelFunc
	status         string
	acquireSeq     uint64
	keymap         KeyMap
	config         Config
	help           help.Model
	spinner        spinner.Model
	results        components.ResultsPanel
	pathInput      components.PathInput
	width          int
	height         int
	enteringPath   bool
	acquiring      bool
	showAll        bool
	showHelp       bool
	quitting       bool
}

// New creates the interactive model. A classifier is required.
func New(ctx context.Context, opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Classifier == nil {
		return Model{}, fmt.Errorf("%w: classifier is required", common.ErrInvalidConfig)
	}
	if cfg.Capture == nil {
		cfg.Capture = capture.NewController(nil)
	}

	return newModel(ctx, cfg), nil
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	m := Model{
		ctx:        ctx,
		config:     cfg,
		theme:      cfg.Theme,
		classifier: cfg.Classifier,
		capture:    cfg.Capture,
		engine:     engine.New(),
		keymap:     DefaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		results:    components.NewResultsPanel(cfg.Theme),
		pathInput:  components.NewPathInput(cfg.Theme),
		width:      cfg.Width,
		height:     cfg.Height,
		showAll:    cfg.ShowAll,
		showHelp:   cfg.ShowHelp,
	}
	m.handleResize()
	if strings.TrimSpace(cfg.InitialImage) != "" {
		m.nextAcquisition()
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
	}

	if path := strings.TrimSpace(m.config.InitialImage); path != "" {
		cmds = append(cmds, m.acquireFile(path, m.acquireSeq))
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case cameraOpenedMsg:
		if msg.err != nil {
			m.engine.Fail(msg.err)
			return m, nil
		}
		m.status = "Camera ready. Press Space to capture."
		return m, nil

	case imageAcquiredMsg:
		return m.handleImage(msg)

	case analysisDoneMsg:
		if m.engine.Complete(msg.generation, msg.record, msg.err) {
			m.stopAnalysis()
			m.status = ""
		}
		return m, nil

	case statusMsg:
		m.status = msg.text
		return m, nil

	case spinner.TickMsg:
		if m.engine.Snapshot().State != engine.StateAnalyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.enteringPath {
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	view := viewmodel.Project(m.engine.Snapshot(), m.viewOptions())
	if view.ShowHelp {
		return m.renderHelp()
	}
	return m.render(view)
}

// Snapshot returns the current pipeline snapshot.
func (m Model) Snapshot() engine.Snapshot {
	return m.engine.Snapshot()
}

func (m Model) viewOptions() viewmodel.Options {
	return viewmodel.Options{
		PathInput:       m.pathInput.Value(),
		StatusMessage:   m.status,
		Width:           m.width,
		Height:          m.height,
		EnteringPath:    m.enteringPath,
		CameraAvailable: m.capture.HasCamera(),
		CameraActive:    m.capture.CameraActive(),
		ShowAll:         m.showAll,
		ShowHelp:        m.showHelp,
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		return m.quit()
	}

	if m.enteringPath {
		return m.handlePathKey(msg)
	}

	if m.showHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Cancel) {
			m.showHelp = false
			return m, nil
		}
		if key.Matches(msg, m.keymap.Quit) {
			return m.quit()
		}
		return m, nil
	}

	snap := m.engine.Snapshot()
	analyzing := snap.State == engine.StateAnalyzing
	cameraLive := m.capture.CameraActive()

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil

	case cameraLive && key.Matches(msg, m.keymap.Capture):
		if m.acquiring {
			return m, nil
		}
		m.status = "Capturing..."
		seq := m.nextAcquisition()
		return m, m.captureFrame(seq)

	case cameraLive && key.Matches(msg, m.keymap.Cancel):
		m.dropAcquisition()
		if err := m.capture.CancelCamera(); err != nil {
			common.LogError(err, "Failed to close camera feed", nil)
		}
		m.status = "Camera closed."
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		m.stopAnalysis()
		m.dropAcquisition()
		if err := m.capture.CancelCamera(); err != nil {
			common.LogError(err, "Failed to close camera feed", nil)
		}
		m.engine.Reset()
		m.showAll = m.config.ShowAll
		m.status = ""
		return m, nil

	case analyzing || cameraLive || m.acquiring:
		return m, nil

	case key.Matches(msg, m.keymap.OpenFile):
		m.enteringPath = true
		m.status = ""
		return m, m.pathInput.Focus()

	case key.Matches(msg, m.keymap.Camera):
		if !m.capture.HasCamera() {
			return m, showStatus("No camera configured.")
		}
		m.status = "Opening camera..."
		return m, m.openCamera()

	case key.Matches(msg, m.keymap.ToggleAll):
		if snap.State == engine.StateResolved {
			m.showAll = !m.showAll
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handlePathKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.closePathInput()
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		path := strings.TrimSpace(m.pathInput.Value())
		m.closePathInput()
		if path == "" {
			m.status = "No image selected."
			return m, nil
		}
		m.status = "Loading image..."
		seq := m.nextAcquisition()
		return m, m.acquireFile(path, seq)
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m Model) handleImage(msg imageAcquiredMsg) (tea.Model, tea.Cmd) {
	if !m.acquiring || msg.seq != m.acquireSeq {
		common.LogDebug("Dropping outdated acquisition", common.Fields{"seq": msg.seq, "current": m.acquireSeq})
		return m, nil
	}
	m.acquiring = false

	if msg.err != nil {
		if !m.engine.Fail(msg.err) {
			m.status = "No image selected."
			return m, nil
		}
		m.stopAnalysis()
		m.status = ""
		return m, nil
	}

	generation, err := m.engine.Begin(msg.img)
	if err != nil {
		m.status = "No image selected."
		return m, nil
	}

	m.stopAnalysis()
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelAnalysis = cancel
	m.status = "Analyzing " + msg.img.Name + "..."

	return m, tea.Batch(
		m.spinner.Tick,
		m.classify(ctx, generation, msg.img),
	)
}

func (m *Model) closePathInput() {
	m.enteringPath = false
	m.pathInput.Blur()
	m.pathInput.Reset()
}

// nextAcquisition starts a new acquisition and returns its sequence number.
// Results of earlier acquisitions are dropped from then on.
func (m *Model) nextAcquisition() uint64 {
	m.acquireSeq++
	m.acquiring = true
	return m.acquireSeq
}

// dropAcquisition discards the acquisition in flight, if any.
func (m *Model) dropAcquisition() {
	if m.acquiring {
		m.acquireSeq++
		m.acquiring = false
	}
}

// stopAnalysis cancels the running classification, if any.
func (m *Model) stopAnalysis() {
	if m.cancelAnalysis != nil {
		m.cancelAnalysis()
		m.cancelAnalysis = nil
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.stopAnalysis()
	if err := m.capture.Close(); err != nil {
		common.LogError(err, "Failed to release camera", nil)
	}
	m.quitting = true
	return m, tea.Quit
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	m.results.Resize(m.width - 4)
	m.pathInput.Resize(m.width - 4)
	m.help.Width = m.width - 4
}
