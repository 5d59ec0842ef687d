package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/router"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screen"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screens/home"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screens/welcome"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/layout"
)

// Options holds dependencies for the terminal app.
type Options struct {
	Home home.Options

	// SkipWelcome starts on the home screen.
	SkipWelcome bool

	Logger *zap.Logger
}

// headerMsg carries the totals shown in the header bar.
type headerMsg struct {
	XP        int
	DayStreak int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	snapshots store.SnapshotRepo
	logger    *zap.Logger

	width  int
	height int
	header headerMsg
}

// newAppModel creates the root model, starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var root screen.Screen
	if opts.SkipWelcome {
		root = home.New(opts.Home)
	} else {
		root = welcome.New(func() screen.Screen { return home.New(opts.Home) })
	}
	return AppModel{
		router:    router.New(root),
		snapshots: opts.Home.Snapshots,
		logger:    logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadHeader())
}

func (m AppModel) loadHeader() tea.Cmd {
	repo := m.snapshots
	if repo == nil {
		return nil
	}
	logger := m.logger
	return func() tea.Msg {
		snap, err := repo.Latest(context.Background())
		if err != nil {
			logger.Warn("load header stats", zap.Error(err))
			return headerMsg{}
		}
		if snap == nil || snap.Data.Progress == nil {
			return headerMsg{}
		}
		return headerMsg{XP: snap.Data.Progress.TotalXP, DayStreak: snap.Data.Progress.DayStreak}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerMsg:
		m.header = msg
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case router.PopScreenMsg, router.PopToRootMsg:
		// a finished lesson may have changed the totals
		return m, tea.Batch(m.router.Update(msg), m.loadHeader())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.header.XP, m.header.DayStreak, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal app: %w", err)
	}
	return nil
}
