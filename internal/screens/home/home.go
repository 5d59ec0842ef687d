package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/lessons"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/router"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screen"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screens/gemvault"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screens/history"
	sessionscreen "github.com/Yusuprozimemet/TyporaX-AI/internal/screens/session"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/components"
)

// Options wires the home screen.
type Options struct {
	// Practice is the template for every lesson started from home.
	Practice sessionscreen.Options

	// Events backs the history and gem vault screens; nil hides them.
	Events store.EventRepo

	// Snapshots supplies the stats bar; nil shows zeros.
	Snapshots store.SnapshotRepo
}

// stats is what the stats bar shows.
type stats struct {
	XP        int
	DayStreak int
	Gems      int
}

// statsLoadedMsg carries refreshed stats from the snapshot store.
type statsLoadedMsg stats

// HomeScreen is the main menu.
type HomeScreen struct {
	opts     Options
	menu     components.Menu
	langIdx  int
	langs    []lessons.Language
	stats    stats
	disabled map[int]bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

const (
	itemStart = iota
	itemLanguage
	itemHistory
	itemGems
	itemExit
)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{
		opts:     opts,
		langs:    lessons.Languages(),
		disabled: map[int]bool{},
	}
	for i, l := range h.langs {
		if l.Name == opts.Practice.Language {
			h.langIdx = i
		}
	}
	h.opts.Practice.Language = h.langs[h.langIdx].Name

	if opts.Events == nil {
		h.disabled[itemHistory] = true
		h.disabled[itemGems] = true
	}

	items := []components.MenuItem{
		itemStart:    {Label: "START LESSON", Action: h.startLesson},
		itemLanguage: {Label: h.languageLabel(), Action: h.cycleLanguage},
		itemHistory: {Label: "HISTORY", Disabled: h.disabled[itemHistory], Action: func() tea.Cmd {
			return push(history.New(opts.Events))
		}},
		itemGems: {Label: "GEM VAULT", Disabled: h.disabled[itemGems], Action: func() tea.Cmd {
			return push(gemvault.New(opts.Events))
		}},
		itemExit: {Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) startLesson() tea.Cmd {
	return push(sessionscreen.New(h.opts.Practice))
}

func (h *HomeScreen) cycleLanguage() tea.Cmd {
	h.langIdx = (h.langIdx + 1) % len(h.langs)
	h.opts.Practice.Language = h.langs[h.langIdx].Name
	h.menu.Items[itemLanguage].Label = h.languageLabel()
	return nil
}

func (h *HomeScreen) languageLabel() string {
	return "LANGUAGE: " + strings.ToUpper(h.langs[h.langIdx].Name)
}

// Language returns the language the next lesson will use.
func (h *HomeScreen) Language() string {
	return h.opts.Practice.Language
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.Refresh()
}

// Refresh reloads the stats bar from the latest snapshot.
func (h *HomeScreen) Refresh() tea.Cmd {
	repo := h.opts.Snapshots
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		snap, err := repo.Latest(context.Background())
		if err != nil || snap == nil {
			return statsLoadedMsg{}
		}
		return statsLoadedMsg(statsFromSnapshot(snap.Data))
	}
}

func statsFromSnapshot(data store.SnapshotData) stats {
	var st stats
	if p := data.Progress; p != nil {
		st.XP = p.TotalXP
		st.DayStreak = p.DayStreak
	}
	if g := data.Gems; g != nil {
		st.Gems = g.Total
	}
	return st
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		h.stats = stats(msg)
		return h, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && h.menu.Selected == itemLanguage {
		switch kmsg.String() {
		case "left", "right", "space":
			return h, h.cycleLanguage()
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and gaps
	compact := height+8 < 32 || width < 100
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.stats.DayStreak), cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))

	labels := make([]string, len(h.menu.Items))
	for i, item := range h.menu.Items {
		labels[i] = item.Label
	}
	if height < 20 {
		sections = append(sections, renderArcadeMenuCompact(labels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderArcadeMenu(labels, h.menu.Selected, cw, h.disabled))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
