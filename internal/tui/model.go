// Package tui is the interactive terminal browser: a List screen fed by the
// podcast list state and a Details screen opened through a route token.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/killallgit/podcast-browser/internal/models"
	"github.com/killallgit/podcast-browser/internal/navigation"
	"github.com/killallgit/podcast-browser/internal/services/podcastlist"
	"github.com/killallgit/podcast-browser/internal/state"
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
)

// ListSource is the list state the browser renders.
type ListSource interface {
	Podcasts() state.ReadOnly[[]models.Podcast]
	Refresh() bool
	Loading() bool
	LastError() *apperrors.AppError
}

// Options controls presentation.
type Options struct {
	DescriptionWidth int
	AltScreen        bool
}

type snapshotMsg struct {
	podcasts []models.Podcast
}

type subscriptionClosedMsg struct{}

type model struct {
	source      ListSource
	nav         navigation.Navigator
	updates     <-chan []models.Podcast
	unsubscribe func()

	podcasts []models.Podcast
	visible  []models.Podcast
	cursor   int
	offset   int

	filtering bool
	query     string

	favourite bool
	status    string
	statusErr bool

	descWidth int
	width     int
	height    int
}

func newModel(source ListSource, nav navigation.Navigator, opts Options) model {
	if opts.DescriptionWidth <= 0 {
		opts.DescriptionWidth = 80
	}
	updates, unsubscribe := source.Podcasts().Subscribe()
	m := model{
		source:      source,
		nav:         nav,
		updates:     updates,
		unsubscribe: unsubscribe,
		descWidth:   opts.DescriptionWidth,
	}
	m.setPodcasts(source.Podcasts().Get())
	return m
}

func waitForSnapshot(updates <-chan []models.Podcast) tea.Cmd {
	return func() tea.Msg {
		podcasts, ok := <-updates
		if !ok {
			return subscriptionClosedMsg{}
		}
		return snapshotMsg{podcasts: podcasts}
	}
}

func (m model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.setPodcasts(msg.podcasts)
		m.status = fmt.Sprintf("Loaded %d podcasts.", len(msg.podcasts))
		m.statusErr = false
		return m, waitForSnapshot(m.updates)
	case subscriptionClosedMsg:
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInWindow()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.nav.Current().Screen == navigation.ScreenDetails {
			return m.updateDetails(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorInWindow()
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		m.ensureCursorInWindow()
	case "home", "g":
		m.cursor = 0
		m.ensureCursorInWindow()
	case "end", "G":
		m.cursor = max(0, len(m.visible)-1)
		m.ensureCursorInWindow()
	case "enter":
		return m.openSelected()
	case "r":
		if m.source.Refresh() {
			m.setStatus("Refreshing...")
		} else {
			m.setStatus("A fetch is already in flight.")
		}
	case "/":
		m.filtering = true
	case "esc":
		if m.query != "" {
			m.query = ""
			m.applyFilter()
		}
	}
	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyEsc:
		m.filtering = false
		m.query = ""
		m.applyFilter()
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
			m.applyFilter()
		}
	case tea.KeySpace:
		m.query += " "
		m.applyFilter()
	case tea.KeyRunes:
		m.query += string(msg.Runes)
		m.applyFilter()
	}
	return m, nil
}

func (m model) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "esc", "backspace", "b":
		m.nav.Back()
		m.favourite = false
	case "f":
		m.favourite = !m.favourite
	}
	return m, nil
}

// openSelected encodes the selected podcast into a details route and
// navigates to it. A failure leaves the List screen in place.
func (m model) openSelected() (tea.Model, tea.Cmd) {
	if len(m.visible) == 0 {
		return m, nil
	}
	selected := m.visible[m.cursor]

	route, err := navigation.DetailsRoute(selected)
	if err == nil {
		err = m.nav.Navigate(route)
	}
	if err != nil {
		logrus.WithError(err).WithField("podcast_id", selected.ID).Warn("Could not open podcast details")
		m.status = fmt.Sprintf("Cannot open %q: %v", selected.Title, err)
		m.statusErr = true
		return m, nil
	}

	m.favourite = false
	return m, nil
}

func (m model) quit() (tea.Model, tea.Cmd) {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	return m, tea.Quit
}

func (m *model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *model) setPodcasts(podcasts []models.Podcast) {
	m.podcasts = podcasts
	m.applyFilter()
}

func (m *model) applyFilter() {
	if m.query == "" {
		m.visible = m.podcasts
	} else {
		m.visible = podcastlist.Filter(m.podcasts, m.query)
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
	m.ensureCursorInWindow()
}

func (m *model) visibleRows() int {
	// header, status, filter and footer lines
	rows := m.height - 8
	if m.height == 0 || rows < 1 {
		return max(1, len(m.visible))
	}
	return rows
}

func (m *model) ensureCursorInWindow() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Run starts the browser and blocks until the user quits or ctx is done.
func Run(ctx context.Context, source ListSource, opts Options) error {
	var programOpts []tea.ProgramOption
	programOpts = append(programOpts, tea.WithContext(ctx))
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(newModel(source, navigation.NewStack(), opts), programOpts...)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
