package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcast-browser/internal/models"
	"github.com/killallgit/podcast-browser/internal/navigation"
	"github.com/killallgit/podcast-browser/internal/state"
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
)

type fakeSource struct {
	cell      *state.Cell[[]models.Podcast]
	refreshOK bool
	refreshes int
	loading   bool
	lastErr   *apperrors.AppError
}

func newFakeSource(initial []models.Podcast) *fakeSource {
	return &fakeSource{cell: state.New(initial, state.WithCopy(models.ClonePodcasts))}
}

func (f *fakeSource) Podcasts() state.ReadOnly[[]models.Podcast] { return f.cell.ReadOnly() }
func (f *fakeSource) Loading() bool                              { return f.loading }
func (f *fakeSource) LastError() *apperrors.AppError             { return f.lastErr }
func (f *fakeSource) Refresh() bool {
	f.refreshes++
	return f.refreshOK
}

func testPodcasts() []models.Podcast {
	return []models.Podcast{
		{ID: "a", Title: "Star Wars 7x7", Publisher: "Allen Voivod", Description: "<p>Daily <b>Star Wars</b> &amp; more</p>"},
		{ID: "b", Title: "The Daily", Publisher: "The New York Times", Image: "https://img/daily.png", Description: "<b>hi</b>"},
		{ID: "c", Title: "Planet Money", Publisher: "NPR"},
	}
}

func key(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func apply(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(model)
	require.True(t, ok, "Update returned %T, want model", next)
	return got
}

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		m = apply(t, m, k)
	}
	return m
}

func typeText(t *testing.T, m model, text string) model {
	t.Helper()
	for _, r := range text {
		m = apply(t, m, key(string(r)))
	}
	return m
}

func TestModel_StartsWithCellSnapshot(t *testing.T) {
	m := newModel(newFakeSource(testPodcasts()), navigation.NewStack(), Options{})

	assert.Len(t, m.visible, 3)
	assert.Contains(t, m.View(), "Star Wars 7x7")
	assert.Contains(t, m.View(), "Planet Money")
}

func TestModel_EmptyListView(t *testing.T) {
	m := newModel(newFakeSource([]models.Podcast{}), navigation.NewStack(), Options{})
	assert.Contains(t, m.View(), "No podcasts yet.")
}

func TestModel_SnapshotReplacesList(t *testing.T) {
	m := newModel(newFakeSource([]models.Podcast{}), navigation.NewStack(), Options{})

	next, cmd := m.Update(snapshotMsg{podcasts: testPodcasts()})
	m = next.(model)

	assert.Len(t, m.podcasts, 3)
	assert.NotNil(t, cmd, "model keeps listening for snapshots")
	assert.Contains(t, m.View(), "Loaded 3 podcasts.")
}

func TestModel_InitDeliversPublishedSnapshot(t *testing.T) {
	src := newFakeSource([]models.Podcast{})
	m := newModel(src, navigation.NewStack(), Options{})
	cmd := m.Init()

	src.cell.Set(testPodcasts())

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- cmd() }()

	select {
	case msg := <-msgs:
		snap, ok := msg.(snapshotMsg)
		require.True(t, ok, "got %T", msg)
		assert.Equal(t, testPodcasts(), snap.podcasts)
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}
}

func TestModel_ClosedCellEndsSubscription(t *testing.T) {
	src := newFakeSource([]models.Podcast{})
	m := newModel(src, navigation.NewStack(), Options{})
	src.cell.Close()

	assert.IsType(t, subscriptionClosedMsg{}, m.Init()())
}

func TestModel_EnterOpensDetailsWithSameItem(t *testing.T) {
	nav := navigation.NewStack()
	m := newModel(newFakeSource(testPodcasts()), nav, Options{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	current := nav.Current()
	require.Equal(t, navigation.ScreenDetails, current.Screen)
	assert.Equal(t, testPodcasts()[1], *current.Podcast)

	view := m.View()
	assert.Contains(t, view, "The Daily")
	assert.Contains(t, view, "https://img/daily.png")
	assert.Contains(t, view, "hi")
	assert.NotContains(t, view, "<b>")
}

func TestModel_BackReturnsToList(t *testing.T) {
	nav := navigation.NewStack()
	m := newModel(newFakeSource(testPodcasts()), nav, Options{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, key("f"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, navigation.ScreenList, nav.Current().Screen)
	assert.False(t, m.favourite)
	assert.Contains(t, m.View(), "Best Podcasts")
}

func TestModel_FavouriteToggle(t *testing.T) {
	m := newModel(newFakeSource(testPodcasts()), navigation.NewStack(), Options{})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.View(), "☆")
	m = press(t, m, key("f"))
	assert.True(t, m.favourite)
	assert.Contains(t, m.View(), "★")
	m = press(t, m, key("f"))
	assert.False(t, m.favourite)
}

func TestModel_InvalidSelectionStaysOnList(t *testing.T) {
	nav := navigation.NewStack()
	m := newModel(newFakeSource([]models.Podcast{{Title: "No ID"}}), nav, Options{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, navigation.ScreenList, nav.Current().Screen)
	assert.True(t, m.statusErr)
	assert.Contains(t, m.View(), "Cannot open")
}

func TestModel_EnterOnEmptyListIsNoop(t *testing.T) {
	nav := navigation.NewStack()
	m := newModel(newFakeSource([]models.Podcast{}), nav, Options{})

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, navigation.ScreenList, nav.Current().Screen)
}

func TestModel_Refresh(t *testing.T) {
	src := newFakeSource(testPodcasts())
	m := newModel(src, navigation.NewStack(), Options{})

	src.refreshOK = true
	m = press(t, m, key("r"))
	assert.Equal(t, "Refreshing...", m.status)

	src.refreshOK = false
	m = press(t, m, key("r"))
	assert.Equal(t, "A fetch is already in flight.", m.status)
	assert.Equal(t, 2, src.refreshes)
}

func TestModel_LastErrorShownAsStale(t *testing.T) {
	src := newFakeSource(testPodcasts())
	src.lastErr = apperrors.TransportError("http://x", nil)
	m := newModel(src, navigation.NewStack(), Options{})

	assert.Contains(t, m.View(), "Showing last known list")
	assert.Contains(t, m.View(), "Star Wars 7x7")
}

func TestModel_Filter(t *testing.T) {
	m := newModel(newFakeSource(testPodcasts()), navigation.NewStack(), Options{})

	m = press(t, m, key("/"))
	require.True(t, m.filtering)
	m = typeText(t, m, "npr")

	require.Len(t, m.visible, 1)
	assert.Equal(t, "c", m.visible[0].ID)
	assert.Contains(t, m.View(), "(1 of 3)")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "np", m.query)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.filtering)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.query)
	assert.Len(t, m.visible, 3)
}

func TestModel_FilterTypingQDoesNotQuit(t *testing.T) {
	m := newModel(newFakeSource(testPodcasts()), navigation.NewStack(), Options{})
	m = press(t, m, key("/"))

	next, cmd := m.Update(key("q"))
	assert.Nil(t, cmd)
	assert.Equal(t, "q", next.(model).query)
}

func TestModel_FilterOpensFilteredSelection(t *testing.T) {
	nav := navigation.NewStack()
	m := newModel(newFakeSource(testPodcasts()), nav, Options{})

	m = press(t, m, key("/"))
	m = typeText(t, m, "planet")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, navigation.ScreenDetails, nav.Current().Screen)
	assert.Equal(t, "c", nav.Current().Podcast.ID)
}

func TestModel_CursorClampedWhenListShrinks(t *testing.T) {
	m := newModel(newFakeSource(testPodcasts()), navigation.NewStack(), Options{})
	m = press(t, m, key("G"))
	require.Equal(t, 2, m.cursor)

	m = apply(t, m, snapshotMsg{podcasts: testPodcasts()[:1]})
	assert.Equal(t, 0, m.cursor)
}

func TestModel_QuitUnsubscribes(t *testing.T) {
	src := newFakeSource(testPodcasts())
	m := newModel(src, navigation.NewStack(), Options{})
	require.Equal(t, 1, src.cell.Subscribers())

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 0, src.cell.Subscribers())
}

func TestModel_WindowScrolling(t *testing.T) {
	var many []models.Podcast
	for i := 0; i < 30; i++ {
		many = append(many, models.Podcast{ID: string(rune('a' + i)), Title: "Show"})
	}
	m := newModel(newFakeSource(many), navigation.NewStack(), Options{})
	m = apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 13})

	for i := 0; i < 10; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 10, m.cursor)
	assert.Equal(t, 6, m.offset)
}
