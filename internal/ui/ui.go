package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/init-js/playlist-dl/internal/playlist"
	"github.com/init-js/playlist-dl/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistListView ViewState = iota
	ConfirmView
	SyncView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	engine       *tasks.Engine
	width        int
	height       int
	playlistList list.Model
	playlists    []playlist.Playlist
	selected     []playlist.Playlist // playlists queued for the next sync
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	result       *tasks.SyncResult
	err          error
	help         help.Model
	keys         keyMap
}

type progressUpdateMsg tasks.ProgressUpdate

type syncCompleteMsg struct {
	result *tasks.SyncResult
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, playlists []playlist.Playlist, engine *tasks.Engine) *Model {
	items := make([]list.Item, len(playlists))
	for i, pl := range playlists {
		items[i] = playlistItem{playlist: pl}
	}
	playlistList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	playlistList.Title = "Configured Playlists"

	return &Model{
		ctx:          ctx,
		view:         PlaylistListView,
		engine:       engine,
		playlists:    playlists,
		playlistList: playlistList,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case syncCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		m.progressChan = nil
		return m, nil
	}

	return m.updateList(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case PlaylistListView:
		return m.renderPlaylistList()
	case ConfirmView:
		return m.renderConfirm()
	case SyncView:
		return m.renderSync()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "a":
		m.selected = m.playlists
		m.view = ConfirmView
		return m, nil
	case "enter":
		selected := m.playlistList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(playlistItem); ok {
				m.selected = []playlist.Playlist{item.playlist}
				m.view = ConfirmView
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.view = PlaylistListView
		return m, nil
	case "y":
		m.view = SyncView
		return m, m.startSync()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.view = PlaylistListView
		m.selected = nil
		m.result = nil
		m.err = nil
		m.progress = tasks.ProgressUpdate{}
		return m, nil
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view == PlaylistListView {
		m.playlistList, cmd = m.playlistList.Update(msg)
	}
	return m, cmd
}

func (m *Model) startSync() tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)
	ch := m.progressChan
	playlists := m.selected

	go func() {
		result, err := m.engine.SyncAll(m.ctx, playlists, ch)
		m.result = result
		m.err = err
		close(ch)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	ch := m.progressChan
	return func() tea.Msg {
		if ch == nil {
			return syncCompleteMsg{result: m.result, err: m.err}
		}

		update, ok := <-ch
		if !ok {
			return syncCompleteMsg{result: m.result, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderPlaylistList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.all, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.playlistList.View(), helpView)
}

func (m *Model) renderConfirm() string {
	var title string
	if len(m.selected) == 1 {
		title = styles.title.Render(fmt.Sprintf("Sync playlist '%s'?", m.selected[0].Name))
	} else {
		title = styles.title.Render(fmt.Sprintf("Sync all %d playlists?", len(m.selected)))
	}

	info := ""
	for _, pl := range m.selected {
		info += fmt.Sprintf("\n%s → %s", pl.Name, pl.Dir())
	}
	info += "\n"

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderSync() string {
	title := styles.title.Render("Syncing Playlists")

	var phase string
	switch m.progress.Phase {
	case tasks.StartPlaylist:
		phase = fmt.Sprintf("Starting playlist (%d/%d)...", m.progress.Step, m.progress.Total)
	case tasks.FetchListing:
		phase = "Fetching playlist listing..."
	case tasks.FetchMedia:
		phase = "Downloading media..."
	case tasks.Reconcile:
		phase = fmt.Sprintf("Reconciling tags (%d/%d)", m.progress.Step, m.progress.Total)
	default:
		phase = "Processing..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderResult() string {
	if m.result == nil {
		if m.err != nil {
			return styles.err.Render(fmt.Sprintf("Sync failed: %v\n\nPress r to retry, q to quit", m.err))
		}
		return styles.err.Render("No result available\n\nPress r to retry, q to quit")
	}

	var title string
	if m.result.Failed > 0 {
		title = styles.warn.Render(fmt.Sprintf("Sync finished with %d failure(s)", m.result.Failed))
	} else {
		title = styles.ok.Render("✓ Sync Complete!")
	}

	var info string
	for _, pr := range m.result.Playlists {
		if pr.Err != nil {
			info += "\n" + styles.err.Render(fmt.Sprintf("✗ %s: %v", pr.Playlist.Name, pr.Err))
			continue
		}
		info += fmt.Sprintf("\n✓ %s: %d entries, %d/%d files tagged, %d skipped",
			pr.Playlist.Name, pr.Entries, pr.FilesTagged, pr.FilesScanned, pr.FilesSkipped)
	}

	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, info, helpView)
}
