package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/init-js/playlist-dl/internal/playlist"
)

var (
	_ list.Item = playlistItem{}
)

// playlistItem wraps [playlist.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist playlist.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	return fmt.Sprintf("%s • %s", i.playlist.Genre, i.playlist.Dir())
}
