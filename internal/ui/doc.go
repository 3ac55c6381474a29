// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for playlist syncing:
//  1. [PlaylistListView] : Browse the configured playlists
//  2. [ConfirmView] : Confirm the sync operation
//  3. [SyncView] : Monitor real-time progress updates
//  4. [ResultView] : Display per-playlist counters and failures
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Progress updates flow through a channel from the sync engine, providing non-blocking status reporting during syncs.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
