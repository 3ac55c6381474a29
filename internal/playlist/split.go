package playlist

import "strings"

// SplitArtist recovers (artist, song) from a raw listing title, commonly of
// the form "Artist - Song".
//
// The spaced separator " - " is preferred; a bare "-" is the fallback. When
// neither splits the title, ok is false and the whole title is returned as
// the song.
func SplitArtist(title string) (artist, song string, ok bool) {
	if a, s, found := strings.Cut(title, " - "); found {
		return strings.TrimSpace(a), strings.TrimSpace(s), true
	}
	if a, s, found := strings.Cut(title, "-"); found {
		return strings.TrimSpace(a), strings.TrimSpace(s), true
	}
	return "", title, false
}
