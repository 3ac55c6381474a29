package playlist

import "regexp"

// MediaExt is the audio container extension produced by the media fetch step.
const MediaExt = ".m4a"

// The downloader appends the platform id to every filename: "<title>-<id>.m4a".
// Ids are 11 characters drawn from [-A-Za-z0-9_].
var idSuffix = regexp.MustCompile(`-([-A-Za-z0-9_]{11})\.m4a$`)

// ExtractID pulls the embedded platform id out of a local media filename.
// ok is false when the filename carries no recognizable id suffix; such files
// are reported and skipped, never treated as an error.
func ExtractID(filename string) (id string, ok bool) {
	m := idSuffix.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	return m[1], true
}
