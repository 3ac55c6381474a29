package playlist

import "testing"

func TestExtractID(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		id       string
		ok       bool
	}{
		{
			name:     "title with id suffix",
			filename: "Artist - Song-dYGgqJiJZCA.m4a",
			id:       "dYGgqJiJZCA",
			ok:       true,
		},
		{
			name:     "id containing dash and underscore",
			filename: "Track-a-B_c-9Xy-1.m4a",
			id:       "a-B_c-9Xy-1",
			ok:       true,
		},
		{
			name:     "no id suffix",
			filename: "randomfile.m4a",
			id:       "",
			ok:       false,
		},
		{
			name:     "id too short",
			filename: "Song-abc123.m4a",
			id:       "",
			ok:       false,
		},
		{
			name:     "wrong extension",
			filename: "Artist - Song-dYGgqJiJZCA.mp3",
			id:       "",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractID(tt.filename)
			if ok != tt.ok {
				t.Errorf("expected ok=%v, got %v", tt.ok, ok)
			}
			if id != tt.id {
				t.Errorf("expected id %q, got %q", tt.id, id)
			}
		})
	}
}
