package lavalink

import (
	"testing"
	"time"
)

func TestParseLoadResult(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantType   LoadType
		wantTracks int
		wantMsg    string
	}{
		{
			name:       "v3 array shape",
			body:       `[{"encoded":"X","info":{"title":"T"}}]`,
			wantType:   LoadTypeSearch,
			wantTracks: 1,
		},
		{
			name:     "error with message",
			body:     `{"loadType":"error","data":{"message":"boom"}}`,
			wantType: LoadTypeError,
			wantMsg:  "boom",
		},
		{
			name:     "error without message",
			body:     `{"loadType":"error","data":{}}`,
			wantType: LoadTypeError,
			wantMsg:  "unknown load error from lavalink",
		},
		{
			name:       "empty",
			body:       `{"loadType":"empty"}`,
			wantType:   LoadTypeEmpty,
			wantTracks: 0,
		},
		{
			name:       "search drops track without encoded handle",
			body:       `{"loadType":"search","data":[{"info":{"title":"no handle"}}]}`,
			wantType:   LoadTypeSearch,
			wantTracks: 0,
		},
		{
			name:       "single track under data",
			body:       `{"loadType":"track","data":{"encoded":"X","info":{"title":"T","author":"A","uri":"u","length":1000}}}`,
			wantType:   LoadTypeTrack,
			wantTracks: 1,
		},
		{
			name:       "playlist with tracks nested under data",
			body:       `{"loadType":"playlist","data":{"info":{"name":"mix"},"tracks":[{"encoded":"A"},{"encoded":"B"}]}}`,
			wantType:   LoadTypePlaylist,
			wantTracks: 2,
		},
		{
			name:       "search with data array",
			body:       `{"loadType":"search","data":[{"encoded":"A"},{"encoded":"B"},{"encoded":"C"}]}`,
			wantType:   LoadTypeSearch,
			wantTracks: 3,
		},
		{
			name:       "no discriminator with tracks field",
			body:       `{"tracks":[{"encoded":"A"}]}`,
			wantType:   LoadTypeSearch,
			wantTracks: 1,
		},
		{
			name:     "invalid JSON",
			body:     `{not json`,
			wantType: LoadTypeError,
		},
		{
			name:       "unrecognized object shape degrades to empty",
			body:       `{"something":"else"}`,
			wantType:   LoadTypeEmpty,
			wantTracks: 0,
		},
		{
			name:     "scalar body degrades to empty",
			body:     `42`,
			wantType: LoadTypeEmpty,
		},
		{
			name:       "non-object entries are skipped",
			body:       `{"tracks":[42,"nope",{"encoded":"A"}]}`,
			wantType:   LoadTypeSearch,
			wantTracks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseLoadResult([]byte(tt.body))

			if result.Type != tt.wantType {
				t.Errorf("Type = %q, expected %q", result.Type, tt.wantType)
			}
			if len(result.Tracks) != tt.wantTracks {
				t.Errorf("len(Tracks) = %d, expected %d", len(result.Tracks), tt.wantTracks)
			}
			if tt.wantMsg != "" && result.ErrorMessage != tt.wantMsg {
				t.Errorf("ErrorMessage = %q, expected %q", result.ErrorMessage, tt.wantMsg)
			}
			if tt.wantType == LoadTypeError && result.ErrorMessage == "" {
				t.Error("expected non-empty error message for error result")
			}
		})
	}
}

func TestParseLoadResult_TrackFields(t *testing.T) {
	body := `{"loadType":"track","data":{"encoded":"X","info":{"title":"T","author":"A","uri":"https://example.com/t","length":90000}}}`

	result := ParseLoadResult([]byte(body))
	if len(result.Tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(result.Tracks))
	}

	track := result.Tracks[0]
	if track.Encoded != "X" {
		t.Errorf("Encoded = %q, expected %q", track.Encoded, "X")
	}
	if track.Title != "T" {
		t.Errorf("Title = %q, expected %q", track.Title, "T")
	}
	if track.Author != "A" {
		t.Errorf("Author = %q, expected %q", track.Author, "A")
	}
	if track.URI != "https://example.com/t" {
		t.Errorf("URI = %q, expected %q", track.URI, "https://example.com/t")
	}
	if track.Duration != 90*time.Second {
		t.Errorf("Duration = %v, expected %v", track.Duration, 90*time.Second)
	}
}

func TestParseLoadResult_LegacyTrackKey(t *testing.T) {
	body := `[{"encoded":"X","track":{"title":"legacy","author":"A"}}]`

	result := ParseLoadResult([]byte(body))
	if len(result.Tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(result.Tracks))
	}
	if result.Tracks[0].Title != "legacy" {
		t.Errorf("Title = %q, expected %q", result.Tracks[0].Title, "legacy")
	}
}

func TestParseLoadResult_MissingMetadataDefaultsEmpty(t *testing.T) {
	result := ParseLoadResult([]byte(`[{"encoded":"X"}]`))
	if len(result.Tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(result.Tracks))
	}

	track := result.Tracks[0]
	if track.Title != "" || track.Author != "" || track.URI != "" || track.Duration != 0 {
		t.Errorf("expected zero metadata, got %+v", track)
	}
}
