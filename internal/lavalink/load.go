package lavalink

import (
	"encoding/json"
	"time"
)

// LoadType tags a LoadResult with the kind of outcome a load request had.
type LoadType string

const (
	LoadTypeTrack    LoadType = "track"
	LoadTypePlaylist LoadType = "playlist"
	LoadTypeSearch   LoadType = "search"
	LoadTypeEmpty    LoadType = "empty"
	LoadTypeError    LoadType = "error"
)

// Track is one playable result from a load request. Encoded is the opaque
// server-issued handle passed back verbatim when starting playback; the rest
// is best-effort display metadata.
type Track struct {
	Encoded  string
	Title    string
	Author   string
	URI      string
	Duration time.Duration
}

// LoadResult is the normalized outcome of a /loadtracks request, regardless
// of which upstream response shape produced it.
type LoadResult struct {
	Type         LoadType
	Tracks       []Track
	ErrorMessage string
}

// ParseLoadResult converts a raw /loadtracks response body into a LoadResult.
//
// Lavalink has shipped at least two incompatible response shapes: v3 returned
// a bare array of track objects, v4 returns a tagged object with the payload
// under "data". Rather than pinning one protocol version, the track list is
// located by trying a fixed sequence of shapes and taking the first match.
// Malformed JSON becomes a typed error result; any other unexpected shape
// degrades to an empty result. This function never panics.
func ParseLoadResult(body []byte) LoadResult {
	var root any
	if err := json.Unmarshal(body, &root); err != nil {
		return LoadResult{
			Type:         LoadTypeError,
			ErrorMessage: "invalid JSON from loadtracks: " + err.Error(),
		}
	}

	switch v := root.(type) {
	case []any:
		// v3 shape: the response is itself the track list.
		return LoadResult{Type: LoadTypeSearch, Tracks: decodeTracks(v)}
	case map[string]any:
		return parseLoadObject(v)
	default:
		return LoadResult{Type: LoadTypeEmpty}
	}
}

func parseLoadObject(obj map[string]any) LoadResult {
	loadType, _ := obj["loadType"].(string)
	if loadType == "" {
		// some servers spell the discriminator "type"
		loadType, _ = obj["type"].(string)
	}

	switch loadType {
	case "empty":
		return LoadResult{Type: LoadTypeEmpty}

	case "error":
		msg := "unknown load error from lavalink"
		if data, ok := obj["data"].(map[string]any); ok {
			if m, ok := data["message"].(string); ok && m != "" {
				msg = m
			}
		}
		return LoadResult{Type: LoadTypeError, ErrorMessage: msg}

	case "track":
		// single result directly under "data"
		if data, ok := obj["data"].(map[string]any); ok {
			if track, ok := decodeTrack(data); ok {
				return LoadResult{Type: LoadTypeTrack, Tracks: []Track{track}}
			}
		}
		return LoadResult{Type: LoadTypeEmpty}

	case "playlist":
		return LoadResult{Type: LoadTypePlaylist, Tracks: locateTracks(obj)}

	case "search":
		return LoadResult{Type: LoadTypeSearch, Tracks: locateTracks(obj)}
	}

	// No recognized discriminator: fall back to shape detection alone.
	tracks := locateTracks(obj)
	if len(tracks) == 0 {
		return LoadResult{Type: LoadTypeEmpty}
	}
	return LoadResult{Type: LoadTypeSearch, Tracks: tracks}
}

// trackListLocators are the known places a track list can live inside an
// object-shaped response, tried in order. First match wins.
var trackListLocators = []func(map[string]any) ([]any, bool){
	func(obj map[string]any) ([]any, bool) {
		list, ok := obj["tracks"].([]any)
		return list, ok
	},
	func(obj map[string]any) ([]any, bool) {
		list, ok := obj["data"].([]any)
		return list, ok
	},
	func(obj map[string]any) ([]any, bool) {
		data, ok := obj["data"].(map[string]any)
		if !ok {
			return nil, false
		}
		list, ok := data["tracks"].([]any)
		return list, ok
	},
}

func locateTracks(obj map[string]any) []Track {
	for _, locate := range trackListLocators {
		if list, ok := locate(obj); ok {
			return decodeTracks(list)
		}
	}
	return nil
}

func decodeTracks(list []any) []Track {
	tracks := make([]Track, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if track, ok := decodeTrack(obj); ok {
			tracks = append(tracks, track)
		}
	}
	return tracks
}

// decodeTrack extracts a Track from one candidate object. A candidate without
// an encoded handle cannot be played and is dropped, not treated as an error.
func decodeTrack(obj map[string]any) (Track, bool) {
	encoded, _ := obj["encoded"].(string)
	if encoded == "" {
		return Track{}, false
	}

	track := Track{Encoded: encoded}

	info, ok := obj["info"].(map[string]any)
	if !ok {
		// legacy clients nest the metadata under "track"
		info, ok = obj["track"].(map[string]any)
	}
	if ok {
		track.Title, _ = info["title"].(string)
		track.Author, _ = info["author"].(string)
		track.URI, _ = info["uri"].(string)
		if length, ok := info["length"].(float64); ok && length > 0 {
			track.Duration = time.Duration(length) * time.Millisecond
		}
	}

	return track, true
}
