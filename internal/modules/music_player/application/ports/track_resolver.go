package ports

import (
	"context"

	"github.com/freechasers/fcbot/internal/modules/music_player/domain"
)

// LoadType represents the kind of result a track load produced.
type LoadType string

const (
	LoadTypeTrack    LoadType = "track"
	LoadTypePlaylist LoadType = "playlist"
	LoadTypeSearch   LoadType = "search"
	LoadTypeEmpty    LoadType = "empty"
	LoadTypeError    LoadType = "error"
)

// LoadResult represents the result of loading tracks.
type LoadResult struct {
	Type         LoadType
	Tracks       []*domain.Track
	ErrorMessage string
}

// TrackResolver resolves a loadtracks identifier into playable tracks.
type TrackResolver interface {
	LoadTracks(ctx context.Context, identifier string) (*LoadResult, error)
}
