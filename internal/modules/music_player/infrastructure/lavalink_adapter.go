package infrastructure

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/freechasers/fcbot/internal/lavalink"
	"github.com/freechasers/fcbot/internal/modules/music_player/application/ports"
	"github.com/freechasers/fcbot/internal/modules/music_player/domain"
)

// LavalinkAdapter implements the playback ports on top of the in-house
// lavalink client.
type LavalinkAdapter struct {
	node *lavalink.Node
}

// NewLavalinkAdapter creates a new LavalinkAdapter.
func NewLavalinkAdapter(node *lavalink.Node) *LavalinkAdapter {
	return &LavalinkAdapter{node: node}
}

// Play starts playback of the given track at the given volume.
func (a *LavalinkAdapter) Play(
	ctx context.Context,
	guildID snowflake.ID,
	track *domain.Track,
	volume int,
) error {
	return a.node.Play(ctx, guildID, track.Encoded, lavalink.PlayOptions{
		Volume: &volume,
	})
}

// Stop stops the current playback.
func (a *LavalinkAdapter) Stop(ctx context.Context, guildID snowflake.ID) error {
	return a.node.Stop(ctx, guildID)
}

// Pause pauses or resumes the current playback.
func (a *LavalinkAdapter) Pause(ctx context.Context, guildID snowflake.ID, paused bool) error {
	return a.node.Pause(ctx, guildID, paused)
}

// SetVolume sets the playback volume.
func (a *LavalinkAdapter) SetVolume(ctx context.Context, guildID snowflake.ID, percent int) error {
	return a.node.SetVolume(ctx, guildID, percent)
}

// Seek moves playback to the given position.
func (a *LavalinkAdapter) Seek(
	ctx context.Context,
	guildID snowflake.ID,
	position time.Duration,
) error {
	return a.node.Seek(ctx, guildID, position)
}

// LoadTracks resolves an identifier into playable tracks, converting the
// client's load result into the module's types.
func (a *LavalinkAdapter) LoadTracks(
	ctx context.Context,
	identifier string,
) (*ports.LoadResult, error) {
	result, err := a.node.LoadTracks(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return convertLoadResult(result), nil
}

func convertLoadResult(result lavalink.LoadResult) *ports.LoadResult {
	tracks := make([]*domain.Track, 0, len(result.Tracks))
	for _, track := range result.Tracks {
		tracks = append(tracks, domain.NewTrack(
			track.Encoded,
			track.Title,
			track.Author,
			track.URI,
			track.Duration,
		))
	}

	return &ports.LoadResult{
		Type:         ports.LoadType(result.Type),
		Tracks:       tracks,
		ErrorMessage: result.ErrorMessage,
	}
}

// Ensure LavalinkAdapter implements the playback ports.
var (
	_ ports.AudioPlayer   = (*LavalinkAdapter)(nil)
	_ ports.TrackResolver = (*LavalinkAdapter)(nil)
)
