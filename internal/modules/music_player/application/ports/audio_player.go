package ports

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/freechasers/fcbot/internal/modules/music_player/domain"
)

// AudioPlayer relays one-shot playback intents to the audio server. It holds
// no play/pause/queue state of its own; the use case layer owns that.
type AudioPlayer interface {
	// Play starts playback of the given track at the given volume.
	Play(ctx context.Context, guildID snowflake.ID, track *domain.Track, volume int) error

	// Stop stops the current playback.
	Stop(ctx context.Context, guildID snowflake.ID) error

	// Pause pauses or resumes the current playback.
	Pause(ctx context.Context, guildID snowflake.ID, paused bool) error

	// SetVolume sets the playback volume (0-1000).
	SetVolume(ctx context.Context, guildID snowflake.ID, percent int) error

	// Seek moves playback to the given position.
	Seek(ctx context.Context, guildID snowflake.ID, position time.Duration) error
}
