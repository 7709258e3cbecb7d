package domain

import (
	"github.com/disgoorg/snowflake/v2"
)

// Volume bounds accepted by the audio server.
const (
	MinVolume     = 0
	MaxVolume     = 1000
	DefaultVolume = 100
)

// ClampVolume forces a volume into the accepted range.
func ClampVolume(percent int) int {
	if percent < MinVolume {
		return MinVolume
	}
	if percent > MaxVolume {
		return MaxVolume
	}
	return percent
}

// PlayerState is the per-guild playback state owned by the bot: a FIFO track
// queue (index 0 is the playing track), the pause toggle, and the persisted
// volume. The audio server itself holds no queue; this is the only place the
// "what plays next" decision lives.
type PlayerState struct {
	GuildID snowflake.ID
	Tracks  []*Track
	Paused  bool
	Volume  int
}

// NewPlayerState creates an empty PlayerState with the default volume.
func NewPlayerState(guildID snowflake.ID) PlayerState {
	return PlayerState{
		GuildID: guildID,
		Volume:  DefaultVolume,
	}
}

// Enqueue appends a track and returns its 1-based queue position.
func (p *PlayerState) Enqueue(track *Track) int {
	p.Tracks = append(p.Tracks, track)
	return len(p.Tracks)
}

// Current returns the playing track, or nil when the queue is empty.
func (p *PlayerState) Current() *Track {
	if len(p.Tracks) == 0 {
		return nil
	}
	return p.Tracks[0]
}

// Advance drops the current track and returns the next one, if any.
func (p *PlayerState) Advance() *Track {
	if len(p.Tracks) == 0 {
		return nil
	}
	p.Tracks = p.Tracks[1:]
	return p.Current()
}

// IsEmpty reports whether nothing is queued or playing.
func (p *PlayerState) IsEmpty() bool {
	return len(p.Tracks) == 0
}

// TogglePause flips the pause flag and returns the new value.
func (p *PlayerState) TogglePause() bool {
	p.Paused = !p.Paused
	return p.Paused
}

// SetVolume stores a clamped volume and returns the value actually kept.
func (p *PlayerState) SetVolume(percent int) int {
	p.Volume = ClampVolume(percent)
	return p.Volume
}
