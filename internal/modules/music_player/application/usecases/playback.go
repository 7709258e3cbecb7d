package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/freechasers/fcbot/internal/modules/music_player/application/ports"
	"github.com/freechasers/fcbot/internal/modules/music_player/domain"
)

// PlaybackService owns the per-guild queue and relays playback intents to the
// audio server. The server is only ever told what to do next; which track
// that is gets decided here.
type PlaybackService struct {
	repo     domain.PlayerStateRepository
	player   ports.AudioPlayer
	resolver ports.TrackResolver
}

// NewPlaybackService creates a new PlaybackService.
func NewPlaybackService(
	repo domain.PlayerStateRepository,
	player ports.AudioPlayer,
	resolver ports.TrackResolver,
) *PlaybackService {
	return &PlaybackService{
		repo:     repo,
		player:   player,
		resolver: resolver,
	}
}

// PlayInput contains the input for the Play use case.
type PlayInput struct {
	GuildID snowflake.ID
	Query   string
}

// PlayOutput contains the result of the Play use case.
type PlayOutput struct {
	Track      *domain.Track
	StartedNow bool
	Position   int // 1-based queue position of the added track
}

// Play resolves a query, enqueues the first result, and starts playback when
// nothing was playing yet.
func (s *PlaybackService) Play(ctx context.Context, input PlayInput) (*PlayOutput, error) {
	query := domain.NewSearchQuery(input.Query)
	if !query.IsValid() {
		return nil, ErrEmptyQuery
	}

	result, err := s.resolver.LoadTracks(ctx, query.Identifier())
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", input.Query, err)
	}

	switch {
	case result.Type == ports.LoadTypeError:
		return nil, fmt.Errorf("%w: %s", ErrLoadFailed, result.ErrorMessage)
	case len(result.Tracks) == 0:
		return nil, ErrNoResults
	}

	track := result.Tracks[0]

	state, ok := s.repo.Get(input.GuildID)
	if !ok {
		state = domain.NewPlayerState(input.GuildID)
	}

	startNow := state.IsEmpty()
	position := state.Enqueue(track)

	if startNow {
		if err := s.player.Play(ctx, input.GuildID, track, state.Volume); err != nil {
			return nil, fmt.Errorf("start playback: %w", err)
		}
		state.Paused = false
	}

	s.repo.Save(state)

	slog.Info("queued track",
		"guild", input.GuildID,
		"track", track.DisplayTitle(),
		"position", position,
		"started", startNow,
	)

	return &PlayOutput{
		Track:      track,
		StartedNow: startNow,
		Position:   position,
	}, nil
}

// TogglePause flips the guild's pause state and returns the new value.
func (s *PlaybackService) TogglePause(ctx context.Context, guildID snowflake.ID) (bool, error) {
	state, ok := s.repo.Get(guildID)
	if !ok || state.IsEmpty() {
		return false, ErrNotPlaying
	}

	paused := state.TogglePause()
	if err := s.player.Pause(ctx, guildID, paused); err != nil {
		return false, err
	}

	s.repo.Save(state)
	return paused, nil
}

// Stop halts playback and clears the guild's queue and state. The local state
// is dropped even when the server call fails; the caller learns about the
// failure either way.
func (s *PlaybackService) Stop(ctx context.Context, guildID snowflake.ID) error {
	err := s.player.Stop(ctx, guildID)
	s.repo.Delete(guildID)
	return err
}

// SetVolume stores and relays a clamped volume, returning the value sent.
func (s *PlaybackService) SetVolume(
	ctx context.Context,
	guildID snowflake.ID,
	percent int,
) (int, error) {
	state, ok := s.repo.Get(guildID)
	if !ok {
		state = domain.NewPlayerState(guildID)
	}

	volume := state.SetVolume(percent)
	if err := s.player.SetVolume(ctx, guildID, volume); err != nil {
		return 0, err
	}

	s.repo.Save(state)
	return volume, nil
}

// Seek moves playback of the current track to the given position.
func (s *PlaybackService) Seek(
	ctx context.Context,
	guildID snowflake.ID,
	position time.Duration,
) error {
	state, ok := s.repo.Get(guildID)
	if !ok || state.Current() == nil {
		return ErrNotPlaying
	}

	return s.player.Seek(ctx, guildID, position)
}

// Queue returns a copy of the guild's player state for display.
func (s *PlaybackService) Queue(guildID snowflake.ID) (domain.PlayerState, error) {
	state, ok := s.repo.Get(guildID)
	if !ok || state.IsEmpty() {
		return domain.PlayerState{}, ErrQueueEmpty
	}

	// copy the track list so callers cannot mutate the stored queue
	tracks := make([]*domain.Track, len(state.Tracks))
	copy(tracks, state.Tracks)
	state.Tracks = tracks

	return state, nil
}
