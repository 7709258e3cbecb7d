package usecases

import "errors"

// Domain errors for the music player module.
var (
	// ErrEmptyQuery is returned when a play request has no usable query.
	ErrEmptyQuery = errors.New("no query provided")

	// ErrNoResults is returned when a search yields no playable tracks.
	ErrNoResults = errors.New("no tracks found for that query")

	// ErrLoadFailed is returned when the audio server reports a load error.
	ErrLoadFailed = errors.New("failed to load track")

	// ErrNotPlaying is returned when no track is currently playing.
	ErrNotPlaying = errors.New("nothing is currently playing")

	// ErrQueueEmpty is returned when the queue is empty.
	ErrQueueEmpty = errors.New("the queue is currently empty")

	// ErrUserNotInVoice is returned when the requesting user is not in a
	// voice channel the bot could join.
	ErrUserNotInVoice = errors.New("you must be in a voice channel")
)
