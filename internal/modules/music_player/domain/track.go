package domain

import (
	"strconv"
	"time"
)

// Track represents a playable audio track. Encoded is the opaque handle the
// audio server issued for it; everything else is best-effort display data.
type Track struct {
	Encoded  string
	Title    string
	Author   string
	URI      string
	Duration time.Duration
}

// NewTrack creates a new Track.
func NewTrack(encoded, title, author, uri string, duration time.Duration) *Track {
	return &Track{
		Encoded:  encoded,
		Title:    title,
		Author:   author,
		URI:      uri,
		Duration: duration,
	}
}

// IsValid returns true if the track can actually be played.
func (t *Track) IsValid() bool {
	return t.Encoded != ""
}

// DisplayTitle returns the title, or a placeholder when missing.
func (t *Track) DisplayTitle() string {
	if t.Title == "" {
		return "(unknown title)"
	}
	return t.Title
}

// FormattedDuration returns the duration as mm:ss or hh:mm:ss.
func (t *Track) FormattedDuration() string {
	totalSeconds := int(t.Duration.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return pad(hours) + ":" + pad(minutes) + ":" + pad(seconds)
	}
	return pad(minutes) + ":" + pad(seconds)
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
