package domain

import (
	"testing"
	"time"
)

const testGuildID = 123456789012345678

func TestPlayerState_EnqueueAndCurrent(t *testing.T) {
	state := NewPlayerState(testGuildID)

	if state.Current() != nil {
		t.Error("expected no current track for empty state")
	}
	if !state.IsEmpty() {
		t.Error("expected new state to be empty")
	}

	first := NewTrack("A", "first", "", "", time.Minute)
	second := NewTrack("B", "second", "", "", time.Minute)

	if pos := state.Enqueue(first); pos != 1 {
		t.Errorf("first Enqueue position = %d, expected 1", pos)
	}
	if pos := state.Enqueue(second); pos != 2 {
		t.Errorf("second Enqueue position = %d, expected 2", pos)
	}

	if state.Current() != first {
		t.Error("expected first enqueued track to be current")
	}
}

func TestPlayerState_Advance(t *testing.T) {
	state := NewPlayerState(testGuildID)
	first := NewTrack("A", "first", "", "", time.Minute)
	second := NewTrack("B", "second", "", "", time.Minute)
	state.Enqueue(first)
	state.Enqueue(second)

	if next := state.Advance(); next != second {
		t.Error("expected Advance to return the second track")
	}
	if next := state.Advance(); next != nil {
		t.Error("expected Advance on last track to return nil")
	}
	if !state.IsEmpty() {
		t.Error("expected state to be empty after advancing past the end")
	}
	if state.Advance() != nil {
		t.Error("expected Advance on empty state to return nil")
	}
}

func TestPlayerState_TogglePause(t *testing.T) {
	state := NewPlayerState(testGuildID)

	if paused := state.TogglePause(); !paused {
		t.Error("expected first toggle to pause")
	}
	if paused := state.TogglePause(); paused {
		t.Error("expected second toggle to resume")
	}
}

func TestPlayerState_SetVolumeClamps(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{input: -5, want: 0},
		{input: 0, want: 0},
		{input: 100, want: 100},
		{input: 5000, want: 1000},
	}

	for _, tt := range tests {
		state := NewPlayerState(testGuildID)
		if got := state.SetVolume(tt.input); got != tt.want {
			t.Errorf("SetVolume(%d) = %d, expected %d", tt.input, got, tt.want)
		}
		if state.Volume != tt.want {
			t.Errorf("Volume = %d, expected %d", state.Volume, tt.want)
		}
	}
}

func TestPlayerState_DefaultVolume(t *testing.T) {
	state := NewPlayerState(testGuildID)
	if state.Volume != DefaultVolume {
		t.Errorf("Volume = %d, expected %d", state.Volume, DefaultVolume)
	}
}
