package lavalink

import (
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

// VoiceState holds the three pieces of Discord voice handshake data Lavalink
// needs before it can join a voice call. SessionID arrives with the voice
// state update, Token and Endpoint together with the voice server update, in
// no guaranteed order.
type VoiceState struct {
	SessionID string
	Token     string
	Endpoint  string
}

// Complete reports whether all three handshake fields are present.
// Readiness is always derived from the fields, never cached.
func (s VoiceState) Complete() bool {
	return s.SessionID != "" && s.Token != "" && s.Endpoint != ""
}

// VoiceStateStore aggregates per-guild voice handshake fragments.
// It performs no network calls; pushing completed handshakes to the node is
// the caller's job.
type VoiceStateStore struct {
	mu     sync.Mutex
	states map[snowflake.ID]VoiceState
}

// NewVoiceStateStore creates an empty VoiceStateStore.
func NewVoiceStateStore() *VoiceStateStore {
	return &VoiceStateStore{
		states: make(map[snowflake.ID]VoiceState),
	}
}

// OnVoiceConnect records the voice session id from a voice state update and
// reports whether the guild's handshake is now complete. A missing channel
// means the bot left voice; the guild's record is dropped entirely.
func (s *VoiceStateStore) OnVoiceConnect(
	guildID snowflake.ID,
	sessionID string,
	channelPresent bool,
) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !channelPresent {
		delete(s.states, guildID)
		return false
	}

	state := s.states[guildID]
	state.SessionID = sessionID
	s.states[guildID] = state

	return state.Complete()
}

// OnVoiceServerAssigned records the voice server token and endpoint and
// reports whether the guild's handshake is now complete.
func (s *VoiceStateStore) OnVoiceServerAssigned(
	guildID snowflake.ID,
	token, endpoint string,
) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.states[guildID]
	state.Token = token
	state.Endpoint = endpoint
	s.states[guildID] = state

	return state.Complete()
}

// Snapshot returns a copy of the guild's handshake, or false if any fragment
// is still missing. Callers get a copy so later events cannot race with them.
func (s *VoiceStateStore) Snapshot(guildID snowflake.ID) (VoiceState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[guildID]
	if !ok || !state.Complete() {
		return VoiceState{}, false
	}
	return state, true
}
