// Package lavalink is a minimal client for the Lavalink v4 REST API.
//
// It covers what this bot actually needs from a node: aggregating the Discord
// voice handshake per guild, resolving queries into playable tracks, and
// driving the per-guild player resource with partial updates. It deliberately
// does not speak the Lavalink websocket; playback events are not consumed.
package lavalink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

const (
	// defaultSessionID is used when the configuration does not name one.
	defaultSessionID = "default"

	// sessionTimeoutSeconds is the resume window requested from the node.
	sessionTimeoutSeconds = 60
)

// Config holds the connection parameters for one Lavalink node.
type Config struct {
	Host      string
	Port      int
	Secure    bool
	Password  string
	SessionID string
}

// Node is a client for a single Lavalink node. All player operations are
// addressed by (session id, guild id); the session id is shared across
// guilds.
//
// Methods must not be called from the goroutine that drives the Discord
// gateway websocket read loop: every call blocks until the node responds or
// the bounded wait expires.
type Node struct {
	rest  *restClient
	voice *VoiceStateStore

	mu        sync.Mutex
	sessionID string
	ensured   bool

	guildMu sync.Mutex
	guilds  map[snowflake.ID]*sync.Mutex
}

// New creates a Node for the given configuration. No network traffic happens
// here; call EnsureSession once the host process is fully running.
func New(cfg Config) *Node {
	if cfg.SessionID == "" {
		cfg.SessionID = defaultSessionID
	}

	slog.Info("configured lavalink node",
		"host", cfg.Host,
		"port", cfg.Port,
		"secure", cfg.Secure,
		"session_id", cfg.SessionID,
	)

	return &Node{
		rest:      newRestClient(cfg),
		voice:     NewVoiceStateStore(),
		sessionID: cfg.SessionID,
		guilds:    make(map[snowflake.ID]*sync.Mutex),
	}
}

// SessionID returns the current session id.
func (n *Node) SessionID() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sessionID
}

// SetSessionID replaces the session id, e.g. with one assigned by the node.
func (n *Node) SetSessionID(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sessionID = id
	n.ensured = false
}

type sessionUpdate struct {
	Resuming bool `json:"resuming"`
	Timeout  int  `json:"timeout"`
}

// EnsureSession idempotently creates or refreshes the session resource on the
// node. It must not be called before the host's own event loop is live; the
// usual place is the first gateway ready signal. On failure the session id is
// left untouched and player operations will retry the ensure lazily.
func (n *Node) EnsureSession(ctx context.Context, resuming bool, timeoutSeconds int) error {
	sessionID := n.SessionID()
	if sessionID == "" {
		return ErrNoSession
	}

	body, err := json.Marshal(sessionUpdate{Resuming: resuming, Timeout: timeoutSeconds})
	if err != nil {
		return fmt.Errorf("marshal session update: %w", err)
	}

	path := "/v4/sessions/" + url.PathEscape(sessionID)
	if _, err := n.rest.do(ctx, http.MethodPatch, path, body); err != nil {
		return fmt.Errorf("ensure session %q: %w", sessionID, err)
	}

	n.mu.Lock()
	n.ensured = true
	n.mu.Unlock()

	slog.Info("lavalink session ready", "session_id", sessionID)
	return nil
}

// LoadTracks resolves an identifier (URL or prefixed search query) into a
// normalized LoadResult. Transport and upstream failures are returned as
// errors; response-shape problems are folded into the result itself.
func (n *Node) LoadTracks(ctx context.Context, identifier string) (LoadResult, error) {
	path := "/v4/loadtracks?identifier=" + url.QueryEscape(identifier)

	body, err := n.rest.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return LoadResult{}, fmt.Errorf("load tracks: %w", err)
	}
	if len(body) == 0 {
		return LoadResult{Type: LoadTypeEmpty}, nil
	}

	result := ParseLoadResult(body)
	slog.Debug("loaded tracks",
		"identifier", identifier,
		"load_type", result.Type,
		"tracks", len(result.Tracks),
	)
	return result, nil
}

// OnVoiceStateUpdate feeds a Discord voice state update for this bot into the
// handshake store. When the guild's handshake completes, the voice data is
// pushed to the node's player so audio can start.
func (n *Node) OnVoiceStateUpdate(
	ctx context.Context,
	guildID snowflake.ID,
	sessionID string,
	channelPresent bool,
) error {
	if !n.voice.OnVoiceConnect(guildID, sessionID, channelPresent) {
		return nil
	}
	return n.pushVoiceUpdate(ctx, guildID)
}

// OnVoiceServerUpdate feeds a Discord voice server update into the handshake
// store, pushing the handshake to the node once complete.
func (n *Node) OnVoiceServerUpdate(
	ctx context.Context,
	guildID snowflake.ID,
	token, endpoint string,
) error {
	if !n.voice.OnVoiceServerAssigned(guildID, token, endpoint) {
		return nil
	}
	return n.pushVoiceUpdate(ctx, guildID)
}

// VoiceSnapshot exposes the guild's completed handshake, if any.
func (n *Node) VoiceSnapshot(guildID snowflake.ID) (VoiceState, bool) {
	return n.voice.Snapshot(guildID)
}

func (n *Node) pushVoiceUpdate(ctx context.Context, guildID snowflake.ID) error {
	state, ok := n.voice.Snapshot(guildID)
	if !ok {
		return nil
	}

	slog.Debug("voice handshake complete", "guild", guildID, "endpoint", state.Endpoint)

	update := playerUpdate{Voice: newVoicePayload(state)}
	return n.sendPlayerUpdate(ctx, guildID, update, false)
}

// PlayOptions carries the optional parameters of Play.
type PlayOptions struct {
	// NoReplace leaves an already-playing track alone instead of replacing it.
	NoReplace bool
	// Position starts playback at an offset into the track.
	Position *time.Duration
	// Volume sets the player volume (0-1000) together with the track.
	Volume *int
}

// Play starts playback of an encoded track on the guild's player. If the
// guild's voice handshake is complete it is merged into the update; if not,
// the node holds the track until a later voice update arrives.
func (n *Node) Play(
	ctx context.Context,
	guildID snowflake.ID,
	encoded string,
	opts PlayOptions,
) error {
	update := playerUpdate{
		Track: &trackPayload{Encoded: &encoded},
	}

	if opts.Position != nil {
		ms := clampPosition(*opts.Position).Milliseconds()
		update.Position = &ms
	}
	if opts.Volume != nil {
		volume := clampVolume(*opts.Volume)
		update.Volume = &volume
	}
	if state, ok := n.voice.Snapshot(guildID); ok {
		update.Voice = newVoicePayload(state)
	}

	slog.Info("sending play", "guild", guildID, "no_replace", opts.NoReplace)
	return n.sendPlayerUpdate(ctx, guildID, update, opts.NoReplace)
}

// Stop halts playback by explicitly nulling the player's track. This is
// distinct from never having sent a track at all.
func (n *Node) Stop(ctx context.Context, guildID snowflake.ID) error {
	update := playerUpdate{
		Track: &trackPayload{Encoded: nil},
	}

	slog.Info("sending stop", "guild", guildID)
	return n.sendPlayerUpdate(ctx, guildID, update, false)
}

// Pause relays a pause or resume intent. The node tracks no play/pause state
// of its own; the caller owns the toggle.
func (n *Node) Pause(ctx context.Context, guildID snowflake.ID, paused bool) error {
	update := playerUpdate{Paused: &paused}

	slog.Info("sending pause", "guild", guildID, "paused", paused)
	return n.sendPlayerUpdate(ctx, guildID, update, false)
}

// SetVolume sets the player volume, silently clamping to [0, 1000].
func (n *Node) SetVolume(ctx context.Context, guildID snowflake.ID, percent int) error {
	volume := clampVolume(percent)
	update := playerUpdate{Volume: &volume}

	slog.Info("sending volume", "guild", guildID, "volume", volume)
	return n.sendPlayerUpdate(ctx, guildID, update, false)
}

// Seek moves playback to the given position, clamping negatives to zero.
func (n *Node) Seek(ctx context.Context, guildID snowflake.ID, position time.Duration) error {
	ms := clampPosition(position).Milliseconds()
	update := playerUpdate{Position: &ms}

	slog.Info("sending seek", "guild", guildID, "position_ms", ms)
	return n.sendPlayerUpdate(ctx, guildID, update, false)
}

// playerUpdate is a partial update of the node's per-guild player resource.
// Absent fields leave the corresponding player state untouched.
type playerUpdate struct {
	Track    *trackPayload `json:"track,omitempty"`
	Position *int64        `json:"position,omitempty"`
	Volume   *int          `json:"volume,omitempty"`
	Paused   *bool         `json:"paused,omitempty"`
	Voice    *voicePayload `json:"voice,omitempty"`
}

// trackPayload marshals as {"encoded":null} when Encoded is nil, which is the
// v4 stop sentinel.
type trackPayload struct {
	Encoded *string `json:"encoded"`
}

type voicePayload struct {
	Token     string `json:"token"`
	Endpoint  string `json:"endpoint"`
	SessionID string `json:"sessionId"`
}

func newVoicePayload(state VoiceState) *voicePayload {
	return &voicePayload{
		Token:     state.Token,
		Endpoint:  state.Endpoint,
		SessionID: state.SessionID,
	}
}

// sendPlayerUpdate issues the player PATCH. Updates for the same guild are
// serialized client-side so two concurrent intents cannot interleave on the
// wire; distinct guilds proceed independently.
func (n *Node) sendPlayerUpdate(
	ctx context.Context,
	guildID snowflake.ID,
	update playerUpdate,
	noReplace bool,
) error {
	sessionID := n.SessionID()
	if sessionID == "" {
		return ErrNoSession
	}

	if !n.sessionEnsured() {
		if err := n.EnsureSession(ctx, false, sessionTimeoutSeconds); err != nil {
			return err
		}
	}

	lock := n.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("marshal player update: %w", err)
	}

	path := "/v4/sessions/" + url.PathEscape(sessionID) + "/players/" + guildID.String()
	if noReplace {
		path += "?noReplace=true"
	}

	if _, err := n.rest.do(ctx, http.MethodPatch, path, body); err != nil {
		return fmt.Errorf("player update for guild %s: %w", guildID, err)
	}
	return nil
}

func (n *Node) sessionEnsured() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ensured
}

func (n *Node) guildLock(guildID snowflake.ID) *sync.Mutex {
	n.guildMu.Lock()
	defer n.guildMu.Unlock()

	lock, ok := n.guilds[guildID]
	if !ok {
		lock = &sync.Mutex{}
		n.guilds[guildID] = lock
	}
	return lock
}

func clampVolume(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 1000 {
		return 1000
	}
	return percent
}

func clampPosition(position time.Duration) time.Duration {
	if position < 0 {
		return 0
	}
	return position
}
