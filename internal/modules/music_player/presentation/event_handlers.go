package presentation

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/freechasers/fcbot/internal/lavalink"
)

// sessionTimeoutSeconds is how long the audio server keeps a resumable
// session alive after the bot drops.
const sessionTimeoutSeconds = 60

// EventHandlers feeds Discord gateway events into the lavalink node: the
// voice handshake halves, and the Ready signal that configures the session.
type EventHandlers struct {
	node       *lavalink.Node
	ensureOnce sync.Once
}

// NewEventHandlers creates a new EventHandlers.
func NewEventHandlers(node *lavalink.Node) *EventHandlers {
	return &EventHandlers{node: node}
}

// HandleReady configures the lavalink session once the gateway is up. Later
// Ready events (gateway reconnects) do not re-run it; player updates re-ensure
// the session lazily if it was lost.
func (h *EventHandlers) HandleReady(_ *discordgo.Session, _ *discordgo.Ready) {
	h.ensureOnce.Do(func() {
		if err := h.node.EnsureSession(context.Background(), true, sessionTimeoutSeconds); err != nil {
			slog.Error("failed to configure lavalink session", "error", err)
		}
	})
}

// HandleVoiceStateUpdate relays the bot's own voice session to the node.
func (h *EventHandlers) HandleVoiceStateUpdate(
	s *discordgo.Session,
	event *discordgo.VoiceStateUpdate,
) {
	// Only the bot's own voice state matters for the handshake.
	if s.State.User == nil || event.UserID != s.State.User.ID {
		return
	}

	guildID, err := snowflake.Parse(event.GuildID)
	if err != nil {
		slog.Error("failed to parse guild ID in voice state update", "error", err)
		return
	}

	channelPresent := event.ChannelID != ""
	err = h.node.OnVoiceStateUpdate(context.Background(), guildID, event.SessionID, channelPresent)
	if err != nil {
		slog.Error("failed to relay voice state", "guild", guildID, "error", err)
	}
}

// HandleVoiceServerUpdate relays the voice server assignment to the node.
func (h *EventHandlers) HandleVoiceServerUpdate(
	_ *discordgo.Session,
	event *discordgo.VoiceServerUpdate,
) {
	guildID, err := snowflake.Parse(event.GuildID)
	if err != nil {
		slog.Error("failed to parse guild ID in voice server update", "error", err)
		return
	}

	err = h.node.OnVoiceServerUpdate(context.Background(), guildID, event.Token, event.Endpoint)
	if err != nil {
		slog.Error("failed to relay voice server", "guild", guildID, "error", err)
	}
}
