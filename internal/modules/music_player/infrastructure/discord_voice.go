package infrastructure

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/freechasers/fcbot/internal/modules/music_player/application/ports"
)

// DiscordVoiceConnection moves the bot in and out of voice channels through
// the discordgo session. The gateway acknowledges with voice state and voice
// server events, which the module feeds into the lavalink client.
type DiscordVoiceConnection struct {
	session *discordgo.Session
}

// NewDiscordVoiceConnection creates a new DiscordVoiceConnection.
func NewDiscordVoiceConnection(session *discordgo.Session) *DiscordVoiceConnection {
	return &DiscordVoiceConnection{session: session}
}

// JoinChannel asks the gateway to move the bot into a voice channel. The
// manual variant is used so discordgo does not open its own voice UDP
// connection; audio is the lavalink node's job.
func (c *DiscordVoiceConnection) JoinChannel(guildID, channelID snowflake.ID) error {
	err := c.session.ChannelVoiceJoinManual(guildID.String(), channelID.String(), false, true)
	if err != nil {
		return fmt.Errorf("failed to join voice channel: %w", err)
	}
	return nil
}

// LeaveChannel disconnects the bot from voice in the guild.
func (c *DiscordVoiceConnection) LeaveChannel(guildID snowflake.ID) error {
	if err := c.session.ChannelVoiceJoinManual(guildID.String(), "", false, true); err != nil {
		return fmt.Errorf("failed to leave voice channel: %w", err)
	}
	return nil
}

// Ensure DiscordVoiceConnection implements VoiceConnection.
var _ ports.VoiceConnection = (*DiscordVoiceConnection)(nil)
