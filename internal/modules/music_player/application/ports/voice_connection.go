package ports

import (
	"github.com/disgoorg/snowflake/v2"
)

// VoiceConnection controls the bot's Discord-side voice channel membership.
// The resulting voice events flow back through the module's event handlers.
type VoiceConnection interface {
	// JoinChannel asks the gateway to move the bot into a voice channel.
	JoinChannel(guildID, channelID snowflake.ID) error

	// LeaveChannel disconnects the bot from voice in the guild.
	LeaveChannel(guildID snowflake.ID) error
}
