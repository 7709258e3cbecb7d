package domain

import (
	"github.com/disgoorg/snowflake/v2"
)

// PlayerStateRepository stores per-guild player state.
type PlayerStateRepository interface {
	// Get returns the PlayerState for the given guild.
	Get(guildID snowflake.ID) (PlayerState, bool)

	// Save stores the PlayerState.
	Save(state PlayerState)

	// Delete removes the PlayerState for the given guild.
	Delete(guildID snowflake.ID)
}
