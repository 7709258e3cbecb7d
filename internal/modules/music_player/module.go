package music_player

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/freechasers/fcbot/internal/bot"
	"github.com/freechasers/fcbot/internal/lavalink"
	"github.com/freechasers/fcbot/internal/modules/music_player/application/usecases"
	"github.com/freechasers/fcbot/internal/modules/music_player/infrastructure"
	"github.com/freechasers/fcbot/internal/modules/music_player/presentation"
)

func init() {
	bot.Register(&MusicPlayerModule{})
}

// Compile-time interface checks.
var (
	_ bot.Module             = (*MusicPlayerModule)(nil)
	_ bot.ConfigurableModule = (*MusicPlayerModule)(nil)
)

// MusicPlayerModule provides music playback commands backed by a Lavalink
// node.
type MusicPlayerModule struct {
	config *Config

	node          *lavalink.Node
	handlers      *presentation.Handlers
	eventHandlers *presentation.EventHandlers
}

// Name returns the module name.
func (m *MusicPlayerModule) Name() string {
	return "music_player"
}

// Commands returns the slash commands for this module.
func (m *MusicPlayerModule) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *MusicPlayerModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"play":   m.handlers.HandlePlay,
		"pause":  m.handlers.HandlePause,
		"stop":   m.handlers.HandleStop,
		"volume": m.handlers.HandleVolume,
		"seek":   m.handlers.HandleSeek,
		"queue":  m.handlers.HandleQueue,
		"leave":  m.handlers.HandleLeave,
	}
}

// EventHandlers returns the gateway event handlers for this module.
func (m *MusicPlayerModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(s *discordgo.Session, event *discordgo.Ready) {
			m.eventHandlers.HandleReady(s, event)
		},
		func(s *discordgo.Session, event *discordgo.VoiceStateUpdate) {
			m.eventHandlers.HandleVoiceStateUpdate(s, event)
		},
		func(s *discordgo.Session, event *discordgo.VoiceServerUpdate) {
			m.eventHandlers.HandleVoiceServerUpdate(s, event)
		},
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *MusicPlayerModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *MusicPlayerModule) Init(deps bot.ModuleDependencies) error {
	m.node = lavalink.New(lavalink.Config{
		Host:      m.config.LavalinkHost,
		Port:      m.config.LavalinkPort,
		Secure:    m.config.LavalinkSecure,
		Password:  m.config.LavalinkPassword,
		SessionID: m.config.LavalinkSessionID,
	})

	adapter := infrastructure.NewLavalinkAdapter(m.node)
	repo := infrastructure.NewMemoryRepository()
	voice := infrastructure.NewDiscordVoiceConnection(deps.Session)

	playback := usecases.NewPlaybackService(repo, adapter, adapter)

	m.handlers = presentation.NewHandlers(playback, voice)
	m.eventHandlers = presentation.NewEventHandlers(m.node)

	slog.Info("music_player module initialized")

	return nil
}

// Shutdown cleans up module resources. Player state lives in memory and the
// REST client holds no connections, so there is nothing to tear down.
func (m *MusicPlayerModule) Shutdown() error {
	return nil
}
