package presentation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/freechasers/fcbot/internal/bot"
	"github.com/freechasers/fcbot/internal/modules/music_player/application/ports"
	"github.com/freechasers/fcbot/internal/modules/music_player/application/usecases"
	"github.com/freechasers/fcbot/internal/modules/music_player/domain"
)

// Embed colors.
const (
	colorSuccess = 0x08c404
	colorError   = 0xE74C3C
)

// queueDisplayLimit caps how many tracks a /queue response lists.
const queueDisplayLimit = 10

// Handlers holds all the command handlers.
type Handlers struct {
	playback *usecases.PlaybackService
	voice    ports.VoiceConnection
}

// NewHandlers creates new Handlers.
func NewHandlers(playback *usecases.PlaybackService, voice ports.VoiceConnection) *Handlers {
	return &Handlers{
		playback: playback,
		voice:    voice,
	}
}

// HandlePlay handles the /play command. The bot joins the requester's voice
// channel before the track is resolved, so the voice handshake can complete
// while the search is in flight.
func (h *Handlers) HandlePlay(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, member, err := guildContext(i)
	if err != nil {
		return respondError(r, err.Error())
	}

	voiceState, err := s.State.VoiceState(i.GuildID, member.User.ID)
	if err != nil || voiceState.ChannelID == "" {
		return respondError(r, usecases.ErrUserNotInVoice.Error())
	}

	channelID, err := snowflake.Parse(voiceState.ChannelID)
	if err != nil {
		return respondError(r, "Invalid voice channel")
	}

	if err := h.voice.JoinChannel(guildID, channelID); err != nil {
		return respondError(r, err.Error())
	}

	var query string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "query" {
			query = opt.StringValue()
		}
	}

	output, err := h.playback.Play(context.Background(), usecases.PlayInput{
		GuildID: guildID,
		Query:   query,
	})
	if err != nil {
		return respondError(r, err.Error())
	}

	if output.StartedNow {
		return respondNowPlaying(r, output.Track)
	}
	return respondQueueAdded(r, output.Track, output.Position)
}

// HandlePause handles the /pause command. A second /pause resumes.
func (h *Handlers) HandlePause(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, _, err := guildContext(i)
	if err != nil {
		return respondError(r, err.Error())
	}

	paused, err := h.playback.TogglePause(context.Background(), guildID)
	if err != nil {
		return respondError(r, err.Error())
	}

	if paused {
		return respondMessage(r, "Paused playback.")
	}
	return respondMessage(r, "Resumed playback.")
}

// HandleStop handles the /stop command.
func (h *Handlers) HandleStop(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, _, err := guildContext(i)
	if err != nil {
		return respondError(r, err.Error())
	}

	if err := h.playback.Stop(context.Background(), guildID); err != nil {
		return respondError(r, err.Error())
	}

	return respondMessage(r, "Stopped playback and cleared the queue.")
}

// HandleVolume handles the /volume command.
func (h *Handlers) HandleVolume(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, _, err := guildContext(i)
	if err != nil {
		return respondError(r, err.Error())
	}

	var percent int
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "percent" {
			percent = int(opt.IntValue())
		}
	}

	volume, err := h.playback.SetVolume(context.Background(), guildID, percent)
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondMessage(r, fmt.Sprintf("Volume set to %d%%.", volume))
}

// HandleSeek handles the /seek command.
func (h *Handlers) HandleSeek(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, _, err := guildContext(i)
	if err != nil {
		return respondError(r, err.Error())
	}

	var seconds int64
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "seconds" {
			seconds = opt.IntValue()
		}
	}

	position := time.Duration(seconds) * time.Second
	if err := h.playback.Seek(context.Background(), guildID, position); err != nil {
		return respondError(r, err.Error())
	}

	return respondMessage(r, fmt.Sprintf("Seeked to %s.", formatDuration(position)))
}

// HandleQueue handles the /queue command.
func (h *Handlers) HandleQueue(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, _, err := guildContext(i)
	if err != nil {
		return respondError(r, err.Error())
	}

	state, err := h.playback.Queue(guildID)
	if err != nil {
		return respondError(r, err.Error())
	}

	return respondQueueList(r, state)
}

// HandleLeave handles the /leave command. Playback is stopped first so the
// audio server does not keep streaming into a dead connection.
func (h *Handlers) HandleLeave(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, _, err := guildContext(i)
	if err != nil {
		return respondError(r, err.Error())
	}

	_ = h.playback.Stop(context.Background(), guildID)

	if err := h.voice.LeaveChannel(guildID); err != nil {
		return respondError(r, err.Error())
	}

	return respondMessage(r, "Disconnected.")
}

// guildContext extracts the guild ID and invoking member, rejecting DMs.
func guildContext(i *discordgo.InteractionCreate) (snowflake.ID, *discordgo.Member, error) {
	if i.GuildID == "" || i.Member == nil {
		return 0, nil, fmt.Errorf("this command can only be used in a server")
	}

	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid guild")
	}

	return guildID, i.Member, nil
}

// Response helpers.

func respondError(r bot.Responder, message string) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Error",
					Description: message,
					Color:       colorError,
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondMessage(r bot.Responder, message string) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Description: message,
					Color:       colorSuccess,
				},
			},
		},
	})
}

func respondNowPlaying(r bot.Responder, track *domain.Track) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Now Playing",
					Description: trackLine(track),
					Color:       colorSuccess,
				},
			},
		},
	})
}

func respondQueueAdded(r bot.Responder, track *domain.Track, position int) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Description: fmt.Sprintf("%s added to the queue at position %d.", trackLine(track), position),
					Color:       colorSuccess,
				},
			},
		},
	})
}

func respondQueueList(r bot.Responder, state domain.PlayerState) error {
	var sb strings.Builder

	for idx, track := range state.Tracks {
		if idx >= queueDisplayLimit {
			fmt.Fprintf(&sb, "... and %d more\n", len(state.Tracks)-queueDisplayLimit)
			break
		}
		if idx == 0 {
			sb.WriteString("### Now Playing\n")
		} else if idx == 1 {
			sb.WriteString("### Up Next\n")
		}
		// escape the period so Discord does not render a markdown list
		fmt.Fprintf(&sb, "%d\\. %s (%s)\n", idx+1, trackLine(track), track.FormattedDuration())
	}

	status := "playing"
	if state.Paused {
		status = "paused"
	}

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Queue",
					Description: sb.String(),
					Color:       colorSuccess,
					Footer: &discordgo.MessageEmbedFooter{
						Text: fmt.Sprintf("%d tracks | %s | volume %d%%", len(state.Tracks), status, state.Volume),
					},
				},
			},
		},
	})
}

func trackLine(track *domain.Track) string {
	if track.URI != "" {
		return fmt.Sprintf("[%s](%s)", track.DisplayTitle(), track.URI)
	}
	return fmt.Sprintf("**%s**", track.DisplayTitle())
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
