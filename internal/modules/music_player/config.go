package music_player

// Config holds the music player module configuration.
type Config struct {
	LavalinkHost      string `env:"LAVALINK_HOST"       envDefault:"127.0.0.1"`
	LavalinkPort      int    `env:"LAVALINK_PORT"       envDefault:"2333"`
	LavalinkSecure    bool   `env:"LAVALINK_SECURE"     envDefault:"false"`
	LavalinkPassword  string `env:"LAVALINK_PASSWORD,notEmpty"`
	LavalinkSessionID string `env:"LAVALINK_SESSION_ID" envDefault:"default"`
}
