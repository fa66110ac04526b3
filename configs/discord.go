package configs

type Discord struct {
	Token     string `env:"DISCORD_GOVERNANCE_BOT_TOKEN"`
	ChannelID string `env:"DISCORD_ANNOUNCEMENTS_CHANNEL_ID"`
}

func (c Discord) IsEnabled() bool {
	return c.Token != "" && c.ChannelID != ""
}
