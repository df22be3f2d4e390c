package configs

type Notifications struct {
	TelegramToken           string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramModeratorChatID int64  `env:"TELEGRAM_MODERATORS_CHAT_ID"`
	DiscordToken            string `env:"DISCORD_BOT_TOKEN"`
	DiscordChannelID        string `env:"DISCORD_CHANNEL_ID"`
}

func (c Notifications) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramModeratorChatID != 0
}

func (c Notifications) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}
