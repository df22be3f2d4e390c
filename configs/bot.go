package configs

type Bot struct {
	Token         string  `env:"TELEGRAM_BOT_TOKEN,notEmpty"`
	ModeratorIDs  []int64 `env:"TELEGRAM_MODERATOR_IDS" envSeparator:","`
	UpdateTimeout int     `env:"TELEGRAM_BOT_UPDATE_TIMEOUT" envDefault:"60"`
}

func (c Bot) IsModerator(userID int64) bool {
	for _, id := range c.ModeratorIDs {
		if id == userID {
			return true
		}
	}
	return false
}
