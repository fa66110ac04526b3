package configs

type App struct {
	Environment   string `env:"ENVIRONMENT,notEmpty"`
	CommunityName string `env:"COMMUNITY_NAME" envDefault:"DAO"`
	// Telegram chat where proposal outcomes are announced.
	AnnouncementsChatID int64 `env:"ANNOUNCEMENTS_CHAT_ID"`
	// Telegram nicknames allowed to create proposals on first contact.
	InitialCouncil []string `env:"INITIAL_COUNCIL" envSeparator:","`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
