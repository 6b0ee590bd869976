package installer

// Settings mirrors the env vars the bot reads at startup. The tags are
// what MarshalEnv uses to produce the .env file.
type Settings struct {
	HeroAccessKey string `env:"HERO_ACCESS_KEY"`
	TelegramToken string `env:"TELEGRAM_TOKEN"`
	GroupID       int64  `env:"TELEGRAM_GROUP_ID"`
	WelcomeChatID int64  `env:"TELEGRAM_WELCOME_CHAT_ID"`
	Debug         string `env:"BRAINBOT_DEBUG"`
}

type InstallState struct {
	Settings Settings
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
