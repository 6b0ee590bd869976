package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/brainbot/pkg/log"
)

type TelegramConfig struct {
	Token string `env:"TELEGRAM_TOKEN,required,notEmpty"`

	// GroupID limits the bot to a single group chat when non-zero.
	GroupID int64 `env:"TELEGRAM_GROUP_ID"`

	// WelcomeChatID is where member-join greetings are sent. Zero means
	// "greet in the chat the member joined".
	WelcomeChatID int64 `env:"TELEGRAM_WELCOME_CHAT_ID"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}
