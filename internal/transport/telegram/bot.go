package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/brainbot/internal/config"
	"github.com/sandevgo/brainbot/internal/core"
	"github.com/sandevgo/brainbot/internal/service/command"
	"github.com/sandevgo/brainbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot    *tele.Bot
	cfg    *config.TelegramConfig
	router *command.Router
	sender *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	router *command.Router,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		cfg:    cfg,
		router: router,
		sender: newSender(b),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only serve the configured group, if one is set
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if cfg.GroupID != 0 && c.Chat().ID != cfg.GroupID {
				return nil // Ignore other chats
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)
	b.Handle(tele.OnUserJoined, bot.handleUserJoined)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	replies := b.router.Dispatch(ctx, incomingFrom(c))
	for _, reply := range replies {
		if err := b.sender.sendMarkdown(ctx, c.Chat(), reply); err != nil {
			logger.Error().Err(err).Msg("failed to send telegram reply")
		}
	}
	return nil
}

func (b *Bot) handleUserJoined(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	joined := c.Message().UserJoined
	if joined == nil {
		return nil
	}

	var to tele.Recipient = c.Chat()
	if b.cfg.WelcomeChatID != 0 {
		to = tele.ChatID(b.cfg.WelcomeChatID)
	}
	return b.sender.sendMarkdown(ctx, to, command.WelcomeText(mention(joined)))
}

// incomingFrom flattens a telebot update into the gateway-agnostic shape
// the dispatch table works with.
func incomingFrom(c tele.Context) core.Incoming {
	from := c.Sender()
	return core.Incoming{
		Text:          c.Text(),
		AuthorID:      from.ID,
		AuthorName:    displayName(from),
		AuthorMention: mention(from),
	}
}

func displayName(u *tele.User) string {
	if u.Username != "" {
		return u.Username
	}
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return name
}

func mention(u *tele.User) string {
	return fmt.Sprintf("[%s](tg://user?id=%d)", displayName(u), u.ID)
}
