package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/argand/internal/config"
	"github.com/sandevgo/argand/internal/service/app"
	"github.com/sandevgo/argand/internal/service/plot"
	"github.com/sandevgo/argand/internal/service/solver"
	"github.com/sandevgo/argand/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot     *tele.Bot
	cfg     *config.TelegramConfig
	ctrl    *app.Controller
	sender  *sender
	ownerID int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	ctrl *app.Controller,
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
		bot:     b,
		cfg:     cfg,
		ctrl:    ctrl,
		sender:  newSender(b),
		ownerID: cfg.OwnerID,
	}

	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Only the owner may use the bot
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || c.Sender().ID != bot.ownerID {
				return nil
			}
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle("/history", bot.handleHistory)
	b.Handle("/roots", bot.handleRoots)
	b.Handle("/purge", bot.handlePurge)
	b.Handle(tele.OnText, bot.handleEquation)

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

func (b *Bot) context(c tele.Context) context.Context {
	if ctx, ok := c.Get(baseContextKey).(context.Context); ok {
		return ctx
	}
	return context.Background()
}

func (b *Bot) reply(c tele.Context, md string) error {
	return b.sender.sendMarkdown(b.context(c), c.Recipient(), md, false)
}

func (b *Bot) handleStart(c tele.Context) error {
	return b.reply(c, formatWelcome(b.ctrl.Examples()))
}

func (b *Bot) handleEquation(c tele.Context) error {
	ctx := b.context(c)
	logger := log.FromCtx(ctx)
	equation := c.Text()

	_ = c.Notify(tele.Typing)

	out, err := b.ctrl.SubmitEquation(ctx, equation)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrBusy):
			return c.Send("Une résolution est déjà en cours, patientez.")
		case errors.Is(err, app.ErrEmptyEquation):
			return c.Send("Envoyez une équation, par exemple z^2 + z + 1 = 0")
		}
		logger.Error().Err(err).Msg("solve failed")
		return c.Send(solver.UserMessage(err))
	}

	return b.reply(c, formatOutcome(equation, out))
}

func (b *Bot) handleHistory(c tele.Context) error {
	return b.reply(c, formatHistory(b.ctrl.CurrentHistory()))
}

func (b *Bot) handleRoots(c tele.Context) error {
	roots := b.ctrl.AggregatedRoots()
	if len(roots) == 0 {
		return c.Send("Aucune racine dans l'historique.")
	}
	return b.reply(c, fmt.Sprintf("Plage d'affichage : [-%g, %g]\n\n%s", plot.DomainRange(roots), plot.DomainRange(roots), formatRoots(roots)))
}

func (b *Bot) handlePurge(c tele.Context) error {
	if strings.TrimSpace(c.Message().Payload) != "confirm" {
		return c.Send("Pour effacer tout l'historique, envoyez /purge confirm")
	}
	b.ctrl.PurgeHistory(b.context(c))
	return c.Send("Historique effacé.")
}
