// Package telegram sends a short summary of every bulk price change to a chat.
package telegram

import (
	"WooMasterKit/internal/bulkprice"
	"WooMasterKit/pkg/logging"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/pkg/errors"
)

type Notifier interface {
	SendMessage(text string) error
	NotifyReport(r *bulkprice.Report) error
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	bot    sender
	chatID int64
}

func NewBot(token string, chatID int64, debug bool) (*Bot, error) {
	logger := logging.GetLogger()
	logger.Info("Start telegram.NewBot")
	defer logger.Info("End telegram.NewBot")

	if token == "" {
		return nil, errors.New("telegram bot token is empty")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed tgbotapi.NewBotAPI()")
	}
	bot.Debug = debug
	logger.Infof("Authorized on account %s", bot.Self.UserName)

	return &Bot{bot: bot, chatID: chatID}, nil
}

func (b *Bot) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	if _, err := b.bot.Send(msg); err != nil {
		return errors.Wrapf(err, "failed bot.Send() to chat %d", b.chatID)
	}
	return nil
}

func (b *Bot) NotifyReport(r *bulkprice.Report) error {
	return b.SendMessage(Summary(r))
}

// Summary is the plain text message sent for r.
func Summary(r *bulkprice.Report) string {
	fields := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		fields = append(fields, f.Label())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Bulk price change %s\n", r.ID)
	fmt.Fprintf(&sb, "%s %s (%s), round: %t\n", r.ChangeType, r.Display(r.Amount), strings.Join(fields, ", "), r.Round)
	fmt.Fprintf(&sb, "Products: %d, changes: %d", len(r.Products), r.Records())
	if len(r.Skipped) > 0 {
		fmt.Fprintf(&sb, ", skipped: %d", len(r.Skipped))
	}
	if n := r.SaveErrors(); n > 0 {
		fmt.Fprintf(&sb, ", save errors: %d", n)
	}
	return sb.String()
}

type nop struct{}

// Nop is used when notifications are switched off.
func Nop() Notifier { return nop{} }

func (nop) SendMessage(string) error { return nil }

func (nop) NotifyReport(*bulkprice.Report) error { return nil }

// SendMessageWithLogError sends text and only logs a failure.
func SendMessageWithLogError(n Notifier, text string) {
	if err := n.SendMessage(text); err != nil {
		logging.GetLogger().Errorf("failed telegram SendMessage(), error: %v", err)
	}
}
