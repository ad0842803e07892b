package service

import (
	"context"
	"fmt"

	"github.com/EpicMandM/booking-admin-panel/internal/models"
	"github.com/EpicMandM/booking-admin-panel/internal/panel"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier posts admin panel actions to an admin chat.
type TelegramNotifier struct {
	sender TelegramSender
	chatID int64
}

// NewTelegramNotifier authorizes the bot token against the Bot API.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		return nil, fmt.Errorf("telegram configuration incomplete")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize telegram bot: %w", err)
	}
	return NewTelegramNotifierWithSender(bot, chatID), nil
}

// NewTelegramNotifierWithSender wraps an existing sender, e.g. a *tgbotapi.BotAPI.
func NewTelegramNotifierWithSender(sender TelegramSender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{sender: sender, chatID: chatID}
}

// NotifyAction sends a one-line notice for a completed hide or delete.
func (n *TelegramNotifier) NotifyAction(ctx context.Context, action panel.Action, id models.BookingID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, actionText(action, id))
	msg.DisableWebPagePreview = true

	if _, err := n.sender.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram notice: %w", err)
	}
	return nil
}

func actionText(action panel.Action, id models.BookingID) string {
	switch action {
	case panel.ActionHide:
		return fmt.Sprintf("Admin panel: booking %s hidden (status cancelled)", id)
	case panel.ActionDelete:
		return fmt.Sprintf("Admin panel: booking %s deleted", id)
	default:
		return fmt.Sprintf("Admin panel: %s on booking %s", action, id)
	}
}
