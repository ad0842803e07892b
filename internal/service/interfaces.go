package service

import (
	"github.com/EpicMandM/booking-admin-panel/internal/panel"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender abstracts the Bot API send call for testability.
// *tgbotapi.BotAPI satisfies it.
type TelegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

var (
	_ panel.BookingAPI = (*BookingAPIClient)(nil)
	_ panel.Notifier   = (*TelegramNotifier)(nil)
	_ TelegramSender   = (*tgbotapi.BotAPI)(nil)
)
