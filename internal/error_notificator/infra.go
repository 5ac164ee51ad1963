package error_notificator

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// messageSender is the part of tgbotapi.BotAPI the alerts use.
type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramInfra struct {
	bot    messageSender
	chatID int64
	log    *logger.ZapLogger
}

func NewTelegramInfra(token string, chatID int64, log *logger.ZapLogger) (*TelegramInfra, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramInfra{bot: bot, chatID: chatID, log: log}, nil
}

func (i *TelegramInfra) Notify(ctx context.Context, source string, err error, details string) error {
	text := fmt.Sprintf(
		"❗ voice_sentiment failure (%s)\n\nError: %v\n\nDetails: %s",
		source,
		err,
		details,
	)

	if _, sendErr := i.bot.Send(tgbotapi.NewMessage(i.chatID, text)); sendErr != nil {
		i.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "alert send failed",
			Error:   sendErr,
			Service: "error_notificator",
		})
		return sendErr
	}
	return nil
}

// LogInfra is used when no alert chat is configured.
type LogInfra struct {
	log *logger.ZapLogger
}

func NewLogInfra(log *logger.ZapLogger) *LogInfra {
	return &LogInfra{log: log}
}

func (i *LogInfra) Notify(_ context.Context, source string, err error, details string) error {
	i.log.Log(logger.LogEntry{
		Level:   "warn",
		Message: fmt.Sprintf("[%s] %s", source, details),
		Error:   err,
		Service: "error_notificator",
	})
	return nil
}
