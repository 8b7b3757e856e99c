package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "sketch-loader/internal/application"
	"sketch-loader/internal/domain/entity"
	"sketch-loader/internal/domain/port"
)

// Notifier отправляет сводку по датасету в чат Telegram
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier создаёт уведомитель для бота token и чата chatID
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	return NewNotifierWithEndpoint(token, chatID, tgbotapi.APIEndpoint)
}

// NewNotifierWithEndpoint создаёт уведомитель с нестандартным адресом Bot API
func NewNotifierWithEndpoint(token string, chatID int64, endpoint string) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Notifier{
		api:    api,
		chatID: chatID,
	}, nil
}

// Notify отправляет текстовую сводку в чат
func (n *Notifier) Notify(ctx context.Context, summary entity.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, FormatMessage(summary))
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}

	return nil
}

// FormatMessage собирает текст сообщения со сводкой
func FormatMessage(summary entity.Summary) string {
	return fmt.Sprintf("Path to dataset files: %s\n%s", summary.Path, app.FormatSummary(summary))
}

// Проверка реализации интерфейса
var _ port.SummaryNotifier = (*Notifier)(nil)
