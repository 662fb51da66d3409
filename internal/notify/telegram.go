package notify

import (
	"context"
	"fmt"

	"github.com/avdeenkov/avito-tasker/internal/logger"
	"github.com/avdeenkov/avito-tasker/internal/models"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

// Notifier pushes moderation events to the moderator chat. All sends are
// fire-and-forget: a Telegram outage must never fail the request that
// produced the event.
type Notifier interface {
	AssignmentSubmitted(ctx context.Context, assignment *models.Assignment, task *models.Task)
	WithdrawalRequested(ctx context.Context, withdrawal *models.Withdrawal)
}

type telegramNotifier struct {
	bot    *bot.Bot
	chatID int64
}

// NewTelegramNotifier returns a no-op notifier when token or chat id is
// not configured.
func NewTelegramNotifier(token string, chatID int64) (Notifier, error) {
	if token == "" || chatID == 0 {
		return &noopNotifier{}, nil
	}

	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &telegramNotifier{bot: b, chatID: chatID}, nil
}

func (n *telegramNotifier) AssignmentSubmitted(ctx context.Context, assignment *models.Assignment, task *models.Task) {
	text := fmt.Sprintf(
		"📥 Новая задача на модерации\n\nЗадание #%d (%s, %d ₽)\nИсполнитель: %d\nСдача #%d",
		task.ID, task.Type, task.Price, assignment.UserID, assignment.ID,
	)
	n.send(ctx, text)
}

func (n *telegramNotifier) WithdrawalRequested(ctx context.Context, withdrawal *models.Withdrawal) {
	text := fmt.Sprintf(
		"💸 Новая заявка на вывод\n\nЗаявка #%d\nПользователь: %d\nСумма: %d ₽ (%s)",
		withdrawal.ID, withdrawal.UserID, withdrawal.Amount, withdrawal.Method,
	)
	n.send(ctx, text)
}

func (n *telegramNotifier) send(ctx context.Context, text string) {
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		logger.Log.Warn("failed to send moderator notification", zap.Error(err))
	}
}

type noopNotifier struct{}

func (noopNotifier) AssignmentSubmitted(context.Context, *models.Assignment, *models.Task) {}

func (noopNotifier) WithdrawalRequested(context.Context, *models.Withdrawal) {}
