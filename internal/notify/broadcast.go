package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender — то, что умеет отправлять сообщения. *tgbotapi.BotAPI подходит как есть,
// в тестах подставляется фальшивка.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// UserSource — реестр получателей рассылок.
type UserSource interface {
	AllUserIDs(ctx context.Context) ([]int64, error)
	RemoveUser(ctx context.Context, id int64) error
}

// Tally — итог рассылки: сколько доставлено и сколько отправок провалилось.
type Tally struct {
	Success int
	Failed  int
}

// Пауза между отправками, чтобы не упереться в лимиты Telegram.
const sendInterval = 100 * time.Millisecond

// Broadcast отправляет сообщение каждому известному пользователю. Фатальна только
// невозможность получить список получателей; ошибки отдельных отправок логируются
// и считаются, но не прерывают рассылку.
func (n *Notifier) Broadcast(ctx context.Context, render func(id int64) tgbotapi.Chattable) (Tally, error) {
	ids, err := n.users.AllUserIDs(ctx)
	if err != nil {
		return Tally{}, fmt.Errorf("получение списка получателей: %w", err)
	}
	return n.BroadcastTo(ctx, ids, render), nil
}

// BroadcastTo рассылает сообщение по явному списку получателей в порядке списка.
// Рассылки внутри процесса сериализованы, чтобы параллельные не складывали
// свои задержки и не нарушали лимиты.
func (n *Notifier) BroadcastTo(ctx context.Context, ids []int64, render func(id int64) tgbotapi.Chattable) Tally {
	n.broadcastMu.Lock()
	defer n.broadcastMu.Unlock()

	ticker := time.NewTicker(sendInterval)
	defer ticker.Stop()

	var tally Tally
	for _, id := range ids {
		<-ticker.C

		if _, err := n.sender.Send(render(id)); err != nil {
			tally.Failed++
			n.logger.Warn("не удалось отправить сообщение", "user_id", id, "error", err)

			if isBlockedErr(err) {
				n.logger.Info("пользователь заблокировал бота", "user_id", id)
				if n.pruneBlocked {
					if err := n.users.RemoveUser(ctx, id); err != nil {
						n.logger.Warn("не удалось удалить заблокировавшего пользователя", "user_id", id, "error", err)
					}
				}
			}
			continue
		}
		tally.Success++
	}
	return tally
}

// isBlockedErr распознаёт ошибку «пользователь заблокировал бота» по тексту,
// который возвращает Telegram Bot API.
func isBlockedErr(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "bot was blocked")
}
