package admin

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/post-kserks/schedule-bot/internal/keyboards"
)

// startAddEvent открывает диалог добавления контрольного мероприятия.
func (p *Panel) startAddEvent(cb *tgbotapi.CallbackQuery) {
	p.sessions.start(cb.From.ID, stepDate)
	p.editWithMarkup(cb,
		"➕ Добавление контрольного мероприятия\n\nВведите дату в формате ГГГГ-ММ-ДД (например, 2024-01-20):",
		keyboards.CancelToMenu(),
	)
}

// startBroadcast открывает диалог набора сообщения для рассылки.
func (p *Panel) startBroadcast(cb *tgbotapi.CallbackQuery) {
	p.sessions.start(cb.From.ID, stepBroadcast)
	p.editWithMarkup(cb,
		"📢 Отправка сообщения всем пользователям\n\nВведите текст сообщения, которое будет отправлено всем пользователям бота:",
		keyboards.CancelToMenu(),
	)
}

// HandleMessage обрабатывает очередную реплику многошагового диалога.
// Возвращает false, если у пользователя нет активного диалога.
func (p *Panel) HandleMessage(ctx context.Context, msg *tgbotapi.Message) bool {
	if msg.From == nil || !p.IsAdmin(msg.From.UserName) {
		return false
	}

	sess, ok := p.sessions.get(msg.From.ID)
	if !ok {
		return false
	}

	chatID := msg.Chat.ID
	text := msg.Text

	switch sess.step {
	case stepDate:
		// Неверная дата не сбрасывает диалог — пользователь вводит заново.
		if _, err := time.Parse("2006-01-02", text); err != nil {
			p.reply(chatID, "❌ Неверный формат даты. Используйте ГГГГ-ММ-ДД:")
			return true
		}
		sess.date = text
		sess.step = stepSubject
		p.reply(chatID, "📚 Теперь введите название предмета:")

	case stepSubject:
		sess.subject = text
		sess.step = stepKind
		p.reply(chatID, "🎯 Теперь введите тип мероприятия (например, 'контрольная работа', 'домашняя работа'):")

	case stepKind:
		p.finishAddEvent(ctx, msg, sess, text)

	case stepBroadcast:
		p.sessions.clear(msg.From.ID)
		p.runBroadcast(ctx, chatID, text)
	}
	return true
}

// finishAddEvent сохраняет мероприятие и возвращает админа в меню.
func (p *Panel) finishAddEvent(ctx context.Context, msg *tgbotapi.Message, sess *session, kind string) {
	chatID := msg.Chat.ID
	creator := msg.From.UserName
	var createdBy *string
	if creator != "" {
		createdBy = &creator
	}

	_, err := p.store.AddControlEvent(ctx, sess.date, sess.subject, kind, createdBy)
	if err != nil {
		p.reply(chatID, "❌ Ошибка при добавлении мероприятия")
	} else {
		p.reply(chatID, fmt.Sprintf(
			"✅ Мероприятие успешно добавлено!\n\n📅 Дата: %s\n📚 Предмет: %s\n🎯 Тип: %s",
			sess.date, sess.subject, kind,
		))
	}

	p.sessions.clear(msg.From.ID)
	p.ShowMenu(chatID)
}

// runBroadcast рассылает произвольное сообщение всем пользователям и
// отчитывается итогом.
func (p *Panel) runBroadcast(ctx context.Context, chatID int64, text string) {
	p.reply(chatID, "🔄 Начинаю рассылку сообщения...")

	tally, err := p.notifier.Broadcast(ctx, func(id int64) tgbotapi.Chattable {
		return tgbotapi.NewMessage(id, text)
	})
	if err != nil {
		p.logger.Error("рассылка не выполнена", "error", err)
		p.reply(chatID, "❌ Нет пользователей для рассылки")
		p.ShowMenu(chatID)
		return
	}

	p.logger.Info("рассылка завершена", "success", tally.Success, "failed", tally.Failed)
	p.reply(chatID, fmt.Sprintf(
		"✅ Рассылка завершена\n\n📬 Доставлено: %d\n⚠️ Ошибок: %d",
		tally.Success, tally.Failed,
	))
	p.ShowMenu(chatID)
}

func (p *Panel) reply(chatID int64, text string) {
	if _, err := p.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		p.logger.Warn("не удалось отправить сообщение", "chat_id", chatID, "error", err)
	}
}
