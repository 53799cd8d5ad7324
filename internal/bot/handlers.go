package bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/post-kserks/schedule-bot/internal/keyboards"
)

const helpText = `📋 Доступные команды:

📅 Сегодня - Расписание на сегодня
📆 Завтра - Расписание на завтра
📅 Неделя - Расписание на всю неделю
❓ Помощь - Эта справка

Для администраторов:
⚙️ Админ-панель - Управление мероприятиями`

// handleMessage — команды и текстовые кнопки.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	// Сначала — незавершённый диалог админ-панели.
	if b.admin.HandleMessage(ctx, msg) {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.handleStart(msg)
		case "help":
			b.sendWithKeyboard(msg, helpText)
		case "today":
			b.sendWithKeyboard(msg, b.resolver.RenderDay(ctx, time.Now(), true))
		case "tomorrow":
			b.sendWithKeyboard(msg, b.resolver.RenderDay(ctx, time.Now().AddDate(0, 0, 1), true))
		case "week":
			b.sendWithKeyboard(msg, b.resolver.RenderWeek(ctx, time.Now()))
		case "admin":
			b.handleAdmin(msg)
		case "myinfo":
			b.handleMyInfo(msg)
		default:
			b.sendWithKeyboard(msg, helpText)
		}
		return
	}

	switch msg.Text {
	case keyboards.ButtonToday:
		b.sendWithKeyboard(msg, b.resolver.RenderDay(ctx, time.Now(), true))
	case keyboards.ButtonTomorrow:
		b.sendWithKeyboard(msg, b.resolver.RenderDay(ctx, time.Now().AddDate(0, 0, 1), true))
	case keyboards.ButtonWeek:
		b.sendWithKeyboard(msg, b.resolver.RenderWeek(ctx, time.Now()))
	case keyboards.ButtonAdmin:
		b.handleAdmin(msg)
	default:
		// Нераспознанный текст — показываем справку.
		b.sendWithKeyboard(msg, helpText)
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	welcome := "📚 Бот расписания активирован\n\n" +
		"Я буду присылать:\n" +
		"• 📅 Расписание на завтра каждый день в 21:00\n" +
		"• 🔔 Напоминания за 10 минут до начала занятий\n\n" +
		"Используйте кнопки ниже для навигации:"

	if b.isAdminMessage(msg) {
		welcome += "\n\n⚙️ Доступна админ-панель"
	}
	b.sendWithKeyboard(msg, welcome)
}

func (b *Bot) handleAdmin(msg *tgbotapi.Message) {
	if !b.isAdminMessage(msg) {
		b.reply(msg.Chat.ID, "❌ У вас нет прав для доступа к админ-панели")
		return
	}

	// Перед инлайн-меню убираем обычную клавиатуру.
	out := tgbotapi.NewMessage(msg.Chat.ID, "Переход в админ-панель...")
	out.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	if _, err := b.api.Send(out); err != nil {
		b.logger.Warn("не удалось отправить сообщение", "chat_id", msg.Chat.ID, "error", err)
	}

	b.admin.ShowMenu(msg.Chat.ID)
}

func (b *Bot) handleMyInfo(msg *tgbotapi.Message) {
	from := msg.From
	if from == nil {
		return
	}

	isAdmin := b.isAdminMessage(msg)
	status := "❌ Обычный пользователь"
	if isAdmin {
		status = "✅ Администратор"
	}
	username := from.UserName
	if username == "" {
		username = "не установлен"
	}

	text := fmt.Sprintf(
		"👤 Ваши данные:\n🆔 ID: `%d`\n📛 Username: @%s\n📝 Имя: %s %s\n🔐 Статус: %s\n\n",
		from.ID, username, from.FirstName, from.LastName, status,
	)
	if isAdmin {
		text += "Доступны функции админ-панели: управление мероприятиями"
	} else {
		text += "Для получения прав администратора обратитесь к текущим админам"
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(out); err != nil {
		b.logger.Warn("не удалось отправить сообщение", "chat_id", msg.Chat.ID, "error", err)
	}
}

func (b *Bot) isAdminMessage(msg *tgbotapi.Message) bool {
	return msg.From != nil && b.admin.IsAdmin(msg.From.UserName)
}

// sendWithKeyboard отвечает текстом, прикладывая клавиатуру по правам пользователя.
func (b *Bot) sendWithKeyboard(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyMarkup = keyboards.ForUser(b.isAdminMessage(msg))
	if _, err := b.api.Send(out); err != nil {
		b.logger.Warn("не удалось отправить сообщение", "chat_id", msg.Chat.ID, "error", err)
	}
}
