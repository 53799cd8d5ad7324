package keyboards

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Подписи кнопок основной клавиатуры. Используются и при разборе входящих
// сообщений, поэтому вынесены в константы.
const (
	ButtonToday    = "📅 Сегодня"
	ButtonTomorrow = "📆 Завтра"
	ButtonWeek     = "📅 Неделя"
	ButtonHelp     = "❓ Помощь"
	ButtonAdmin    = "⚙️ Админ-панель"
)

// Callback-данные инлайн-кнопок админ-панели.
const (
	CallbackListEvents     = "admin_list_events"
	CallbackAddEvent       = "admin_add_event"
	CallbackDeleteEvent    = "admin_delete_event"
	CallbackBroadcast      = "admin_broadcast_message"
	CallbackListAdmins     = "admin_list_admins"
	CallbackBackToMenu     = "admin_back_to_menu"
	CallbackBackToSchedule = "admin_back_to_schedule"

	// Префиксы callback-ов с id мероприятия.
	PrefixDeleteEvent   = "delete_event_"
	PrefixConfirmDelete = "confirm_delete_"
)

// Main — основная клавиатура с кнопками просмотра расписания.
func Main() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonToday),
			tgbotapi.NewKeyboardButton(ButtonTomorrow),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonWeek),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// Admin — клавиатура администратора: те же кнопки плюс ряд с админ-панелью.
func Admin() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonToday),
			tgbotapi.NewKeyboardButton(ButtonTomorrow),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonWeek),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonAdmin),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// ForUser выбирает клавиатуру в зависимости от прав пользователя.
func ForUser(isAdmin bool) tgbotapi.ReplyKeyboardMarkup {
	if isAdmin {
		return Admin()
	}
	return Main()
}

// AdminMenu — инлайн-меню админ-панели.
func AdminMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Список мероприятий", CallbackListEvents),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить мероприятие", CallbackAddEvent),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Удалить мероприятие", CallbackDeleteEvent),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📢 Сообщение всем", CallbackBroadcast),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Список админов", CallbackListAdmins),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад к расписанию", CallbackBackToSchedule),
		),
	)
}

// BackToMenu — одна кнопка возврата в меню админ-панели.
func BackToMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", CallbackBackToMenu),
		),
	)
}

// CancelToMenu — кнопка отмены многошагового диалога.
func CancelToMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Отмена", CallbackBackToMenu),
		),
	)
}
