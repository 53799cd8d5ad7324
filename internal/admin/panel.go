package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/post-kserks/schedule-bot/internal/config"
	"github.com/post-kserks/schedule-bot/internal/keyboards"
	"github.com/post-kserks/schedule-bot/internal/models"
	"github.com/post-kserks/schedule-bot/internal/notify"
	"github.com/post-kserks/schedule-bot/internal/store"
)

// API — часть Telegram-клиента, нужная админ-панели.
// *tgbotapi.BotAPI реализует её напрямую.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Сессии брошенных диалогов живут полчаса.
const sessionTTL = 30 * time.Minute

// Panel — админ-панель: список/добавление/удаление контрольных мероприятий,
// рассылка произвольного сообщения и список админов.
type Panel struct {
	api      API
	store    *store.Store
	notifier *notify.Notifier
	cfg      *config.Config
	sessions *sessionManager
	logger   *slog.Logger
}

func NewPanel(api API, st *store.Store, notifier *notify.Notifier, cfg *config.Config, logger *slog.Logger) *Panel {
	return &Panel{
		api:      api,
		store:    st,
		notifier: notifier,
		cfg:      cfg,
		sessions: newSessionManager(sessionTTL),
		logger:   logger.With("component", "admin"),
	}
}

// IsAdmin проверяет username по списку администраторов из конфигурации.
func (p *Panel) IsAdmin(username string) bool {
	return p.cfg.IsAdmin(username)
}

// InDialog сообщает, находится ли пользователь в многошаговом диалоге панели.
func (p *Panel) InDialog(userID int64) bool {
	return p.sessions.active(userID)
}

// ShowMenu отправляет главное меню админ-панели новым сообщением.
func (p *Panel) ShowMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "⚙️ Панель администратора\n\nВыберите действие:")
	msg.ReplyMarkup = keyboards.AdminMenu()
	if _, err := p.api.Send(msg); err != nil {
		p.logger.Warn("не удалось открыть админ-панель", "chat_id", chatID, "error", err)
	}
}

// editToMenu перерисовывает главное меню поверх сообщения с инлайн-кнопками.
func (p *Panel) editToMenu(chatID int64, messageID int) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(
		chatID, messageID,
		"⚙️ Панель администратора\n\nВыберите действие:",
		keyboards.AdminMenu(),
	)
	if _, err := p.api.Send(edit); err != nil {
		p.logger.Warn("не удалось перерисовать меню", "chat_id", chatID, "error", err)
	}
}

// HandleCallback — маршрутизация нажатий инлайн-кнопок админ-панели.
func (p *Panel) HandleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Гасим "часики" на кнопке.
	if _, err := p.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		p.logger.Warn("не удалось ответить на callback", "error", err)
	}

	if cb.From == nil || !p.IsAdmin(cb.From.UserName) {
		p.edit(cb, "❌ У вас нет прав для доступа к админ-панели")
		return
	}

	userID := cb.From.ID
	data := cb.Data

	// Любой возврат в меню или отмена сбрасывает незавершённый диалог.
	if data == keyboards.CallbackBackToMenu || data == keyboards.CallbackBackToSchedule {
		p.sessions.clear(userID)
	}

	switch {
	case data == keyboards.CallbackListEvents:
		p.listEvents(ctx, cb)
	case data == keyboards.CallbackAddEvent:
		p.startAddEvent(cb)
	case data == keyboards.CallbackDeleteEvent:
		p.startDeleteEvent(ctx, cb)
	case data == keyboards.CallbackBroadcast:
		p.startBroadcast(cb)
	case data == keyboards.CallbackListAdmins:
		p.listAdmins(cb)
	case strings.HasPrefix(data, keyboards.PrefixConfirmDelete):
		p.executeDelete(ctx, cb, parseEventID(data, keyboards.PrefixConfirmDelete))
	case strings.HasPrefix(data, keyboards.PrefixDeleteEvent):
		p.confirmDelete(ctx, cb, parseEventID(data, keyboards.PrefixDeleteEvent))
	case data == keyboards.CallbackBackToMenu:
		p.editToMenu(cb.Message.Chat.ID, cb.Message.MessageID)
	case data == keyboards.CallbackBackToSchedule:
		p.backToSchedule(cb)
	}
}

func parseEventID(data, prefix string) int64 {
	id, _ := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	return id
}

// edit заменяет текст сообщения с инлайн-кнопками.
func (p *Panel) edit(cb *tgbotapi.CallbackQuery, text string) {
	e := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	if _, err := p.api.Send(e); err != nil {
		p.logger.Warn("не удалось изменить сообщение", "error", err)
	}
}

func (p *Panel) editWithMarkup(cb *tgbotapi.CallbackQuery, text string, markup tgbotapi.InlineKeyboardMarkup) {
	e := tgbotapi.NewEditMessageTextAndMarkup(cb.Message.Chat.ID, cb.Message.MessageID, text, markup)
	if _, err := p.api.Send(e); err != nil {
		p.logger.Warn("не удалось изменить сообщение", "error", err)
	}
}

// listEvents показывает все контрольные мероприятия.
func (p *Panel) listEvents(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	events, err := p.store.AllControlEvents(ctx)
	if err != nil {
		p.editWithMarkup(cb, "❌ Ошибка при получении списка мероприятий", keyboards.BackToMenu())
		return
	}

	if len(events) == 0 {
		p.editWithMarkup(cb, "📋 Список контрольных мероприятий пуст", keyboards.BackToMenu())
		return
	}

	var b strings.Builder
	b.WriteString("📋 Все контрольные мероприятия:\n\n")
	for _, ev := range events {
		fmt.Fprintf(&b, "🆔 ID: %d\n", ev.ID)
		fmt.Fprintf(&b, "📅 Дата: %s\n", ev.Date)
		fmt.Fprintf(&b, "📚 Предмет: %s\n", ev.Subject)
		fmt.Fprintf(&b, "🎯 Тип: %s\n", ev.Kind)
		fmt.Fprintf(&b, "👤 Добавил: %s\n", creatorName(ev))
		b.WriteString(strings.Repeat("─", 30) + "\n")
	}

	p.editWithMarkup(cb, b.String(), keyboards.BackToMenu())
}

func creatorName(ev models.ControlEvent) string {
	if ev.CreatedBy == nil || *ev.CreatedBy == "" {
		return "Неизвестно"
	}
	return *ev.CreatedBy
}

// listAdmins показывает список администраторов из конфигурации.
func (p *Panel) listAdmins(cb *tgbotapi.CallbackQuery) {
	admins := p.cfg.AdminUsernames
	if len(admins) == 0 {
		p.editWithMarkup(cb, "❌ Нет назначенных администраторов", keyboards.BackToMenu())
		return
	}

	var b strings.Builder
	b.WriteString("👥 Список администраторов:\n\n")
	for i, name := range admins {
		fmt.Fprintf(&b, "%d. @%s\n", i+1, name)
	}
	fmt.Fprintf(&b, "\n📊 Всего администраторов: %d", len(admins))

	p.editWithMarkup(cb, b.String(), keyboards.BackToMenu())
}

// startDeleteEvent показывает мероприятия кнопками для выбора удаляемого.
func (p *Panel) startDeleteEvent(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	events, err := p.store.AllControlEvents(ctx)
	if err != nil {
		p.editWithMarkup(cb, "❌ Ошибка при получении списка мероприятий для удаления", keyboards.BackToMenu())
		return
	}

	if len(events) == 0 {
		p.editWithMarkup(cb, "❌ Нет мероприятий для удаления", keyboards.BackToMenu())
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, ev := range events {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("❌ %s - %s", ev.Date, ev.Subject),
				fmt.Sprintf("%s%d", keyboards.PrefixDeleteEvent, ev.ID),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", keyboards.CallbackBackToMenu),
	))

	p.editWithMarkup(cb, "❌ Выберите мероприятие для удаления:", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// confirmDelete запрашивает подтверждение перед удалением.
func (p *Panel) confirmDelete(ctx context.Context, cb *tgbotapi.CallbackQuery, eventID int64) {
	events, err := p.store.AllControlEvents(ctx)
	if err != nil {
		p.editWithMarkup(cb, "❌ Ошибка при подтверждении удаления", keyboards.BackToMenu())
		return
	}

	var found *models.ControlEvent
	for i := range events {
		if events[i].ID == eventID {
			found = &events[i]
			break
		}
	}
	if found == nil {
		p.edit(cb, "❌ Мероприятие не найдено")
		return
	}

	text := fmt.Sprintf(
		"⚠️ Подтвердите удаление:\n\n📅 Дата: %s\n📚 Предмет: %s\n🎯 Тип: %s\n\nВы уверены, что хотите удалить это мероприятие?",
		found.Date, found.Subject, found.Kind,
	)
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Да", fmt.Sprintf("%s%d", keyboards.PrefixConfirmDelete, eventID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Нет", keyboards.CallbackBackToMenu),
		),
	)
	p.editWithMarkup(cb, text, markup)
}

// executeDelete удаляет мероприятие после подтверждения.
func (p *Panel) executeDelete(ctx context.Context, cb *tgbotapi.CallbackQuery, eventID int64) {
	backRow := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ В меню", keyboards.CallbackBackToMenu),
		),
	)

	deleted, err := p.store.DeleteControlEvent(ctx, eventID)
	if err != nil || !deleted {
		p.editWithMarkup(cb, "❌ Ошибка при удалении мероприятия", backRow)
		return
	}
	p.editWithMarkup(cb, "✅ Мероприятие успешно удалено", backRow)
}

// backToSchedule закрывает админ-панель и возвращает обычную клавиатуру.
func (p *Panel) backToSchedule(cb *tgbotapi.CallbackQuery) {
	p.edit(cb, "Возврат к основному расписанию...")

	msg := tgbotapi.NewMessage(cb.Message.Chat.ID, "Вы вернулись в главное меню. Используйте кнопки ниже:")
	msg.ReplyMarkup = keyboards.ForUser(p.IsAdmin(cb.From.UserName))
	if _, err := p.api.Send(msg); err != nil {
		p.logger.Warn("не удалось вернуть клавиатуру", "error", err)
	}
}
