package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/post-kserks/schedule-bot/internal/admin"
	"github.com/post-kserks/schedule-bot/internal/config"
	"github.com/post-kserks/schedule-bot/internal/models"
	"github.com/post-kserks/schedule-bot/internal/schedule"
	"github.com/post-kserks/schedule-bot/internal/store"
)

// Bot — обработка входящих обновлений: команды, кнопки просмотра расписания
// и делегирование callback-ов админ-панели.
type Bot struct {
	api      *tgbotapi.BotAPI
	store    *store.Store
	resolver *schedule.Resolver
	admin    *admin.Panel
	cfg      *config.Config
	logger   *slog.Logger
}

func New(api *tgbotapi.BotAPI, st *store.Store, resolver *schedule.Resolver, panel *admin.Panel, cfg *config.Config, logger *slog.Logger) *Bot {
	return &Bot{
		api:      api,
		store:    st,
		resolver: resolver,
		admin:    panel,
		cfg:      cfg,
		logger:   logger.With("component", "bot"),
	}
}

// Run крутит цикл получения обновлений до отмены контекста.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("бот запущен", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate разбирает одно обновление. Паника в обработчике не должна
// ронять цикл: она логируется, пользователю уходит общий ответ об ошибке.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	var chatID int64
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		chatID = update.CallbackQuery.Message.Chat.ID
	case update.Message != nil:
		chatID = update.Message.Chat.ID
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("паника в обработчике обновления", "panic", r)
			if chatID != 0 {
				b.reply(chatID, "❌ Произошла ошибка. Попробуйте позже.")
			}
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.upsertUser(ctx, update.CallbackQuery.From)
		b.admin.HandleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.upsertUser(ctx, update.Message.From)
		b.handleMessage(ctx, update.Message)
	}
}

// upsertUser обновляет реестр получателей при каждом обращении.
// Ошибка хранилища не мешает обработать само сообщение.
func (b *Bot) upsertUser(ctx context.Context, from *tgbotapi.User) {
	if from == nil {
		return
	}

	u := models.User{ID: from.ID, FirstName: from.FirstName}
	if from.UserName != "" {
		name := from.UserName
		u.Username = &name
	}
	if from.LastName != "" {
		last := from.LastName
		u.LastName = &last
	}

	if err := b.store.UpsertUser(ctx, u); err != nil {
		b.logger.Warn("не удалось обновить пользователя", "user_id", from.ID, "error", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Warn("не удалось отправить сообщение", "chat_id", chatID, "error", err)
	}
}
