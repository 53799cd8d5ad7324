package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/post-kserks/schedule-bot/internal/admin"
	"github.com/post-kserks/schedule-bot/internal/bot"
	"github.com/post-kserks/schedule-bot/internal/config"
	"github.com/post-kserks/schedule-bot/internal/notify"
	"github.com/post-kserks/schedule-bot/internal/schedule"
	"github.com/post-kserks/schedule-bot/internal/store"
	"github.com/post-kserks/schedule-bot/internal/timetable"
)

// Дата начала семестра: от неё считается чётность недели (числитель/знаменатель).
var semesterStart = time.Date(2024, time.September, 1, 0, 0, 0, 0, time.Local)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(logger); err != nil {
		logger.Error("ошибка запуска", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if len(cfg.AdminUsernames) == 0 {
		logger.Warn("не заданы username администраторов")
	} else {
		logger.Info("загружены username администраторов", "admins", cfg.AdminUsernames)
	}

	// Порядок запуска: хранилище → резолвер → планировщик → бот.
	st, err := store.Open(cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	resolver := schedule.NewResolver(timetable.Numerator(), timetable.Denominator(), semesterStart, st, logger)

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return err
	}
	api.Debug = cfg.BotDebug
	logger.Info("авторизован в Telegram", "username", api.Self.UserName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier := notify.New(api, st, resolver, cfg.PruneBlockedUsers, logger)
	notifier.Start(ctx)

	panel := admin.NewPanel(api, st, notifier, cfg, logger)

	b := bot.New(api, st, resolver, panel, cfg, logger)
	b.Run(ctx)

	logger.Info("бот остановлен")
	return nil
}
