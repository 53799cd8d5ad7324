package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config — конфигурация процесса. Читается один раз при старте из окружения
// (и .env, если файл существует).
type Config struct {
	BotToken       string
	AdminUsernames []string
	DBPath         string
	// PruneBlockedUsers — удалять ли из реестра получателей тех, кто заблокировал
	// бота. По умолчанию выключено: такие отправки только логируются.
	PruneBlockedUsers bool
	BotDebug          bool
}

// Load читает конфигурацию. Отсутствие BOT_TOKEN — фатальная ошибка.
func Load() (*Config, error) {
	// .env не обязателен: в продакшене переменные приходят из окружения.
	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, errors.New("BOT_TOKEN не задан")
	}

	return &Config{
		BotToken:          token,
		AdminUsernames:    parseAdminUsernames(os.Getenv("ADMIN_USERNAMES"), os.Getenv("ADMIN_USERNAME")),
		DBPath:            getString("DB_PATH", "schedule.db"),
		PruneBlockedUsers: getBool("PRUNE_BLOCKED_USERS", false),
		BotDebug:          getBool("BOT_DEBUG", false),
	}, nil
}

// parseAdminUsernames разбирает список админов из ADMIN_USERNAMES (через запятую)
// и подмешивает устаревшую переменную ADMIN_USERNAME, если её там ещё нет.
// Ведущий @ отбрасывается.
func parseAdminUsernames(list, legacy string) []string {
	var admins []string
	seen := make(map[string]struct{})

	add := func(raw string) {
		name := strings.TrimPrefix(strings.TrimSpace(raw), "@")
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		admins = append(admins, name)
	}

	for _, part := range strings.Split(list, ",") {
		add(part)
	}
	add(legacy)

	return admins
}

// IsAdmin проверяет username по списку администраторов.
func (c *Config) IsAdmin(username string) bool {
	if username == "" {
		return false
	}
	name := strings.TrimPrefix(username, "@")
	for _, admin := range c.AdminUsernames {
		if admin == name {
			return true
		}
	}
	return false
}

func getString(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}
