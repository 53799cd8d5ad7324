package store

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/post-kserks/schedule-bot/internal/models"
)

// UpsertUser добавляет пользователя или обновляет его данные по telegram id.
// Вызывается при каждом обращении к боту — так поддерживается реестр получателей.
func (s *Store) UpsertUser(ctx context.Context, u models.User) error {
	query, args, err := s.Builder.
		Insert("users").
		Options("OR REPLACE").
		Columns("user_id", "username", "first_name", "last_name").
		Values(u.ID, u.Username, u.FirstName, u.LastName).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.ExecContext(ctx, query, args...); err != nil {
		s.logger.Warn("не удалось сохранить пользователя", "user_id", u.ID, "error", err)
		return err
	}
	return nil
}

// AllUserIDs возвращает id всех известных пользователей в порядке добавления.
func (s *Store) AllUserIDs(ctx context.Context) ([]int64, error) {
	query, _, err := s.Builder.
		Select("user_id").
		From("users").
		OrderBy("user_id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var ids []int64
	if err := s.SelectContext(ctx, &ids, query); err != nil {
		s.logger.Warn("не удалось получить список пользователей", "error", err)
		return nil, err
	}
	return ids, nil
}

// RemoveUser удаляет пользователя из реестра. Используется только когда включена
// политика удаления заблокировавших бота получателей.
func (s *Store) RemoveUser(ctx context.Context, id int64) error {
	query, args, err := s.Builder.
		Delete("users").
		Where(squirrel.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.ExecContext(ctx, query, args...); err != nil {
		s.logger.Warn("не удалось удалить пользователя", "user_id", id, "error", err)
		return err
	}

	s.logger.Info("пользователь удалён из реестра", "user_id", id)
	return nil
}
