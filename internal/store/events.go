package store

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/post-kserks/schedule-bot/internal/models"
)

// AddControlEvent сохраняет контрольное мероприятие и возвращает присвоенный id.
func (s *Store) AddControlEvent(ctx context.Context, date, subject, kind string, createdBy *string) (int64, error) {
	query, args, err := s.Builder.
		Insert("control_events").
		Columns("date", "subject_name", "event_type", "created_by").
		Values(date, subject, kind, createdBy).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Warn("не удалось добавить мероприятие", "subject", subject, "date", date, "error", err)
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	s.logger.Info("добавлено контрольное мероприятие", "id", id, "subject", subject, "date", date)
	return id, nil
}

// ControlEventsByDate возвращает мероприятия на дату в порядке добавления (по id).
func (s *Store) ControlEventsByDate(ctx context.Context, date string) ([]models.ControlEvent, error) {
	query, args, err := s.Builder.
		Select("id", "date", "subject_name", "event_type", "created_by").
		From("control_events").
		Where(squirrel.Eq{"date": date}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var events []models.ControlEvent
	if err := s.SelectContext(ctx, &events, query, args...); err != nil {
		s.logger.Warn("не удалось получить мероприятия на дату", "date", date, "error", err)
		return nil, err
	}
	return events, nil
}

// DeleteControlEvent удаляет мероприятие по id. Возвращает false, если такого id нет.
func (s *Store) DeleteControlEvent(ctx context.Context, id int64) (bool, error) {
	query, args, err := s.Builder.
		Delete("control_events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Warn("не удалось удалить мероприятие", "id", id, "error", err)
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	s.logger.Info("удалено контрольное мероприятие", "id", id)
	return true, nil
}

// AllControlEvents возвращает все мероприятия, отсортированные по дате.
func (s *Store) AllControlEvents(ctx context.Context) ([]models.ControlEvent, error) {
	query, args, err := s.Builder.
		Select("id", "date", "subject_name", "event_type", "created_by").
		From("control_events").
		OrderBy("date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var events []models.ControlEvent
	if err := s.SelectContext(ctx, &events, query, args...); err != nil {
		s.logger.Warn("не удалось получить список мероприятий", "error", err)
		return nil, err
	}
	return events, nil
}
