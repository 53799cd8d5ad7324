package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/post-kserks/schedule-bot/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), logger)
	if err != nil {
		t.Fatalf("не удалось открыть тестовую БД: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func strPtr(s string) *string { return &s }

func TestControlEvents_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.AddControlEvent(ctx, "2024-09-02", "математический анализ", "контрольная работа", strPtr("admin"))
	if err != nil {
		t.Fatalf("добавление мероприятия: %v", err)
	}
	if id == 0 {
		t.Fatalf("хранилище должно присвоить ненулевой id")
	}

	events, err := s.ControlEventsByDate(ctx, "2024-09-02")
	if err != nil {
		t.Fatalf("выборка по дате: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("ожидалось одно мероприятие, получено %d", len(events))
	}
	if events[0].Subject != "математический анализ" || events[0].Kind != "контрольная работа" {
		t.Errorf("мероприятие не совпадает: %+v", events[0])
	}
	if events[0].CreatedBy == nil || *events[0].CreatedBy != "admin" {
		t.Errorf("не сохранён автор мероприятия: %+v", events[0])
	}

	deleted, err := s.DeleteControlEvent(ctx, id)
	if err != nil {
		t.Fatalf("удаление мероприятия: %v", err)
	}
	if !deleted {
		t.Errorf("удаление существующего id должно вернуть true")
	}

	all, err := s.AllControlEvents(ctx)
	if err != nil {
		t.Fatalf("полный список: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("после удаления список должен быть пуст, получено %d", len(all))
	}
}

func TestDeleteControlEvent_NotFound(t *testing.T) {
	s := openTestStore(t)

	deleted, err := s.DeleteControlEvent(context.Background(), 12345)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if deleted {
		t.Errorf("удаление несуществующего id должно вернуть false")
	}
}

func TestControlEventsByDate_OtherDatesExcluded(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.AddControlEvent(ctx, "2024-09-02", "социология", "зачёт", nil); err != nil {
		t.Fatalf("добавление мероприятия: %v", err)
	}
	if _, err := s.AddControlEvent(ctx, "2024-09-03", "информатика", "контрольная работа", nil); err != nil {
		t.Fatalf("добавление мероприятия: %v", err)
	}

	events, err := s.ControlEventsByDate(ctx, "2024-09-02")
	if err != nil {
		t.Fatalf("выборка по дате: %v", err)
	}
	if len(events) != 1 || events[0].Subject != "социология" {
		t.Errorf("выборка по дате захватила чужие мероприятия: %+v", events)
	}
}

func TestAllControlEvents_OrderedByDate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.AddControlEvent(ctx, "2024-09-10", "физика", "экзамен", nil); err != nil {
		t.Fatalf("добавление мероприятия: %v", err)
	}
	if _, err := s.AddControlEvent(ctx, "2024-09-02", "социология", "зачёт", nil); err != nil {
		t.Fatalf("добавление мероприятия: %v", err)
	}

	all, err := s.AllControlEvents(ctx)
	if err != nil {
		t.Fatalf("полный список: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ожидалось два мероприятия, получено %d", len(all))
	}
	if all[0].Date != "2024-09-02" || all[1].Date != "2024-09-10" {
		t.Errorf("список должен быть отсортирован по дате: %+v", all)
	}
}

func TestUpsertUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := models.User{ID: 100, Username: strPtr("alice"), FirstName: "Алиса"}
	if err := s.UpsertUser(ctx, u); err != nil {
		t.Fatalf("первая вставка: %v", err)
	}

	// Повторная вставка с тем же id не создаёт дубликата.
	u.FirstName = "Алиса Обновлённая"
	if err := s.UpsertUser(ctx, u); err != nil {
		t.Fatalf("повторная вставка: %v", err)
	}

	ids, err := s.AllUserIDs(ctx)
	if err != nil {
		t.Fatalf("список id: %v", err)
	}
	if len(ids) != 1 || ids[0] != 100 {
		t.Errorf("ожидался единственный id 100, получено %v", ids)
	}
}

func TestRemoveUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.UpsertUser(ctx, models.User{ID: 1, FirstName: "a"}); err != nil {
		t.Fatalf("вставка: %v", err)
	}
	if err := s.UpsertUser(ctx, models.User{ID: 2, FirstName: "b"}); err != nil {
		t.Fatalf("вставка: %v", err)
	}

	if err := s.RemoveUser(ctx, 1); err != nil {
		t.Fatalf("удаление: %v", err)
	}

	ids, err := s.AllUserIDs(ctx)
	if err != nil {
		t.Fatalf("список id: %v", err)
	}
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("после удаления ожидался только id 2, получено %v", ids)
	}
}
