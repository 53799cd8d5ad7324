package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/post-kserks/schedule-bot/internal/models"
	"github.com/post-kserks/schedule-bot/internal/timetable"
)

// EventSource — источник контрольных мероприятий на дату. Реализуется хранилищем.
type EventSource interface {
	ControlEventsByDate(ctx context.Context, date string) ([]models.ControlEvent, error)
}

// Resolver отвечает на вопрос «что за занятия в этот день»: определяет активную
// неделю (числитель/знаменатель), достаёт сетку дня и накладывает контрольные
// мероприятия из хранилища.
type Resolver struct {
	numerator     timetable.Variant
	denominator   timetable.Variant
	semesterStart time.Time
	events        EventSource
	logger        *slog.Logger
}

func NewResolver(num, den timetable.Variant, semesterStart time.Time, events EventSource, logger *slog.Logger) *Resolver {
	return &Resolver{
		numerator:     num,
		denominator:   den,
		semesterStart: truncateToDate(semesterStart),
		events:        events,
		logger:        logger.With("component", "schedule"),
	}
}

// truncateToDate отбрасывает время суток. Дата пересобирается в UTC, чтобы
// разница дат всегда была кратна ровно 24 часам.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// floorDiv — деление с округлением вниз (в Go целочисленное деление
// усекает к нулю, что ломает чётность недель до начала семестра).
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// weekdayIndex возвращает номер дня недели, понедельник = 0.
func weekdayIndex(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// DateKey форматирует дату так, как она хранится в БД.
func DateKey(d time.Time) string {
	return d.Format("2006-01-02")
}

// IsNumeratorWeek сообщает, попадает ли дата на неделю-числитель.
// Чётный номер недели от начала семестра — числитель.
func (r *Resolver) IsNumeratorWeek(d time.Time) bool {
	days := int(truncateToDate(d).Sub(r.semesterStart) / (24 * time.Hour))
	week := floorDiv(days, 7)
	return ((week%2)+2)%2 == 0
}

// WeekLabel — подпись типа недели для заголовков.
func (r *Resolver) WeekLabel(d time.Time) string {
	if r.IsNumeratorWeek(d) {
		return "Числитель"
	}
	return "Знаменатель"
}

func (r *Resolver) variantFor(d time.Time) timetable.Variant {
	if r.IsNumeratorWeek(d) {
		return r.numerator
	}
	return r.denominator
}

// DayScheduleFor возвращает сетку занятий на дату. Отсутствие занятий
// (воскресенье или незаполненный день) — штатная ситуация, не ошибка.
func (r *Resolver) DayScheduleFor(d time.Time) (timetable.DaySchedule, bool) {
	dayName := timetable.Weekdays[weekdayIndex(d)]
	day, ok := r.variantFor(d)[dayName]
	if !ok || len(day.Lessons) == 0 {
		return timetable.DaySchedule{}, false
	}
	return day, true
}

// SubjectsWithTimes — плоский список занятий дня для проверки напоминаний.
// Пустой срез, если занятий нет.
func (r *Resolver) SubjectsWithTimes(d time.Time) []timetable.Lesson {
	day, ok := r.DayScheduleFor(d)
	if !ok {
		return nil
	}
	return day.Lessons
}

// eventMarks строит соответствие «предмет → тип мероприятия» на дату.
// Сопоставление по точному совпадению названия. При нескольких мероприятиях
// на один предмет побеждает последнее в порядке выдачи хранилища (по id).
// Ошибка хранилища деградирует до отсутствия пометок.
func (r *Resolver) eventMarks(ctx context.Context, d time.Time) map[string]string {
	marks := make(map[string]string)
	if r.events == nil {
		return marks
	}
	events, err := r.events.ControlEventsByDate(ctx, DateKey(d))
	if err != nil {
		r.logger.Warn("не удалось получить контрольные мероприятия", "date", DateKey(d), "error", err)
		return marks
	}
	for _, ev := range events {
		marks[ev.Subject] = ev.Kind
	}
	return marks
}
