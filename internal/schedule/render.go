package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/post-kserks/schedule-bot/internal/timetable"
)

const (
	noLessonsDay  = "🎉 В этот день занятий нет"
	noLessonsWeek = "🎉 На этой неделе занятий нет"
)

// RenderDay форматирует расписание на день в текст для отправки пользователю.
func (r *Resolver) RenderDay(ctx context.Context, d time.Time, includeEvents bool) string {
	day, ok := r.DayScheduleFor(d)
	if !ok {
		return noLessonsDay
	}

	marks := map[string]string{}
	if includeEvents {
		marks = r.eventMarks(ctx, d)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n\n", timetable.WeekdayTitles[day.DayName], r.WeekLabel(d))

	for i, lesson := range day.Lessons {
		mark := ""
		if kind, ok := marks[lesson.Name]; ok {
			mark = " 🚨 " + kind
		}
		fmt.Fprintf(&b, "🕒 %s-%s\n", lesson.Start, lesson.End)
		fmt.Fprintf(&b, "📚 %s\n", lesson.Name)
		fmt.Fprintf(&b, "🏫 %s\n", lesson.Room)
		fmt.Fprintf(&b, "📝 %s%s\n", lesson.Kind, mark)
		// Разделитель между блоками, после последнего не ставится.
		if i < len(day.Lessons)-1 {
			b.WriteString("───────\n")
		}
	}
	return b.String()
}

// RenderWeek форматирует расписание на текущую неделю. Для каждого дня берётся
// ближайшая вперёд дата этого дня недели, чтобы наложить мероприятия именно
// на тот календарный день, который увидит пользователь.
func (r *Resolver) RenderWeek(ctx context.Context, ref time.Time) string {
	variant := r.variantFor(ref)
	header := fmt.Sprintf("📅 Расписание на неделю (%s)\n\n", r.WeekLabel(ref))

	var b strings.Builder
	b.WriteString(header)

	for idx := 0; idx < 6; idx++ {
		dayName := timetable.Weekdays[idx]
		day, ok := variant[dayName]
		if !ok || len(day.Lessons) == 0 {
			continue
		}

		fmt.Fprintf(&b, "%s:\n", timetable.WeekdayTitles[dayName])

		dayDate := dateForWeekday(idx, ref)
		marks := r.eventMarks(ctx, dayDate)

		for i, lesson := range day.Lessons {
			mark := ""
			if kind, ok := marks[lesson.Name]; ok {
				mark = " 🚨 " + kind
			}
			fmt.Fprintf(&b, "  %d. %s\n", i+1, lesson.Name)
			fmt.Fprintf(&b, "     ⏰ %s-%s\n", lesson.Start, lesson.End)
			fmt.Fprintf(&b, "     🏫 %s (%s)%s\n", lesson.Room, lesson.Kind, mark)
		}
		b.WriteString("\n")
	}

	if b.String() == header {
		return noLessonsWeek
	}
	return b.String()
}

// RenderToday — расписание на сегодня.
func (r *Resolver) RenderToday(ctx context.Context) string {
	return r.RenderDay(ctx, time.Now(), true)
}

// RenderTomorrow — расписание на завтра.
func (r *Resolver) RenderTomorrow(ctx context.Context) string {
	return r.RenderDay(ctx, time.Now().AddDate(0, 0, 1), true)
}

// dateForWeekday возвращает дату ближайшего (вперёд) дня недели с индексом target
// относительно ref. Если целевой день уже прошёл на этой неделе, берётся
// следующая неделя.
func dateForWeekday(target int, ref time.Time) time.Time {
	diff := target - weekdayIndex(ref)
	if diff < 0 {
		diff += 7
	}
	return ref.AddDate(0, 0, diff)
}
