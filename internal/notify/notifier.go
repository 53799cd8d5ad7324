package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/post-kserks/schedule-bot/internal/keyboards"
	"github.com/post-kserks/schedule-bot/internal/schedule"
	"github.com/post-kserks/schedule-bot/internal/timetable"
)

const (
	// Ежедневная рассылка расписания на завтра.
	dailyHour   = 21
	dailyMinute = 0

	// Проверка ближайших занятий: раз в минуту, первый прогон вскоре после старта.
	sweepInterval   = time.Minute
	sweepFirstDelay = 10 * time.Second

	// За сколько минут до начала занятия отправляется напоминание.
	reminderLead = 10
)

// Notifier ведёт две периодические задачи: вечернюю рассылку расписания на завтра
// и поминутную проверку ближайших занятий. Таймеры живут только в памяти процесса
// и после рестарта начинаются заново — пропущенная минута не навёрстывается.
type Notifier struct {
	sender       Sender
	users        UserSource
	resolver     *schedule.Resolver
	logger       *slog.Logger
	pruneBlocked bool

	broadcastMu sync.Mutex
}

func New(sender Sender, users UserSource, resolver *schedule.Resolver, pruneBlocked bool, logger *slog.Logger) *Notifier {
	return &Notifier{
		sender:       sender,
		users:        users,
		resolver:     resolver,
		logger:       logger.With("component", "notify"),
		pruneBlocked: pruneBlocked,
	}
}

// Start регистрирует обе задачи. Останавливаются они отменой контекста;
// начатая рассылка при этом дорабатывает до конца.
func (n *Notifier) Start(ctx context.Context) {
	go n.runDaily(ctx)
	go n.runReminderSweep(ctx)
	n.logger.Info("регулярные задания настроены")
}

func (n *Notifier) runDaily(ctx context.Context) {
	for {
		next := nextDailyRun(time.Now())
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
			n.sendDailySchedule(ctx)
		}
	}
}

// nextDailyRun — ближайший момент 21:00 по локальным часам.
func nextDailyRun(now time.Time) time.Time {
	at := time.Date(now.Year(), now.Month(), now.Day(), dailyHour, dailyMinute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

// sendDailySchedule отправляет расписание на завтра всем пользователям.
// Текст считается один раз, к сообщению прикладывается основная клавиатура.
func (n *Notifier) sendDailySchedule(ctx context.Context) {
	text := n.resolver.RenderTomorrow(ctx)
	kb := keyboards.Main()

	tally, err := n.Broadcast(ctx, func(id int64) tgbotapi.Chattable {
		msg := tgbotapi.NewMessage(id, text)
		msg.ReplyMarkup = kb
		return msg
	})
	if err != nil {
		n.logger.Error("ежедневная рассылка не выполнена", "error", err)
		return
	}
	n.logger.Info("ежедневное расписание отправлено", "success", tally.Success, "failed", tally.Failed)
}

func (n *Notifier) runReminderSweep(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(sweepFirstDelay):
	}

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	n.checkUpcomingLessons(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n.checkUpcomingLessons(ctx, now)
		}
	}
}

// checkUpcomingLessons сравнивает текущую минуту с минутой напоминания каждого
// занятия дня. Совпадение точное, поэтому при работающем процессе напоминание
// уходит не более одного раза на занятие в день.
func (n *Notifier) checkUpcomingLessons(ctx context.Context, now time.Time) {
	nowMinute := now.Hour()*60 + now.Minute()

	for _, lesson := range n.resolver.SubjectsWithTimes(now) {
		due, err := ReminderDue(lesson.Start, nowMinute)
		if err != nil {
			n.logger.Warn("не удалось разобрать время занятия", "subject", lesson.Name, "start", lesson.Start, "error", err)
			continue
		}
		if !due {
			continue
		}

		text := reminderText(lesson)
		tally, err := n.Broadcast(ctx, func(id int64) tgbotapi.Chattable {
			return tgbotapi.NewMessage(id, text)
		})
		if err != nil {
			n.logger.Error("рассылка напоминания не выполнена", "subject", lesson.Name, "error", err)
			continue
		}
		n.logger.Info("напоминание отправлено",
			"subject", lesson.Name, "start", lesson.Start,
			"success", tally.Success, "failed", tally.Failed)
	}
}

// ReminderDue сообщает, совпадает ли текущая минута с минутой напоминания
// (за reminderLead минут до начала, по модулю суток).
func ReminderDue(start string, nowMinute int) (bool, error) {
	m, err := schedule.MinuteOfDay(start)
	if err != nil {
		return false, err
	}
	return (m-reminderLead+24*60)%(24*60) == nowMinute, nil
}

func reminderText(lesson timetable.Lesson) string {
	return fmt.Sprintf(
		"🔔 Напоминание!\nЧерез 10 минут начинается:\n📚 %s\n🏫 %s\n📝 %s\n⏰ %s",
		lesson.Name, lesson.Room, lesson.Kind, lesson.Start,
	)
}
