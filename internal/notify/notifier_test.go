package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSender проваливает отправку для заданных получателей.
type fakeSender struct {
	failFor   map[int64]error
	delivered []int64
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, errors.New("неожиданный тип сообщения")
	}
	if err, ok := f.failFor[msg.ChatID]; ok {
		return tgbotapi.Message{}, err
	}
	f.delivered = append(f.delivered, msg.ChatID)
	return tgbotapi.Message{}, nil
}

// fakeUsers — тестовый реестр получателей.
type fakeUsers struct {
	ids     []int64
	err     error
	removed []int64
}

func (f *fakeUsers) AllUserIDs(_ context.Context) ([]int64, error) {
	return f.ids, f.err
}

func (f *fakeUsers) RemoveUser(_ context.Context, id int64) error {
	f.removed = append(f.removed, id)
	return nil
}

func textMessage(id int64) tgbotapi.Chattable {
	return tgbotapi.NewMessage(id, "тест")
}

func TestBroadcast_FailureIsolation(t *testing.T) {
	sender := &fakeSender{failFor: map[int64]error{2: errors.New("Bad Request: chat not found")}}
	users := &fakeUsers{ids: []int64{1, 2, 3}}
	n := New(sender, users, nil, false, testLogger())

	tally, err := n.Broadcast(context.Background(), textMessage)
	if err != nil {
		t.Fatalf("неожиданная ошибка рассылки: %v", err)
	}
	if tally.Success != 2 || tally.Failed != 1 {
		t.Errorf("итог рассылки {%d, %d}, ожидалось {2, 1}", tally.Success, tally.Failed)
	}
	// Третий получатель должен получить сообщение несмотря на сбой второго.
	if len(sender.delivered) != 2 || sender.delivered[0] != 1 || sender.delivered[1] != 3 {
		t.Errorf("доставлено %v, ожидалось [1 3]", sender.delivered)
	}
}

func TestBroadcast_EnumerationFailureIsFatal(t *testing.T) {
	users := &fakeUsers{err: errors.New("база недоступна")}
	n := New(&fakeSender{}, users, nil, false, testLogger())

	if _, err := n.Broadcast(context.Background(), textMessage); err == nil {
		t.Errorf("ошибка перечисления получателей должна прерывать рассылку")
	}
}

func TestBroadcast_BlockedUserRetainedByDefault(t *testing.T) {
	sender := &fakeSender{failFor: map[int64]error{2: errors.New("Forbidden: bot was blocked by the user")}}
	users := &fakeUsers{ids: []int64{1, 2}}
	n := New(sender, users, nil, false, testLogger())

	tally, err := n.Broadcast(context.Background(), textMessage)
	if err != nil {
		t.Fatalf("неожиданная ошибка рассылки: %v", err)
	}
	if tally.Failed != 1 {
		t.Errorf("отправка заблокировавшему должна считаться ошибкой")
	}
	if len(users.removed) != 0 {
		t.Errorf("без политики удаления получатель должен остаться в реестре")
	}
}

func TestBroadcast_BlockedUserPrunedWhenEnabled(t *testing.T) {
	sender := &fakeSender{failFor: map[int64]error{2: errors.New("Forbidden: bot was blocked by the user")}}
	users := &fakeUsers{ids: []int64{1, 2}}
	n := New(sender, users, nil, true, testLogger())

	if _, err := n.Broadcast(context.Background(), textMessage); err != nil {
		t.Fatalf("неожиданная ошибка рассылки: %v", err)
	}
	if len(users.removed) != 1 || users.removed[0] != 2 {
		t.Errorf("заблокировавший пользователь должен быть удалён, удалены: %v", users.removed)
	}
}

func TestReminderDue(t *testing.T) {
	// Занятие в 10:10 — напоминание ровно в 10:00 и только в 10:00.
	due, err := ReminderDue("10:10", 10*60)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !due {
		t.Errorf("в 10:00 напоминание о занятии в 10:10 должно сработать")
	}

	for _, minute := range []int{10*60 + 1, 10*60 - 1, 10*60 + 10} {
		due, err := ReminderDue("10:10", minute)
		if err != nil {
			t.Fatalf("неожиданная ошибка: %v", err)
		}
		if due {
			t.Errorf("в минуту %d напоминание о занятии в 10:10 срабатывать не должно", minute)
		}
	}

	// Второе занятие дня из сценария.
	due, err = ReminderDue("14:05", 13*60+55)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !due {
		t.Errorf("в 13:55 напоминание о занятии в 14:05 должно сработать")
	}
}

func TestReminderDue_WrapsMidnight(t *testing.T) {
	// Начало в 00:05 — напоминание в 23:55 предыдущих суток (по модулю дня).
	due, err := ReminderDue("00:05", 23*60+55)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !due {
		t.Errorf("напоминание должно переноситься через полночь по модулю суток")
	}
}

func TestReminderDue_BadClock(t *testing.T) {
	if _, err := ReminderDue("кривое", 0); err == nil {
		t.Errorf("ожидалась ошибка разбора времени")
	}
}

func TestNextDailyRun(t *testing.T) {
	loc := time.Local

	before := time.Date(2024, time.September, 2, 20, 30, 0, 0, loc)
	if got := nextDailyRun(before); !got.Equal(time.Date(2024, time.September, 2, 21, 0, 0, 0, loc)) {
		t.Errorf("до 21:00 рассылка в тот же день, получено %s", got)
	}

	after := time.Date(2024, time.September, 2, 21, 0, 0, 0, loc)
	if got := nextDailyRun(after); !got.Equal(time.Date(2024, time.September, 3, 21, 0, 0, 0, loc)) {
		t.Errorf("ровно в 21:00 следующая рассылка завтра, получено %s", got)
	}
}
