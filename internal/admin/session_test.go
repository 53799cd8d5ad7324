package admin

import (
	"testing"
	"time"
)

func TestSessionManager_Lifecycle(t *testing.T) {
	m := newSessionManager(30 * time.Minute)

	m.start(1, stepDate)
	sess, ok := m.get(1)
	if !ok {
		t.Fatalf("сессия должна существовать сразу после старта")
	}
	if sess.step != stepDate {
		t.Errorf("шаг сессии %v, ожидался stepDate", sess.step)
	}

	m.clear(1)
	if m.active(1) {
		t.Errorf("после clear сессии быть не должно")
	}
}

func TestSessionManager_TTL(t *testing.T) {
	m := newSessionManager(30 * time.Minute)

	now := time.Date(2024, time.September, 2, 12, 0, 0, 0, time.Local)
	m.now = func() time.Time { return now }

	m.start(1, stepBroadcast)

	// Активность в пределах TTL продлевает сессию.
	now = now.Add(20 * time.Minute)
	if !m.active(1) {
		t.Fatalf("сессия не должна истечь за 20 минут")
	}

	now = now.Add(25 * time.Minute)
	if !m.active(1) {
		t.Fatalf("get должен был продлить сессию")
	}

	// Без активности сессия истекает.
	now = now.Add(31 * time.Minute)
	if m.active(1) {
		t.Errorf("сессия должна истечь через 31 минуту бездействия")
	}
}

func TestSessionManager_SweepOnStart(t *testing.T) {
	m := newSessionManager(30 * time.Minute)

	now := time.Date(2024, time.September, 2, 12, 0, 0, 0, time.Local)
	m.now = func() time.Time { return now }

	m.start(1, stepDate)
	now = now.Add(time.Hour)
	m.start(2, stepDate)

	m.mu.Lock()
	_, stale := m.sessions[1]
	m.mu.Unlock()
	if stale {
		t.Errorf("истёкшая сессия должна выметаться при создании новой")
	}
}

func TestSessionManager_StartReplacesSession(t *testing.T) {
	m := newSessionManager(30 * time.Minute)

	m.start(1, stepDate)
	sess, _ := m.get(1)
	sess.date = "2024-01-20"
	sess.step = stepSubject

	m.start(1, stepBroadcast)
	sess, ok := m.get(1)
	if !ok {
		t.Fatalf("сессия должна существовать")
	}
	if sess.step != stepBroadcast || sess.date != "" {
		t.Errorf("повторный start должен начинать диалог заново: %+v", sess)
	}
}
