package admin

import (
	"sync"
	"time"
)

// Шаги многошаговых диалогов админ-панели.
type step int

const (
	stepDate step = iota
	stepSubject
	stepKind
	stepBroadcast
)

// session — состояние одного незавершённого диалога (добавление мероприятия
// или набор текста рассылки).
type session struct {
	step       step
	date       string
	subject    string
	lastActive time.Time
}

// sessionManager хранит диалоги по id пользователя. Сессии живут в памяти
// процесса и истекают через ttl после последней активности, чтобы брошенные
// диалоги не копились бесконечно.
type sessionManager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[int64]*session
	now      func() time.Time
}

func newSessionManager(ttl time.Duration) *sessionManager {
	return &sessionManager{
		ttl:      ttl,
		sessions: make(map[int64]*session),
		now:      time.Now,
	}
}

// start открывает новый диалог, затирая прежний. Заодно выметаются истёкшие.
func (m *sessionManager) start(userID int64, s step) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, sess := range m.sessions {
		if now.Sub(sess.lastActive) > m.ttl {
			delete(m.sessions, id)
		}
	}
	m.sessions[userID] = &session{step: s, lastActive: now}
}

// get возвращает активную сессию пользователя и отмечает активность.
// Истёкшая сессия удаляется и считается отсутствующей.
func (m *sessionManager) get(userID int64) (*session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if !ok {
		return nil, false
	}
	now := m.now()
	if now.Sub(sess.lastActive) > m.ttl {
		delete(m.sessions, userID)
		return nil, false
	}
	sess.lastActive = now
	return sess, true
}

// clear завершает диалог пользователя.
func (m *sessionManager) clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// active сообщает, есть ли у пользователя незавершённый диалог.
func (m *sessionManager) active(userID int64) bool {
	_, ok := m.get(userID)
	return ok
}
