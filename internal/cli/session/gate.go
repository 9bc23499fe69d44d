package session

import (
	"errors"
	"sync"
)

// ErrUnauthenticated — нет активной сессии; защищённые операции обязаны
// отказывать с этой ошибкой до обращения к хранилищу.
var ErrUnauthenticated = errors.New("no active session")

// Identity — установленная личность пользователя текущей сессии.
// Числовой id пользователя клиенту не сообщается: сервер извлекает его
// из auth-токена сам, клиенту достаточно логина.
type Identity struct {
	Login string
}

// Change — событие изменения сессии, рассылаемое подписчикам.
type Change struct {
	// Session содержит новую сессию или nil после выхода/истечения.
	Session *Identity
}

// Gate отслеживает наличие удалённой сессии. Чисто реактивен: состояние
// меняется только внешними событиями (вход, регистрация, выход, истечение),
// опроса нет.
type Gate struct {
	mu      sync.Mutex
	current *Identity
	subs    map[int]chan Change
	nextSub int
}

// NewGate создаёт гейт без сессии.
func NewGate() *Gate {
	return &Gate{subs: make(map[int]chan Change)}
}

// Set устанавливает сессию (событие входа/регистрации/обновления) и
// уведомляет подписчиков.
func (g *Gate) Set(id Identity) {
	g.mu.Lock()
	g.current = &id
	g.notifyLocked(&id)
	g.mu.Unlock()
}

// Clear сбрасывает сессию (выход или внешнее истечение) и уведомляет подписчиков.
func (g *Gate) Clear() {
	g.mu.Lock()
	g.current = nil
	g.notifyLocked(nil)
	g.mu.Unlock()
}

// Current возвращает сессию, если она установлена.
func (g *Gate) Current() (Identity, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil {
		return Identity{}, false
	}
	return *g.current, true
}

// Require возвращает сессию или ErrUnauthenticated.
func (g *Gate) Require() (Identity, error) {
	id, ok := g.Current()
	if !ok {
		return Identity{}, ErrUnauthenticated
	}
	return id, nil
}

// Subscribe возвращает канал событий сессии и функцию отписки.
// Отписка обязательна при завершении подписчика, иначе слушатель утечёт.
func (g *Gate) Subscribe() (<-chan Change, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.nextSub
	g.nextSub++
	ch := make(chan Change, 1)
	g.subs[idx] = ch

	cancel := func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if c, ok := g.subs[idx]; ok {
			delete(g.subs, idx)
			close(c)
		}
	}
	return ch, cancel
}

// notifyLocked рассылает событие без блокировки: медленный подписчик
// теряет промежуточные события, но всегда получит последнее из канала.
func (g *Gate) notifyLocked(id *Identity) {
	for _, ch := range g.subs {
		select {
		case ch <- Change{Session: id}:
		default:
			// вытесняем устаревшее событие
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- Change{Session: id}:
			default:
			}
		}
	}
}
