package session_repo

import (
	"sync"

	"spinner_backend/internal/repository"
)

// Реализация хранилища busy-флагов активных спинов.
// Живёт только в памяти процесса: при рестарте все флаги снимаются.
// Гарантия взаимного исключения нужна только внутри одного процесса
type SessionRepo struct {
	mtx  sync.Mutex
	busy map[int64]bool
}

func NewSessionRepository() repository.SessionRepository {
	return &SessionRepo{
		busy: make(map[int64]bool),
	}
}

// TryAcquire - помечает пользователя занятым. Возвращает false без
// изменения состояния, если спин этого пользователя уже идёт
func (r *SessionRepo) TryAcquire(telegramID int64) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.busy[telegramID] {
		return false
	}
	r.busy[telegramID] = true
	return true
}

// Release - снимает пометку. Повторный вызов безопасен (no-op)
func (r *SessionRepo) Release(telegramID int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.busy, telegramID)
}
