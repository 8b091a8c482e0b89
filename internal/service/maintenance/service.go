package maintenance

import (
	"sync"

	"spinner_backend/internal/service"
)

type serv struct {
	mtx     sync.RWMutex
	enabled bool
}

// NewMaintenanceService - режим обслуживания. Сервис стартует в режиме
// обслуживания, оператор открывает игру явным переключением
func NewMaintenanceService() service.MaintenanceService {
	return &serv{enabled: true}
}

func (s *serv) Enabled() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.enabled
}

// Toggle - переключает режим и возвращает новое состояние
func (s *serv) Toggle() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.enabled = !s.enabled
	return s.enabled
}
