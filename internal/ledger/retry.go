package ledger

import (
	"context"
	"time"
)

// RetryPolicy - явная политика повторов для выплат из казны.
// Пользовательские расчёты этой политикой не пользуются, там всегда
// одна попытка
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
	// Sleep подменяется в тестах, по умолчанию time.Sleep
	Sleep func(time.Duration)
}

// Do - выполняет fn до первого успеха, максимум MaxAttempts раз с паузой
// Backoff между попытками. Возвращает последнюю ошибку
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < p.MaxAttempts-1 {
			sleep(p.Backoff)
		}
	}
	return lastErr
}
