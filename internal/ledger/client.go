package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Status - статус транзакции на леджере
type Status string

const (
	StatusCommittedSuccess Status = "CommittedSuccess"
	StatusCommittedFailure Status = "CommittedFailure"
	StatusRejected         Status = "Rejected"
	// StatusUnknown - финального статуса не дождались. Трактуется как отказ,
	// никогда как успех
	StatusUnknown Status = "Unknown"
)

// Signer - подписывающая сторона перевода
type Signer struct {
	Address    string
	PrivateKey string
	PublicKey  string
}

// SubmitResult - результат отправки транзакции
type SubmitResult struct {
	TransactionID string
	Status        Status
	ErrorMessage  string
}

// Err возвращает SubmissionError если транзакция не закоммитилась успешно
func (r *SubmitResult) Err() error {
	if r.Status == StatusCommittedSuccess {
		return nil
	}
	return &SubmissionError{
		TransactionID: r.TransactionID,
		Status:        r.Status,
		Message:       r.ErrorMessage,
	}
}

// SubmissionError - отказ леджера с исходным статусом и сообщением.
// Сообщение шлюза сохраняется дословно
type SubmissionError struct {
	TransactionID string
	Status        Status
	Message       string
}

func (e *SubmissionError) Error() string {
	if len(e.Message) == 0 {
		return fmt.Sprintf("ledger submission failed with status %s", e.Status)
	}
	return fmt.Sprintf("ledger submission failed with status %s: %s", e.Status, e.Message)
}

// Client - граница внешнего леджера. Низкоуровневая сборка и подпись
// транзакций скрыта за SubmitTransfer
type Client interface {
	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)
	SubmitTransfer(ctx context.Context, manifest string, signer Signer) (*SubmitResult, error)
}
