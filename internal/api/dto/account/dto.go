package account

type CreateRequest struct {
	TelegramID int64 `json:"telegram_id"` // ID игрока
}

type CreateResponse struct {
	Address string `json:"address"` // Адрес нового аккаунта в леджере
}

type BalanceResponse struct {
	Address string `json:"address"` // Адрес аккаунта
	Balance string `json:"balance"` // Живой баланс из леджера
}

type DepositAddressResponse struct {
	Address string `json:"address"` // Адрес для пополнения
}

type DepositRequest struct {
	TelegramID int64  `json:"telegram_id"` // ID игрока
	Amount     string `json:"amount"`      // Поступившая сумма
}

type WithdrawRequest struct {
	TelegramID int64  `json:"telegram_id"` // ID игрока
	ToAddress  string `json:"to_address"`  // Внешний адрес назначения
	Amount     string `json:"amount"`      // Сумма; пустая строка - весь баланс
}

type WithdrawResponse struct {
	ActualAmount  string `json:"actual_amount"`  // Отправлено за вычетом комиссии
	Fee           string `json:"fee"`            // Удержанная комиссия
	TransactionID string `json:"transaction_id"` // Транзакция вывода
}

type RefundRequest struct {
	TelegramID int64  `json:"telegram_id"` // ID игрока
	Amount     string `json:"amount"`      // Возвращаемая сумма
}

type RefundResponse struct {
	Amount        string `json:"amount"`         // Возвращённая сумма
	TransactionID string `json:"transaction_id"` // Транзакция возврата
}

type HistoryItem struct {
	Action    string `json:"action"`    // deposit или withdraw
	Amount    string `json:"amount"`    // Сумма операции
	Timestamp string `json:"timestamp"` // Время операции, RFC 3339
}

type HistoryResponse struct {
	Transactions []HistoryItem `json:"transactions"` // Журнал операций, новые первыми
}
