package admin

type WhitelistRequest struct {
	TelegramID int64 `json:"telegram_id"` // ID игрока
}

type WhitelistResponse struct {
	Users []int64 `json:"users"` // Допущенные игроки
}

type MaintenanceResponse struct {
	Enabled bool `json:"enabled"` // Режим обслуживания после переключения
}

type PayoutRequest struct {
	TelegramID int64  `json:"telegram_id"` // Получатель
	Amount     string `json:"amount"`      // Сумма из казны
}

type PayoutResponse struct {
	Amount        string `json:"amount"`         // Отправлено за вычетом комиссии
	TransactionID string `json:"transaction_id"` // Транзакция выплаты
}
