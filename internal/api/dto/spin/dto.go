package spin

type PlayRequest struct {
	TelegramID int64  `json:"telegram_id"` // ID игрока
	Amount     string `json:"amount"`      // Ставка на спин, число или "max"
	Count      int    `json:"count"`       // Спинов в батче, 1-3
	Variant    string `json:"variant"`     // Режим: standard, sevens, die
}

type PlayResponse struct {
	Variant       string `json:"variant"`        // Режим
	Amount        string `json:"amount"`         // Фактическая ставка на спин
	Outcomes      []int  `json:"outcomes"`       // Выпавшие значения
	WinningSpins  []int  `json:"winning_spins"`  // Номера выигрышных спинов (с 1)
	GrossWinnings string `json:"gross_winnings"` // Валовый выигрыш
	TotalCost     string `json:"total_cost"`     // Стоимость батча
	NetResult     string `json:"net_result"`     // Чистый итог
	TransactionID string `json:"transaction_id"` // Транзакция расчёта, пустая при нулевом итоге
}

type PayoutRow struct {
	Variant         string `json:"variant"`          // Режим
	SpaceSize       int    `json:"space_size"`       // Возможных исходов
	WinningOutcomes int    `json:"winning_outcomes"` // Из них выигрышных
	Multiplier      string `json:"multiplier"`       // Множитель выплаты
}

type PayoutsResponse struct {
	Payouts []PayoutRow `json:"payouts"` // Таблица выплат
}

type MaxBetsResponse struct {
	Standard string `json:"standard"` // Потолок ставки standard
	Sevens   string `json:"sevens"`   // Потолок ставки sevens
	Die      string `json:"die"`      // Потолок ставки die
}
