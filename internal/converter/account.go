package converter

import (
	"time"

	dto "spinner_backend/internal/api/dto/account"
	"spinner_backend/internal/model"

	"github.com/shopspring/decimal"
)

func ToBalanceResponse(info model.BalanceInfo) dto.BalanceResponse {
	return dto.BalanceResponse{
		Address: info.Address,
		Balance: info.Balance.String(),
	}
}

func ToDepositRequest(req dto.DepositRequest) (model.DepositRequest, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return model.DepositRequest{}, err
	}

	return model.DepositRequest{
		TelegramID: req.TelegramID,
		Amount:     amount,
	}, nil
}

// ToWithdrawRequest - пустая сумма в запросе означает вывод всего баланса
func ToWithdrawRequest(req dto.WithdrawRequest) (model.WithdrawRequest, error) {
	amount := decimal.Zero
	if len(req.Amount) != 0 {
		parsed, err := decimal.NewFromString(req.Amount)
		if err != nil {
			return model.WithdrawRequest{}, err
		}
		amount = parsed
	}

	return model.WithdrawRequest{
		TelegramID: req.TelegramID,
		ToAddress:  req.ToAddress,
		Amount:     amount,
	}, nil
}

func ToWithdrawResponse(result model.WithdrawResult) dto.WithdrawResponse {
	return dto.WithdrawResponse{
		ActualAmount:  result.ActualAmount.String(),
		Fee:           result.Fee.String(),
		TransactionID: result.TransactionID,
	}
}

func ToRefundRequest(req dto.RefundRequest) (model.RefundRequest, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return model.RefundRequest{}, err
	}

	return model.RefundRequest{
		TelegramID: req.TelegramID,
		Amount:     amount,
	}, nil
}

func ToRefundResponse(result model.RefundResult) dto.RefundResponse {
	return dto.RefundResponse{
		Amount:        result.Amount.String(),
		TransactionID: result.TransactionID,
	}
}

func ToHistoryResponse(records []model.TransactionRecord) dto.HistoryResponse {
	items := make([]dto.HistoryItem, len(records))
	for i, r := range records {
		items[i] = dto.HistoryItem{
			Action:    r.Action,
			Amount:    r.Amount.String(),
			Timestamp: r.Timestamp.Format(time.RFC3339),
		}
	}
	return dto.HistoryResponse{Transactions: items}
}
