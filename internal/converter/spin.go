package converter

import (
	dto "spinner_backend/internal/api/dto/spin"
	"spinner_backend/internal/model"
)

func ToSpinRequest(req dto.PlayRequest) model.SpinRequest {
	return model.SpinRequest{
		TelegramID: req.TelegramID,
		RawAmount:  req.Amount,
		Count:      req.Count,
		Variant:    model.Variant(req.Variant),
	}
}

func ToPlayResponse(result model.SpinResult) dto.PlayResponse {
	outcomes := make([]int, len(result.Outcomes))
	for i, o := range result.Outcomes {
		outcomes[i] = o.Value
	}

	return dto.PlayResponse{
		Variant:       string(result.Variant),
		Amount:        result.Amount.String(),
		Outcomes:      outcomes,
		WinningSpins:  result.WinningSpins,
		GrossWinnings: result.GrossWinnings.String(),
		TotalCost:     result.TotalCost.String(),
		NetResult:     result.NetResult.String(),
		TransactionID: result.TransactionID,
	}
}

func ToPayoutsResponse(payouts []model.VariantPayout) dto.PayoutsResponse {
	rows := make([]dto.PayoutRow, len(payouts))
	for i, p := range payouts {
		rows[i] = dto.PayoutRow{
			Variant:         string(p.Variant),
			SpaceSize:       p.SpaceSize,
			WinningOutcomes: p.WinningOutcomes,
			Multiplier:      p.Multiplier.String(),
		}
	}
	return dto.PayoutsResponse{Payouts: rows}
}

func ToMaxBetsResponse(bets model.MaxBets) dto.MaxBetsResponse {
	return dto.MaxBetsResponse{
		Standard: bets.Standard.String(),
		Sevens:   bets.Sevens.String(),
		Die:      bets.Die.String(),
	}
}
