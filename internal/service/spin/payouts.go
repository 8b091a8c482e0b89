package spin

import (
	"spinner_backend/internal/model"
	servModel "spinner_backend/internal/service/spin/model"
)

// Payouts - статическая таблица выплат по режимам
func (s *serv) Payouts() []model.VariantPayout {
	order := []model.Variant{model.VariantStandard, model.VariantSevens, model.VariantDie}

	payouts := make([]model.VariantPayout, 0, len(order))
	for _, variant := range order {
		params := servModel.Variants[variant]
		payouts = append(payouts, model.VariantPayout{
			Variant:         variant,
			SpaceSize:       params.SpaceSize,
			WinningOutcomes: len(params.WinningValues),
			Multiplier:      params.Multiplier,
		})
	}
	return payouts
}
