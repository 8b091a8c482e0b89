package spin

import (
	"spinner_backend/internal/model"
	servModel "spinner_backend/internal/service/spin/model"

	"github.com/shopspring/decimal"
)

// Settle - считает итог серии исходов при одинаковой ставке на каждый.
// Валовый выигрыш - ставка, умноженная на множитель режима, за каждый
// выигрышный исход. Чистый итог - валовый выигрыш минус суммарная
// стоимость серии
func Settle(outcomes []model.Outcome, amountPerPlay decimal.Decimal, variant model.Variant) model.Settlement {
	params := servModel.Variants[variant]

	wins := 0
	for _, o := range outcomes {
		if o.Win {
			wins++
		}
	}

	gross := amountPerPlay.Mul(params.Multiplier).Mul(decimal.NewFromInt(int64(wins)))
	cost := amountPerPlay.Mul(decimal.NewFromInt(int64(len(outcomes))))

	return model.Settlement{
		GrossWinnings: gross,
		TotalCost:     cost,
		NetResult:     gross.Sub(cost),
	}
}
