package spin

import (
	"strings"

	"spinner_backend/internal/model"
	"spinner_backend/internal/service"
	servModel "spinner_backend/internal/service/spin/model"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	four    = decimal.NewFromInt(4)
)

// MaxBet - потолок ставки для режима при текущем балансе казны.
// Максимальный выигрыш ограничен долей баланса казны, ставка - выигрышем,
// делённым на множитель, и глобальным потолком. Для sevens потолок
// дополнительно делится на 4, чтобы потенциальная выплата осталась
// сравнимой с обычным режимом
func MaxBet(houseBalance decimal.Decimal, variant model.Variant, maxLossPercent, ceiling decimal.Decimal) decimal.Decimal {
	params := servModel.Variants[variant]

	maxWin := houseBalance.Mul(maxLossPercent).Div(hundred)
	if maxWin.IsNegative() {
		maxWin = decimal.Zero
	}

	maxBet := decimal.Min(ceiling, maxWin.Div(params.Multiplier))
	if params.SevensCap {
		maxBet = decimal.Min(maxBet, ceiling.Div(four))
	}
	return maxBet
}

// ResolveAmount - превращает запрошенную ставку в допустимую.
// Литерал "max" означает минимум из потолка и баланса игрока за вычетом
// комиссии. Числовая ставка ниже минимума отклоняется, выше потолка -
// молча урезается до потолка
func ResolveAmount(raw string, userBalance, maxBet, minBet, fee decimal.Decimal) (decimal.Decimal, error) {
	if strings.EqualFold(raw, "max") {
		amount := decimal.Min(maxBet, userBalance.Sub(fee))
		if amount.LessThan(minBet) {
			return decimal.Zero, service.ErrBelowMinimum
		}
		return amount, nil
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, service.ErrInvalidAmount
	}

	if amount.LessThan(minBet) {
		return decimal.Zero, service.ErrBelowMinimum
	}
	if amount.GreaterThan(maxBet) {
		return maxBet, nil
	}
	return amount, nil
}
