package model

import (
	"spinner_backend/internal/model"

	"github.com/shopspring/decimal"
)

// VariantParams - параметры режима игры: размер пространства исходов,
// выигрышные значения и множитель выплаты.
// Матожидание на единицу ставки строго ниже единицы в каждом режиме
// (standard 12*4/64 = 0.75, sevens 48/64 = 0.75, die 5/6 ~ 0.83) -
// преимущество казны заложено намеренно
type VariantParams struct {
	SpaceSize     int
	WinningValues map[int]struct{}
	Multiplier    decimal.Decimal
	// SevensCap - дополнительный делитель потолка ставки.
	// У sevens множитель в 4 раза выше обычного, поэтому и потолок в 4 раза ниже
	SevensCap bool
}

// Variants - фиксированные таблицы режимов. Значения исходов повторяют
// 64-значное пространство анимации чат-платформы (и 6-значное для кубика)
var Variants = map[model.Variant]VariantParams{
	model.VariantStandard: {
		SpaceSize:     64,
		WinningValues: map[int]struct{}{1: {}, 22: {}, 43: {}, 64: {}},
		Multiplier:    decimal.NewFromInt(12),
	},
	model.VariantSevens: {
		SpaceSize:     64,
		WinningValues: map[int]struct{}{64: {}},
		Multiplier:    decimal.NewFromInt(48),
		SevensCap:     true,
	},
	model.VariantDie: {
		SpaceSize:     6,
		WinningValues: map[int]struct{}{6: {}},
		Multiplier:    decimal.NewFromInt(5),
	},
}
