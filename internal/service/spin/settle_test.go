package spin

import (
	"testing"

	"spinner_backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSettleSingleWin(t *testing.T) {
	outcomes := []model.Outcome{
		{Value: 22, Win: true},
		{Value: 10, Win: false},
		{Value: 37, Win: false},
	}

	got := Settle(outcomes, decimal.NewFromInt(10), model.VariantStandard)

	assert.True(t, got.GrossWinnings.Equal(decimal.NewFromInt(120)), "gross = %s", got.GrossWinnings)
	assert.True(t, got.TotalCost.Equal(decimal.NewFromInt(30)), "cost = %s", got.TotalCost)
	assert.True(t, got.NetResult.Equal(decimal.NewFromInt(90)), "net = %s", got.NetResult)
}

func TestSettleAllLosses(t *testing.T) {
	outcomes := []model.Outcome{
		{Value: 2, Win: false},
		{Value: 3, Win: false},
	}

	got := Settle(outcomes, decimal.NewFromInt(5), model.VariantStandard)

	assert.True(t, got.GrossWinnings.IsZero())
	assert.True(t, got.TotalCost.Equal(decimal.NewFromInt(10)))
	assert.True(t, got.NetResult.Equal(decimal.NewFromInt(-10)))
}

func TestSettleSevensMultiplier(t *testing.T) {
	outcomes := []model.Outcome{{Value: 64, Win: true}}

	got := Settle(outcomes, decimal.NewFromInt(2), model.VariantSevens)

	assert.True(t, got.GrossWinnings.Equal(decimal.NewFromInt(96)))
	assert.True(t, got.NetResult.Equal(decimal.NewFromInt(94)))
}

func TestSettleDieMultiplier(t *testing.T) {
	outcomes := []model.Outcome{
		{Value: 6, Win: true},
		{Value: 6, Win: true},
		{Value: 1, Win: false},
	}

	got := Settle(outcomes, decimal.NewFromInt(3), model.VariantDie)

	// 2 победы * 3 * 5 = 30, стоимость 9
	assert.True(t, got.GrossWinnings.Equal(decimal.NewFromInt(30)))
	assert.True(t, got.TotalCost.Equal(decimal.NewFromInt(9)))
	assert.True(t, got.NetResult.Equal(decimal.NewFromInt(21)))
}

func TestSettleFractionalAmount(t *testing.T) {
	outcomes := []model.Outcome{{Value: 1, Win: true}}
	amount := decimal.RequireFromString("2.5")

	got := Settle(outcomes, amount, model.VariantStandard)

	assert.True(t, got.GrossWinnings.Equal(decimal.NewFromInt(30)))
	assert.True(t, got.NetResult.Equal(decimal.RequireFromString("27.5")))
}
