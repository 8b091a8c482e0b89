package spin

import (
	"context"
	"testing"

	"spinner_backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxBetsUsesLiveHouseBalance(t *testing.T) {
	f := newPlayFixture(1)
	f.ledgerc.balances["account_house"] = decimal.NewFromInt(1200)

	bets, err := f.serv.MaxBets(context.Background())
	require.NoError(t, err)

	// 1200 * 5% = 60
	assert.True(t, bets.Standard.Equal(decimal.NewFromInt(60).Div(decimal.NewFromInt(12))))
	assert.True(t, bets.Sevens.Equal(decimal.NewFromInt(60).Div(decimal.NewFromInt(48))))
	assert.True(t, bets.Die.Equal(decimal.NewFromInt(60).Div(decimal.NewFromInt(5))))
}

func TestPayoutsTable(t *testing.T) {
	f := newPlayFixture(1)

	payouts := f.serv.Payouts()
	require.Len(t, payouts, 3)

	assert.Equal(t, 64, payouts[0].SpaceSize)
	assert.Equal(t, 4, payouts[0].WinningOutcomes)
	assert.True(t, payouts[0].Multiplier.Equal(decimal.NewFromInt(12)))

	assert.Equal(t, 1, payouts[1].WinningOutcomes)
	assert.True(t, payouts[1].Multiplier.Equal(decimal.NewFromInt(48)))

	assert.Equal(t, 6, payouts[2].SpaceSize)
	assert.True(t, payouts[2].Multiplier.Equal(decimal.NewFromInt(5)))
}

func TestMaxBetsWithoutGameAccount(t *testing.T) {
	f := newPlayFixture(1)
	f.stats.game = nil

	_, err := f.serv.MaxBets(context.Background())
	assert.ErrorIs(t, err, service.ErrGameAccountMissing)
}
