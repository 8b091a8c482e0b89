package ledger

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stretchr/testify/assert"
)

const (
	testResource = "resource_test"
	testHouse    = "account_house"
	testPlayer   = "account_player"
)

func TestSettleManifestWin(t *testing.T) {
	m := SettleManifest(testResource, testHouse, testPlayer, decimal.NewFromInt(90))

	// Казна платит и блокирует комиссию
	assert.True(t, strings.Index(m, testHouse) < strings.Index(m, testPlayer))
	assert.Contains(t, m, `"lock_fee"
    Decimal("0.5")`)
	assert.Contains(t, m, `Decimal("90")`)
	assert.Contains(t, m, `Bucket("winnings")`)
}

func TestSettleManifestLoss(t *testing.T) {
	m := SettleManifest(testResource, testHouse, testPlayer, decimal.NewFromInt(-30))

	// Игрок платит, сумма без знака
	assert.True(t, strings.Index(m, testPlayer) < strings.Index(m, testHouse))
	assert.Contains(t, m, `Decimal("30")`)
	assert.NotContains(t, m, "-30")
	assert.Contains(t, m, `Bucket("payment")`)
}

func TestPayoutManifestDeductsFee(t *testing.T) {
	m := PayoutManifest(testResource, testHouse, testPlayer, decimal.NewFromInt(10))

	assert.Contains(t, m, `Decimal("9.5")`)
	assert.Contains(t, m, `"lock_fee"
    Decimal("2")`)
}

func TestPayoutManifestNeverNegative(t *testing.T) {
	m := PayoutManifest(testResource, testHouse, testPlayer, decimal.RequireFromString("0.2"))

	assert.Contains(t, m, `Decimal("0")`)
	assert.NotContains(t, m, "-")
}

func TestWithdrawManifestDeductsFee(t *testing.T) {
	m := WithdrawManifest(testResource, testPlayer, "account_external", decimal.NewFromInt(50))

	assert.Contains(t, m, `Decimal("48.999999")`)
	assert.Contains(t, m, "account_external")
	assert.Contains(t, m, `"lock_fee"
    Decimal("1")`)
}
