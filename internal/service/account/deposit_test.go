package account

import (
	"context"
	"testing"

	"spinner_backend/internal/model"
	"spinner_backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositAddressNoLedgerCalls(t *testing.T) {
	f := newFixture()

	address, err := f.serv.DepositAddress(context.Background(), testPlayerID)
	require.NoError(t, err)

	assert.Equal(t, "account_player", address)
	assert.Zero(t, f.ledgerc.readCalls)
	assert.Zero(t, f.ledgerc.writeCalls)
}

func TestDepositAddressNoAccount(t *testing.T) {
	f := newFixture()

	_, err := f.serv.DepositAddress(context.Background(), 777)
	assert.ErrorIs(t, err, service.ErrNoAccount)
}

func TestRecordDeposit(t *testing.T) {
	f := newFixture()

	err := f.serv.RecordDeposit(context.Background(), model.DepositRequest{
		TelegramID: testPlayerID,
		Amount:     decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	require.Len(t, f.txs.records, 1)
	assert.Equal(t, model.ActionDeposit, f.txs.records[0].Action)
	assert.True(t, f.txs.records[0].Amount.Equal(decimal.NewFromInt(40)))
}

func TestRecordDepositExceedsBalance(t *testing.T) {
	f := newFixture()

	err := f.serv.RecordDeposit(context.Background(), model.DepositRequest{
		TelegramID: testPlayerID,
		Amount:     decimal.NewFromInt(500),
	})

	var insufficient *service.InsufficientFundsError
	assert.ErrorAs(t, err, &insufficient)
	assert.Empty(t, f.txs.records)
}

func TestRecordDepositRejectsNonPositive(t *testing.T) {
	f := newFixture()

	err := f.serv.RecordDeposit(context.Background(), model.DepositRequest{
		TelegramID: testPlayerID,
		Amount:     decimal.Zero,
	})
	assert.ErrorIs(t, err, service.ErrInvalidAmount)
}
