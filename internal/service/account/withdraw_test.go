package account

import (
	"context"
	"testing"
	"time"

	"spinner_backend/internal/ledger"
	"spinner_backend/internal/model"
	"spinner_backend/internal/repository"
	"spinner_backend/internal/repository/session_repo"
	"spinner_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPlayerID int64 = 100

type testGameCfg struct{}

func (testGameCfg) MaxLossPercent() decimal.Decimal { return decimal.NewFromInt(5) }
func (testGameCfg) MaxBetCeiling() decimal.Decimal  { return decimal.NewFromInt(1000) }
func (testGameCfg) MinBet() decimal.Decimal         { return decimal.NewFromInt(1) }
func (testGameCfg) TransactionFee() decimal.Decimal { return decimal.RequireFromString("0.5") }
func (testGameCfg) WithdrawFee() decimal.Decimal    { return decimal.RequireFromString("1.000001") }
func (testGameCfg) MinWithdraw() decimal.Decimal    { return decimal.RequireFromString("1.01") }
func (testGameCfg) SpinDelay() time.Duration        { return 0 }

type testLedgerCfg struct{}

func (testLedgerCfg) GatewayURL() string      { return "http://gateway.test" }
func (testLedgerCfg) ResourceAddress() string { return "resource_test" }
func (testLedgerCfg) NetworkID() uint8        { return 2 }

type fakeUserRepo struct {
	users map[int64]*model.User
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	if _, ok := r.users[user.TelegramID]; ok {
		return assert.AnError
	}
	r.users[user.TelegramID] = user
	return nil
}

func (r *fakeUserRepo) GetUser(_ context.Context, telegramID int64) (*model.User, error) {
	user, ok := r.users[telegramID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

type fakeTxRepo struct {
	records []model.TransactionRecord
}

func (r *fakeTxRepo) CreateRecord(_ context.Context, record *model.TransactionRecord) error {
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeTxRepo) ListByUser(_ context.Context, telegramID int64) ([]model.TransactionRecord, error) {
	var out []model.TransactionRecord
	for _, rec := range r.records {
		if rec.TelegramID == telegramID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeLedger struct {
	balances   map[string]decimal.Decimal
	result     *ledger.SubmitResult
	readCalls  int
	writeCalls int
}

func (c *fakeLedger) GetBalance(_ context.Context, address string) (decimal.Decimal, error) {
	c.readCalls++
	return c.balances[address], nil
}

func (c *fakeLedger) SubmitTransfer(context.Context, string, ledger.Signer) (*ledger.SubmitResult, error) {
	c.writeCalls++
	return c.result, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	users   *fakeUserRepo
	txs     *fakeTxRepo
	ledgerc *fakeLedger
	serv    service.AccountService
}

func newFixture() *fixture {
	f := &fixture{
		users: &fakeUserRepo{users: map[int64]*model.User{
			testPlayerID: {TelegramID: testPlayerID, Address: "account_player"},
		}},
		txs: &fakeTxRepo{},
		ledgerc: &fakeLedger{
			balances: map[string]decimal.Decimal{
				"account_player": decimal.NewFromInt(100),
			},
			result: &ledger.SubmitResult{
				TransactionID: "tx-w",
				Status:        ledger.StatusCommittedSuccess,
			},
		},
	}

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	f.serv = NewAccountService(
		testGameCfg{}, testLedgerCfg{},
		f.users, f.txs, session_repo.NewSessionRepository(),
		f.ledgerc, fakeTxManager{}, log,
	)
	return f
}

func TestWithdrawTooSmallBeforeLedger(t *testing.T) {
	f := newFixture()

	_, err := f.serv.Withdraw(context.Background(), model.WithdrawRequest{
		TelegramID: testPlayerID,
		ToAddress:  "account_external",
		Amount:     decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, service.ErrWithdrawTooSmall)
	// Сумма отклонена до любых обращений к леджеру
	assert.Zero(t, f.ledgerc.readCalls)
	assert.Zero(t, f.ledgerc.writeCalls)
}

func TestWithdrawExactMinimumRejected(t *testing.T) {
	f := newFixture()

	_, err := f.serv.Withdraw(context.Background(), model.WithdrawRequest{
		TelegramID: testPlayerID,
		ToAddress:  "account_external",
		Amount:     decimal.RequireFromString("1.01"),
	})

	assert.ErrorIs(t, err, service.ErrWithdrawTooSmall)
}

func TestWithdrawRecordsNetAmount(t *testing.T) {
	f := newFixture()

	result, err := f.serv.Withdraw(context.Background(), model.WithdrawRequest{
		TelegramID: testPlayerID,
		ToAddress:  "account_external",
		Amount:     decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	want := decimal.RequireFromString("48.999999")
	assert.True(t, result.ActualAmount.Equal(want))
	assert.Equal(t, "tx-w", result.TransactionID)

	require.Len(t, f.txs.records, 1)
	assert.Equal(t, model.ActionWithdraw, f.txs.records[0].Action)
	assert.True(t, f.txs.records[0].Amount.Equal(want))
}

func TestWithdrawAllUsesFullBalance(t *testing.T) {
	f := newFixture()

	result, err := f.serv.Withdraw(context.Background(), model.WithdrawRequest{
		TelegramID: testPlayerID,
		ToAddress:  "account_external",
	})
	require.NoError(t, err)

	assert.True(t, result.ActualAmount.Equal(decimal.RequireFromString("98.999999")))
}

func TestWithdrawAllFromEmptyAccount(t *testing.T) {
	f := newFixture()
	f.ledgerc.balances["account_player"] = decimal.Zero

	_, err := f.serv.Withdraw(context.Background(), model.WithdrawRequest{
		TelegramID: testPlayerID,
		ToAddress:  "account_external",
	})

	assert.ErrorIs(t, err, service.ErrWithdrawTooSmall)
	assert.Zero(t, f.ledgerc.writeCalls)
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	f := newFixture()

	_, err := f.serv.Withdraw(context.Background(), model.WithdrawRequest{
		TelegramID: testPlayerID,
		ToAddress:  "account_external",
		Amount:     decimal.NewFromInt(500),
	})

	var insufficient *service.InsufficientFundsError
	assert.ErrorAs(t, err, &insufficient)
}

func TestCreateAndBalance(t *testing.T) {
	f := newFixture()

	user, err := f.serv.Create(context.Background(), 555)
	require.NoError(t, err)
	assert.Contains(t, user.Address, "account_")
	assert.NotEmpty(t, user.PrivateKey)

	_, err = f.serv.Create(context.Background(), 555)
	assert.ErrorIs(t, err, service.ErrAccountExists)
}

func TestBalanceNoAccount(t *testing.T) {
	f := newFixture()

	_, err := f.serv.Balance(context.Background(), 777)
	assert.ErrorIs(t, err, service.ErrNoAccount)
}
