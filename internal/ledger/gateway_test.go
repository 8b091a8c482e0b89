package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gatewayCfg struct {
	url string
}

func (c gatewayCfg) GatewayURL() string      { return c.url }
func (c gatewayCfg) ResourceAddress() string { return "resource_test" }
func (c gatewayCfg) NetworkID() uint8        { return 2 }

func newTestClient(t *testing.T, handler http.Handler) *GatewayClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	client := NewGatewayClient(gatewayCfg{url: server.URL}, log)
	client.sleep = func(time.Duration) {}
	return client
}

func balancePayload(resource, amount string) any {
	return map[string]any{
		"items": []map[string]any{{
			"fungible_resources": map[string]any{
				"items": []map[string]any{{
					"resource_address": resource,
					"vaults": map[string]any{
						"items": []map[string]string{{"amount": amount}},
					},
				}},
			},
		}},
	}
}

func TestGetBalance(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/state/entity/details", r.URL.Path)
		_ = json.NewEncoder(w).Encode(balancePayload("resource_test", "123.45"))
	}))

	balance, err := client.GetBalance(context.Background(), "account_player")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("123.45")))
}

func TestGetBalanceMissingResourceIsZero(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(balancePayload("resource_other", "500"))
	}))

	balance, err := client.GetBalance(context.Background(), "account_player")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestGetBalanceEmptyAccountIsZero(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
	}))

	balance, err := client.GetBalance(context.Background(), "account_player")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func gatewayMux(status string, polls *int) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status/gateway-status", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ledger_state": map[string]uint64{"epoch": 100},
		})
	})
	mux.HandleFunc("/transaction/submit", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]bool{"duplicate": false})
	})
	mux.HandleFunc("/transaction/status", func(w http.ResponseWriter, r *http.Request) {
		if polls != nil {
			*polls++
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
	})
	return mux
}

func testSigner(t *testing.T) Signer {
	t.Helper()
	acc, err := NewAccount(2)
	require.NoError(t, err)
	return Signer{Address: acc.Address, PrivateKey: acc.PrivateKey, PublicKey: acc.PublicKey}
}

func TestSubmitTransferCommitted(t *testing.T) {
	client := newTestClient(t, gatewayMux("CommittedSuccess", nil))

	result, err := client.SubmitTransfer(context.Background(), "MANIFEST", testSigner(t))
	require.NoError(t, err)

	assert.Equal(t, StatusCommittedSuccess, result.Status)
	assert.NotEmpty(t, result.TransactionID)
	assert.NoError(t, result.Err())
}

func TestSubmitTransferUnconfirmedIsUnknown(t *testing.T) {
	polls := 0
	client := newTestClient(t, gatewayMux("Pending", &polls))

	result, err := client.SubmitTransfer(context.Background(), "MANIFEST", testSigner(t))
	require.NoError(t, err)

	assert.Equal(t, StatusUnknown, result.Status)
	assert.Equal(t, statusPollAttempts, polls)
	// Неподтверждённая транзакция считается отказом
	assert.Error(t, result.Err())
}

func TestSubmitTransferRejected(t *testing.T) {
	client := newTestClient(t, gatewayMux("Rejected", nil))

	result, err := client.SubmitTransfer(context.Background(), "MANIFEST", testSigner(t))
	require.NoError(t, err)

	var submission *SubmissionError
	require.ErrorAs(t, result.Err(), &submission)
	assert.Equal(t, StatusRejected, submission.Status)
}
