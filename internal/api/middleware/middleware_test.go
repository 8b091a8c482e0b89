package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spinner_backend/internal/service/maintenance"
	"spinner_backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOperatorCfg struct{}

func (testOperatorCfg) TelegramID() int64            { return 999 }
func (testOperatorCfg) SecretKey() []byte            { return []byte("secret") }
func (testOperatorCfg) TokenDuration() time.Duration { return time.Hour }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMaintenanceGateBlocks(t *testing.T) {
	serv := maintenance.NewMaintenanceService()
	handler := MaintenanceGate(serv)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/spin/play", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	serv.Toggle()

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/spin/play", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOperatorAuthMissingToken(t *testing.T) {
	handler := OperatorAuth(testOperatorCfg{})(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/payout", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOperatorAuthValidToken(t *testing.T) {
	handler := OperatorAuth(testOperatorCfg{})(okHandler())

	tokenStr, err := token.GenerateOperatorToken(999, []byte("secret"), time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/payout", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOperatorAuthWrongSubject(t *testing.T) {
	handler := OperatorAuth(testOperatorCfg{})(okHandler())

	tokenStr, err := token.GenerateOperatorToken(123, []byte("secret"), time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/payout", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
