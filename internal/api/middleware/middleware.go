package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"spinner_backend/internal/config"
	"spinner_backend/internal/service"
	"spinner_backend/pkg/token"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-Id"

// RequestID - присваивает запросу идентификатор и логирует его вместе
// с методом и путём
func RequestID(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if len(id) == 0 {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)

			log.WithFields(logrus.Fields{
				"request_id": id,
				"method":     r.Method,
				"path":       r.URL.Path,
			}).Debug("request")

			next.ServeHTTP(w, r)
		})
	}
}

// OperatorAuth - пускает только оператора с валидным Bearer-токеном,
// субъект которого совпадает с telegram ID оператора из конфига
func OperatorAuth(cfg config.OperatorConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(tokenStr, cfg.SecretKey())
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			subject, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil || subject != cfg.TelegramID() {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MaintenanceGate - закрывает игровые эндпоинты в режиме обслуживания
func MaintenanceGate(maintenance service.MaintenanceService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maintenance.Enabled() {
				http.Error(w, "service is under maintenance", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
