package account

import (
	"errors"
	"net/http"
	"strconv"

	dto "spinner_backend/internal/api/dto/account"
	"spinner_backend/internal/converter"
	"spinner_backend/internal/service"
	"spinner_backend/pkg/req"
	"spinner_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	AccountServ service.AccountService
	PayoutServ  service.PayoutService
}

type Handler struct {
	accountServ service.AccountService
	payoutServ  service.PayoutService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		accountServ: deps.AccountServ,
		payoutServ:  deps.PayoutServ,
	}
}

// Create - создаёт кастодиальный аккаунт игрока
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.accountServ.Create(r.Context(), payload.TelegramID)
	if err != nil {
		if errors.Is(err, service.ErrAccountExists) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, dto.CreateResponse{Address: user.Address})
}

// Balance - живой баланс из леджера
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	telegramID, err := telegramIDParam(r)
	if err != nil {
		http.Error(w, "invalid telegram id", http.StatusBadRequest)
		return
	}

	info, err := h.accountServ.Balance(r.Context(), telegramID)
	if err != nil {
		if errors.Is(err, service.ErrNoAccount) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(*info))
}

// DepositAddress - адрес аккаунта для пополнения
func (h *Handler) DepositAddress(w http.ResponseWriter, r *http.Request) {
	telegramID, err := telegramIDParam(r)
	if err != nil {
		http.Error(w, "invalid telegram id", http.StatusBadRequest)
		return
	}

	address, err := h.accountServ.DepositAddress(r.Context(), telegramID)
	if err != nil {
		if errors.Is(err, service.ErrNoAccount) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DepositAddressResponse{Address: address})
}

// RecordDeposit - фиксирует поступивший депозит в журнале
func (h *Handler) RecordDeposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	request, err := converter.ToDepositRequest(payload)
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}

	if err := h.accountServ.RecordDeposit(r.Context(), request); err != nil {
		http.Error(w, err.Error(), statusForAccountError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Withdraw - вывод средств на внешний адрес
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WithdrawRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	request, err := converter.ToWithdrawRequest(payload)
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}

	result, err := h.accountServ.Withdraw(r.Context(), request)
	if err != nil {
		http.Error(w, err.Error(), statusForAccountError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWithdrawResponse(*result))
}

// Refund - возврат проигрыша из казны
func (h *Handler) Refund(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RefundRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	request, err := converter.ToRefundRequest(payload)
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}

	result, err := h.payoutServ.Refund(r.Context(), request)
	if err != nil {
		http.Error(w, err.Error(), statusForAccountError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRefundResponse(*result))
}

// History - журнал депозитов и выводов
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	telegramID, err := telegramIDParam(r)
	if err != nil {
		http.Error(w, "invalid telegram id", http.StatusBadRequest)
		return
	}

	records, err := h.accountServ.History(r.Context(), telegramID)
	if err != nil {
		if errors.Is(err, service.ErrNoAccount) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records))
}

func telegramIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "telegramID"), 10, 64)
}

func statusForAccountError(err error) int {
	var insufficient *service.InsufficientFundsError
	switch {
	case errors.Is(err, service.ErrSessionBusy):
		return http.StatusConflict
	case errors.Is(err, service.ErrNoAccount):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotWhitelisted):
		return http.StatusForbidden
	case errors.Is(err, service.ErrWithdrawTooSmall),
		errors.Is(err, service.ErrInvalidAmount),
		errors.As(err, &insufficient):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
