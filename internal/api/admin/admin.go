package admin

import (
	"errors"
	"net/http"

	dto "spinner_backend/internal/api/dto/admin"
	"spinner_backend/internal/service"
	"spinner_backend/pkg/req"
	"spinner_backend/pkg/resp"

	"github.com/shopspring/decimal"
)

type HandlerDeps struct {
	WhitelistServ   service.WhitelistService
	MaintenanceServ service.MaintenanceService
	PayoutServ      service.PayoutService
}

type Handler struct {
	whitelistServ   service.WhitelistService
	maintenanceServ service.MaintenanceService
	payoutServ      service.PayoutService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		whitelistServ:   deps.WhitelistServ,
		maintenanceServ: deps.MaintenanceServ,
		payoutServ:      deps.PayoutServ,
	}
}

// WhitelistAdd - допускает игрока к ставкам
func (h *Handler) WhitelistAdd(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WhitelistRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.whitelistServ.Add(r.Context(), payload.TelegramID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// WhitelistRemove - убирает допуск игрока
func (h *Handler) WhitelistRemove(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WhitelistRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.whitelistServ.Remove(r.Context(), payload.TelegramID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// WhitelistList - все допущенные игроки
func (h *Handler) WhitelistList(w http.ResponseWriter, r *http.Request) {
	users, err := h.whitelistServ.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.WhitelistResponse{Users: users})
}

// MaintenanceToggle - переключает режим обслуживания
func (h *Handler) MaintenanceToggle(w http.ResponseWriter, r *http.Request) {
	enabled := h.maintenanceServ.Toggle()

	resp.WriteJSONResponse(w, http.StatusOK, dto.MaintenanceResponse{Enabled: enabled})
}

// Payout - операторская выплата из казны
func (h *Handler) Payout(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PayoutRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(payload.Amount)
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}

	result, err := h.payoutServ.Send(r.Context(), payload.TelegramID, amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoAccount):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrInvalidAmount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.PayoutResponse{
		Amount:        result.Amount.String(),
		TransactionID: result.TransactionID,
	})
}
