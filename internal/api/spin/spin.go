package spin

import (
	"errors"
	"net/http"

	dto "spinner_backend/internal/api/dto/spin"
	"spinner_backend/internal/converter"
	"spinner_backend/internal/service"
	"spinner_backend/pkg/req"
	"spinner_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SpinService
}

type Handler struct {
	serv service.SpinService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Play - проводит батч спинов и возвращает расчёт
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Play(r.Context(), converter.ToSpinRequest(payload))
	if err != nil {
		http.Error(w, err.Error(), statusForPlayError(err))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayResponse(*result))
}

// MaxBets - текущие потолки ставок по режимам
func (h *Handler) MaxBets(w http.ResponseWriter, r *http.Request) {
	bets, err := h.serv.MaxBets(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMaxBetsResponse(*bets))
}

// Payouts - статическая таблица выплат
func (h *Handler) Payouts(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPayoutsResponse(h.serv.Payouts()))
}

func statusForPlayError(err error) int {
	var insufficient *service.InsufficientFundsError
	switch {
	case errors.Is(err, service.ErrSessionBusy):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotWhitelisted):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNoAccount):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrBelowMinimum),
		errors.Is(err, service.ErrInvalidSpinCount),
		errors.As(err, &insufficient):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
