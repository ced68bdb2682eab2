package order_pay_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"store/internal/gateway/paystack"
	"store/internal/generated/dto"
	"store/internal/service/order"
	"store/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if orderID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	paymentInit, err := h.service.InitiatePayment(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrProductNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrAlreadyPaid):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, paystack.ErrUnavailable),
			errors.Is(err, paystack.ErrRejected):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PaymentInitResponse{
		AuthorizationURL: paymentInit.AuthorizationURL,
		AccessCode:       paymentInit.AccessCode,
		Reference:        paymentInit.Reference,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
