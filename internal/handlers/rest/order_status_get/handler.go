package order_status_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if orderID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.Order{
		ID:            orderEntity.ID,
		FullName:      orderEntity.FullName,
		Email:         orderEntity.Email,
		PhoneNumber:   orderEntity.PhoneNumber,
		Address:       orderEntity.Address,
		ProductID:     orderEntity.ProductID,
		Quantity:      orderEntity.Quantity,
		PaymentStatus: orderEntity.PaymentStatus.String(),
		OrderStatus:   orderEntity.OrderStatus.String(),
		Reference:     orderEntity.Reference,
		CreatedAt:     orderEntity.CreatedAt,
		UpdatedAt:     orderEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
