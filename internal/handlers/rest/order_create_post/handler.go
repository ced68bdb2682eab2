package order_create_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"store/internal/entities"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderCreateEntity := entities.OrderCreate{
		FullName:    &orderCreateDTO.FullName,
		Email:       &orderCreateDTO.Email,
		PhoneNumber: &orderCreateDTO.PhoneNumber,
		Address:     &orderCreateDTO.Address,
		ProductID:   &orderCreateDTO.ProductID,
		Quantity:    &orderCreateDTO.Quantity,
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidFullName),
			errors.Is(err, order.ErrInvalidEmail),
			errors.Is(err, order.ErrInvalidPhone),
			errors.Is(err, order.ErrInvalidAddress),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrInvalidProductID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrProductNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrProductInactive):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderCreateResponse{
		ID:        orderEntity.ID,
		Reference: orderEntity.Reference,
		Order: dto.Order{
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
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
