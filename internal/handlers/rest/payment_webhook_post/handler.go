package payment_webhook_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"store/internal/generated/dto"
	"store/internal/service/order"
	"store/pkg/logger"

	"github.com/AlekSi/pointer"
)

// SignatureHeader несет HMAC-SHA512 подпись тела запроса.
const SignatureHeader = "x-paystack-signature"

// maxBodySize ограничивает тело вебхука: подпись считается по сырым
// байтам, поэтому тело читается целиком в память.
const maxBodySize = 1 << 20

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
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	signature := r.Header.Get(SignatureHeader)

	orderEntity, err := h.service.HandlePaymentEvent(r.Context(), body, signature)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidSignature):
			// Подпись не сошлась: либо чужой секрет, либо подделка запроса
			h.log.Warn("webhook signature mismatch",
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrVerificationFailed):
			// Шлюз не подтвердил оплату: отвечаем ошибкой, чтобы он
			// повторил доставку события позже
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if orderEntity != nil {
		h.log.With(
			logger.NewField("order", orderEntity.ID),
			logger.NewField("payment_status", orderEntity.PaymentStatus.String()),
		).Info("payment event processed")
	}

	response := dto.WebhookAck{
		Status: pointer.To("ok"),
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
