package paystack

import (
	"encoding/json"
	"fmt"
	"time"

	"store/internal/entities"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initializeRequest struct {
	Email     string      `json:"email"`
	Amount    json.Number `json:"amount"`
	Reference string      `json:"reference"`
	Currency  string      `json:"currency"`
	Channels  []string    `json:"channels,omitempty"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Reference string      `json:"reference"`
	Status    string      `json:"status"`
	Amount    json.Number `json:"amount"`
	Currency  string      `json:"currency"`
	PaidAt    string      `json:"paid_at"`
	Channel   string      `json:"channel"`
}

func toTransaction(data *verifyData) (*entities.Transaction, error) {
	amount, err := decodeAmount(data.Amount, data.Currency)
	if err != nil {
		return nil, fmt.Errorf("decode transaction amount %q: %w", data.Amount, err)
	}

	var paidAt time.Time
	if data.PaidAt != "" {
		paidAt, err = time.Parse(time.RFC3339, data.PaidAt)
		if err != nil {
			return nil, fmt.Errorf("parse paid_at %q: %w", data.PaidAt, err)
		}
	}

	return &entities.Transaction{
		Reference: data.Reference,
		Status:    entities.TransactionStatusType(data.Status),
		Amount:    amount,
		Currency:  data.Currency,
		PaidAt:    paidAt,
		Channel:   data.Channel,
	}, nil
}
