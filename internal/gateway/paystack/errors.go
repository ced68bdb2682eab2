package paystack

import "errors"

var (
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrUnavailable         = errors.New("payment gateway unavailable")
	ErrRejected            = errors.New("payment gateway rejected request")
	ErrTransactionNotFound = errors.New("transaction not found")
)
