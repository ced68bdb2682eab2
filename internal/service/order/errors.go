package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidFullName       = errors.New("invalid full name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone number")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidProductID      = errors.New("invalid product id")

	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is not active")

	ErrAlreadyPaid        = errors.New("order already paid")
	ErrNoReference        = errors.New("order has no payment reference")
	ErrDuplicateReference = errors.New("payment reference already exists")
	ErrNotPending         = errors.New("order is not pending payment")

	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrVerificationFailed = errors.New("transaction verification failed")
)
