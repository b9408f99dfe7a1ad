package domain

import "errors"

var (
	ErrFlightNotFound     = errors.New("flight not found")
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidTravelClass = errors.New("unknown travel class")
	ErrInsufficientFunds  = errors.New("insufficient wallet balance")

	// ErrPurchaseConflict marks a commit race between concurrent purchases
	// on the same wallet; the caller may retry.
	ErrPurchaseConflict = errors.New("purchase conflict")
)
