package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrZeroOrNegativeAmount is returned when an amount that must be strictly
	// positive is zero or negative.
	ErrZeroOrNegativeAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientBalance is returned when the requested spend exceeds the
	// account balance of the spent asset.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientLpBalance is returned when the requested burn exceeds the
	// account LP balance.
	ErrInsufficientLpBalance = errors.New("insufficient lp balance")

	// ErrUninitializedPool is returned when proportional pool math would divide
	// by an empty reserve or supply.
	ErrUninitializedPool = errors.New("pool is not initialized")

	// ErrSlippageExceeded is returned when a swap would pay out less than the
	// caller's minimum.
	ErrSlippageExceeded = errors.New("output below minimum amount")

	// ErrAccountNotFound is returned when no connected account matches the address.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSourceUnavailable is returned when a pool or wallet source fails to respond.
	ErrSourceUnavailable = errors.New("source unavailable")
)
