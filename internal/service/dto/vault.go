package dto

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/Traqian/alpha-beta-swap-vault/internal/amm"
)

// QuoteRequest represents a request to price a prospective swap.
type QuoteRequest struct {
	Direction amm.Direction
	Amount    decimal.Decimal
	// Slippage is the tolerance in percent used for the minimum received.
	Slippage decimal.Decimal
}

// SwapRequest represents a request to execute a swap for a connected account.
type SwapRequest struct {
	Address   common.Address
	Direction amm.Direction
	Amount    decimal.Decimal
	// MinAmountOut rejects the swap when the output would be lower. Zero disables the check.
	MinAmountOut decimal.Decimal
}

// AddLiquidityRequest represents a two-sided deposit into the pool.
type AddLiquidityRequest struct {
	Address common.Address
	AmountA decimal.Decimal
	AmountB decimal.Decimal
}

// RemoveLiquidityRequest represents a burn of LP shares.
type RemoveLiquidityRequest struct {
	Address  common.Address
	LpAmount decimal.Decimal
}
