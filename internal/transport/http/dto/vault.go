package dto

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/Traqian/alpha-beta-swap-vault/internal/amm"
)

// QuoteRequest represents a parsed HTTP request for the /quote endpoint.
type QuoteRequest struct {
	Direction amm.Direction
	Amount    decimal.Decimal
	Slippage  decimal.Decimal
}

// BalancedRequest represents a parsed HTTP request for the /liquidity/balanced endpoint.
type BalancedRequest struct {
	AmountA decimal.Decimal
}

// SwapRequest represents a parsed HTTP request for the /swap endpoint.
type SwapRequest struct {
	Address      common.Address
	Direction    amm.Direction
	Amount       decimal.Decimal
	MinAmountOut decimal.Decimal
}

// AddLiquidityRequest represents a parsed HTTP request for the /liquidity/add endpoint.
type AddLiquidityRequest struct {
	Address common.Address
	AmountA decimal.Decimal
	AmountB decimal.Decimal
}

// RemoveLiquidityRequest represents a parsed HTTP request for the /liquidity/remove endpoint.
type RemoveLiquidityRequest struct {
	Address  common.Address
	LpAmount decimal.Decimal
}
