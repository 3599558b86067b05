package amm

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Traqian/alpha-beta-swap-vault/internal/apperrors"
	"github.com/Traqian/alpha-beta-swap-vault/internal/poolmath"
)

// SwapResult is the state after a swap together with the executed amounts.
type SwapResult struct {
	Pool      Pool
	Account   Account
	AmountIn  decimal.Decimal
	AmountOut decimal.Decimal
	FeeAmount decimal.Decimal
}

// Swap sells amountIn of the direction's input asset into the pool.
// All preconditions are checked before any balance changes; on error the
// returned result is empty and the arguments are untouched.
func Swap(pool Pool, account Account, d Direction, amountIn decimal.Decimal) (SwapResult, error) {
	if amountIn.Sign() <= 0 {
		return SwapResult{}, errors.Wrapf(apperrors.ErrZeroOrNegativeAmount, "swap amount %s", amountIn)
	}
	if err := precisionValidate("swap", amountIn); err != nil {
		return SwapResult{}, err
	}
	if !d.Valid() {
		return SwapResult{}, errors.Wrapf(apperrors.ErrInvalidArgument, "unknown swap direction %q", d)
	}

	reserveIn, reserveOut := pool.Reserves(d)
	if reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return SwapResult{}, errors.Wrap(apperrors.ErrUninitializedPool, "swap against empty reserves")
	}

	inAsset, outAsset := d.InputAsset(), d.OutputAsset()
	if amountIn.GreaterThan(account.Balance(inAsset)) {
		return SwapResult{}, errors.Wrapf(apperrors.ErrInsufficientBalance,
			"swap %s %s, balance %s", amountIn, inAsset, account.Balance(inAsset))
	}

	amountOut := poolmath.QuoteOutput(amountIn, reserveIn, reserveOut)

	account = account.
		withBalance(inAsset, account.Balance(inAsset).Sub(amountIn)).
		withBalance(outAsset, account.Balance(outAsset).Add(amountOut))
	pool = pool.withReserves(d, reserveIn.Add(amountIn), reserveOut.Sub(amountOut))

	return SwapResult{
		Pool:      pool,
		Account:   account,
		AmountIn:  amountIn,
		AmountOut: amountOut,
		FeeAmount: poolmath.FeeAmount(amountIn),
	}, nil
}
