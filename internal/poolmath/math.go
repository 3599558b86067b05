// Package poolmath implements the constant-product pricing and LP share math
// for a two-asset pool. Every function is total: non-positive amounts or
// reserves yield zero instead of an error.
package poolmath

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Precision is the number of fractional digits kept by every division.
// Quotients are truncated toward zero, which always favours the pool.
const Precision int32 = 18

// sqrtPrec is the mantissa size used for square roots, in bits.
const sqrtPrec = 256

var (
	// FeeRate is the swap fee charged on the input side (0.3%).
	FeeRate = decimal.RequireFromString("0.003")

	hundred = decimal.NewFromInt(100)
)

// QuoteOutput returns the output amount received for inputAmount under the
// constant-product invariant, after deducting FeeRate from the input:
// out = outputReserve * in' / (inputReserve + in'), in' = in * (1 - fee).
func QuoteOutput(inputAmount, inputReserve, outputReserve decimal.Decimal) decimal.Decimal {
	if !allPositive(inputAmount, inputReserve, outputReserve) {
		return decimal.Zero
	}

	effectiveInput := inputAmount.Mul(decimal.NewFromInt(1).Sub(FeeRate))
	return quo(outputReserve.Mul(effectiveInput), inputReserve.Add(effectiveInput))
}

// PriceImpact returns the percentage deviation of the execution price of a
// swap from the pool spot price.
func PriceImpact(inputAmount, inputReserve, outputReserve decimal.Decimal) decimal.Decimal {
	if !allPositive(inputAmount, inputReserve, outputReserve) {
		return decimal.Zero
	}

	spot := quo(outputReserve, inputReserve)
	if spot.Sign() <= 0 {
		return decimal.Zero
	}
	execution := ExecutionRate(inputAmount, QuoteOutput(inputAmount, inputReserve, outputReserve))

	return quo(spot.Sub(execution).Abs().Mul(hundred), spot)
}

// FeeAmount returns the part of inputAmount kept by the pool as a fee.
func FeeAmount(inputAmount decimal.Decimal) decimal.Decimal {
	if inputAmount.Sign() <= 0 {
		return decimal.Zero
	}
	return inputAmount.Mul(FeeRate)
}

// MinimumReceived returns outputAmount reduced by slippageTolerance, given in
// percent. The tolerance is not clamped; callers keep it within [0, 100].
func MinimumReceived(outputAmount, slippageTolerance decimal.Decimal) decimal.Decimal {
	if outputAmount.Sign() <= 0 {
		return decimal.Zero
	}
	return quo(outputAmount.Mul(hundred.Sub(slippageTolerance)), hundred)
}

// ExchangeRate returns the amount of B paid per unit of A at spot, or zero
// for a pool that holds no liquidity.
func ExchangeRate(reserveA, reserveB decimal.Decimal) decimal.Decimal {
	if !allPositive(reserveA, reserveB) {
		return decimal.Zero
	}
	return quo(reserveB, reserveA)
}

// ExecutionRate returns the realised price of a swap, output per unit of input.
func ExecutionRate(inputAmount, outputAmount decimal.Decimal) decimal.Decimal {
	if !allPositive(inputAmount, outputAmount) {
		return decimal.Zero
	}
	return quo(outputAmount, inputAmount)
}

// LPTokensToMint returns the LP shares minted for a deposit.
//
// The first deposit into an empty pool mints sqrt(depositA * depositB).
// Afterwards the smaller of the two proportional shares is minted, so the
// excess of an unbalanced deposit earns nothing.
func LPTokensToMint(depositA, depositB, reserveA, reserveB, totalSupply decimal.Decimal) decimal.Decimal {
	if !allPositive(depositA, depositB) {
		return decimal.Zero
	}

	if totalSupply.Sign() <= 0 || reserveA.Sign() <= 0 || reserveB.Sign() <= 0 {
		return Sqrt(depositA.Mul(depositB))
	}

	mintA := quo(depositA.Mul(totalSupply), reserveA)
	mintB := quo(depositB.Mul(totalSupply), reserveB)
	return decimal.Min(mintA, mintB)
}

// RemoveLiquidityAmounts returns the reserves redeemed by burning lpAmount
// shares. Burning the whole supply returns both reserves exactly.
func RemoveLiquidityAmounts(lpAmount, reserveA, reserveB, totalSupply decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if totalSupply.Sign() <= 0 || lpAmount.Sign() <= 0 {
		return decimal.Zero, decimal.Zero
	}

	if lpAmount.GreaterThanOrEqual(totalSupply) {
		return reserveA, reserveB
	}

	amountA := quo(lpAmount.Mul(reserveA), totalSupply)
	amountB := quo(lpAmount.Mul(reserveB), totalSupply)
	return amountA, amountB
}

// ProportionalAmount returns the amount of B that matches amountA at the
// current reserve ratio.
func ProportionalAmount(amountA, reserveA, reserveB decimal.Decimal) decimal.Decimal {
	if !allPositive(amountA, reserveA, reserveB) {
		return decimal.Zero
	}
	return quo(amountA.Mul(reserveB), reserveA)
}

// ConstantProduct returns k = reserveA * reserveB.
func ConstantProduct(reserveA, reserveB decimal.Decimal) decimal.Decimal {
	return reserveA.Mul(reserveB)
}

// Sqrt returns the square root of d truncated to Precision digits.
func Sqrt(d decimal.Decimal) decimal.Decimal {
	if d.Sign() <= 0 {
		return decimal.Zero
	}

	f, ok := new(big.Float).SetPrec(sqrtPrec).SetString(d.String())
	if !ok {
		return decimal.Zero
	}
	f.Sqrt(f)

	r, err := decimal.NewFromString(f.Text('f', int(Precision)+1))
	if err != nil {
		return decimal.Zero
	}
	return r.Truncate(Precision)
}

// quo divides a by b, truncating toward zero. b must be non-zero.
// WithinPrecision reports whether d carries no more than Precision
// significant fractional digits.
func WithinPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(Precision))
}

func quo(a, b decimal.Decimal) decimal.Decimal {
	q, _ := a.QuoRem(b, Precision)
	return q
}

func allPositive(values ...decimal.Decimal) bool {
	for _, v := range values {
		if v.Sign() <= 0 {
			return false
		}
	}
	return true
}
