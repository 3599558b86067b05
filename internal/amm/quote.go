package amm

import (
	"github.com/shopspring/decimal"

	"github.com/Traqian/alpha-beta-swap-vault/internal/poolmath"
)

// SwapQuote is the read-only outcome of a prospective swap.
type SwapQuote struct {
	Direction       Direction
	InputAmount     decimal.Decimal
	OutputAmount    decimal.Decimal
	FeeAmount       decimal.Decimal
	PriceImpact     decimal.Decimal
	MinimumReceived decimal.Decimal
	ExecutionRate   decimal.Decimal
	Severity        poolmath.Severity
}

// Quote prices a swap of inputAmount against pool without changing it.
// slippageTolerance is a percentage in [0, 100].
func Quote(pool Pool, d Direction, inputAmount, slippageTolerance decimal.Decimal) SwapQuote {
	reserveIn, reserveOut := pool.Reserves(d)

	output := poolmath.QuoteOutput(inputAmount, reserveIn, reserveOut)
	impact := poolmath.PriceImpact(inputAmount, reserveIn, reserveOut)

	return SwapQuote{
		Direction:       d,
		InputAmount:     inputAmount,
		OutputAmount:    output,
		FeeAmount:       poolmath.FeeAmount(inputAmount),
		PriceImpact:     impact,
		MinimumReceived: poolmath.MinimumReceived(output, slippageTolerance),
		ExecutionRate:   poolmath.ExecutionRate(inputAmount, output),
		Severity:        poolmath.ImpactSeverity(impact),
	}
}
