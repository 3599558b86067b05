package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Traqian/alpha-beta-swap-vault/internal/amm"
	"github.com/Traqian/alpha-beta-swap-vault/internal/numeric"
)

// Amount carries an exact decimal string next to its display rendering.
type Amount struct {
	Value   string `json:"value"`
	Display string `json:"display"`
}

// NewAmount renders d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Value: d.String(), Display: numeric.FormatDisplay(d)}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

type PoolResponse struct {
	TokenA        amm.Token `json:"token_a"`
	TokenB        amm.Token `json:"token_b"`
	ReserveA      Amount    `json:"reserve_a"`
	ReserveB      Amount    `json:"reserve_b"`
	TotalLpSupply Amount    `json:"total_lp_supply"`
	ExchangeRate  Amount    `json:"exchange_rate"`
	FeePercent    string    `json:"fee_percent"`
	Initialized   bool      `json:"initialized"`
}

func NewPoolResponse(p amm.Pool) PoolResponse {
	return PoolResponse{
		TokenA:        amm.AlphaToken,
		TokenB:        amm.BetaToken,
		ReserveA:      NewAmount(p.ReserveA),
		ReserveB:      NewAmount(p.ReserveB),
		TotalLpSupply: NewAmount(p.TotalLpSupply),
		ExchangeRate:  NewAmount(p.ExchangeRate()),
		FeePercent:    p.FeePercent().String(),
		Initialized:   p.IsInitialized(),
	}
}

type AccountResponse struct {
	Address   string `json:"address"`
	BalanceA  Amount `json:"balance_a"`
	BalanceB  Amount `json:"balance_b"`
	BalanceLp Amount `json:"balance_lp"`
}

func NewAccountResponse(a amm.Account) AccountResponse {
	return AccountResponse{
		Address:   a.Address.Hex(),
		BalanceA:  NewAmount(a.BalanceA),
		BalanceB:  NewAmount(a.BalanceB),
		BalanceLp: NewAmount(a.BalanceLp),
	}
}

type QuoteResponse struct {
	Direction       string `json:"direction"`
	InputAmount     Amount `json:"input_amount"`
	OutputAmount    Amount `json:"output_amount"`
	FeeAmount       Amount `json:"fee_amount"`
	PriceImpact     Amount `json:"price_impact"`
	MinimumReceived Amount `json:"minimum_received"`
	ExecutionRate   Amount `json:"execution_rate"`
	Severity        string `json:"severity"`
}

func NewQuoteResponse(q amm.SwapQuote) QuoteResponse {
	return QuoteResponse{
		Direction:       string(q.Direction),
		InputAmount:     NewAmount(q.InputAmount),
		OutputAmount:    NewAmount(q.OutputAmount),
		FeeAmount:       NewAmount(q.FeeAmount),
		PriceImpact:     NewAmount(q.PriceImpact),
		MinimumReceived: NewAmount(q.MinimumReceived),
		ExecutionRate:   NewAmount(q.ExecutionRate),
		Severity:        string(q.Severity),
	}
}

type BalancedResponse struct {
	AmountA Amount `json:"amount_a"`
	AmountB Amount `json:"amount_b"`
}

type SwapResponse struct {
	Direction string          `json:"direction"`
	AmountIn  Amount          `json:"amount_in"`
	AmountOut Amount          `json:"amount_out"`
	FeeAmount Amount          `json:"fee_amount"`
	Pool      PoolResponse    `json:"pool"`
	Account   AccountResponse `json:"account"`
}

func NewSwapResponse(d amm.Direction, r amm.SwapResult) SwapResponse {
	return SwapResponse{
		Direction: string(d),
		AmountIn:  NewAmount(r.AmountIn),
		AmountOut: NewAmount(r.AmountOut),
		FeeAmount: NewAmount(r.FeeAmount),
		Pool:      NewPoolResponse(r.Pool),
		Account:   NewAccountResponse(r.Account),
	}
}

type AddLiquidityResponse struct {
	DepositA Amount          `json:"deposit_a"`
	DepositB Amount          `json:"deposit_b"`
	Minted   Amount          `json:"minted"`
	Pool     PoolResponse    `json:"pool"`
	Account  AccountResponse `json:"account"`
}

func NewAddLiquidityResponse(r amm.AddLiquidityResult) AddLiquidityResponse {
	return AddLiquidityResponse{
		DepositA: NewAmount(r.DepositA),
		DepositB: NewAmount(r.DepositB),
		Minted:   NewAmount(r.Minted),
		Pool:     NewPoolResponse(r.Pool),
		Account:  NewAccountResponse(r.Account),
	}
}

type RemoveLiquidityResponse struct {
	Burned  Amount          `json:"burned"`
	AmountA Amount          `json:"amount_a"`
	AmountB Amount          `json:"amount_b"`
	Pool    PoolResponse    `json:"pool"`
	Account AccountResponse `json:"account"`
}

func NewRemoveLiquidityResponse(r amm.RemoveLiquidityResult) RemoveLiquidityResponse {
	return RemoveLiquidityResponse{
		Burned:  NewAmount(r.Burned),
		AmountA: NewAmount(r.AmountA),
		AmountB: NewAmount(r.AmountB),
		Pool:    NewPoolResponse(r.Pool),
		Account: NewAccountResponse(r.Account),
	}
}
