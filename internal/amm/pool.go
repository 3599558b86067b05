package amm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Traqian/alpha-beta-swap-vault/internal/apperrors"
	"github.com/Traqian/alpha-beta-swap-vault/internal/poolmath"
)

// Pool is the shared ALPHA/BETA liquidity record. It is a plain value:
// engine operations return an updated copy instead of mutating it.
type Pool struct {
	ReserveA      decimal.Decimal
	ReserveB      decimal.Decimal
	TotalLpSupply decimal.Decimal
	FeeRate       decimal.Decimal
}

// EmptyPool returns a pool that has never received a deposit.
func EmptyPool() Pool {
	return Pool{
		ReserveA:      decimal.Zero,
		ReserveB:      decimal.Zero,
		TotalLpSupply: decimal.Zero,
		FeeRate:       poolmath.FeeRate,
	}
}

// NewPool builds a seeded pool and validates it. Amounts finer than
// poolmath.Precision are rejected.
func NewPool(reserveA, reserveB, totalLpSupply decimal.Decimal) (Pool, error) {
	if err := precisionValidate("pool", reserveA, reserveB, totalLpSupply); err != nil {
		return Pool{}, err
	}

	p := Pool{
		ReserveA:      reserveA,
		ReserveB:      reserveB,
		TotalLpSupply: totalLpSupply,
		FeeRate:       poolmath.FeeRate,
	}
	if err := p.Validate(); err != nil {
		return Pool{}, err
	}
	return p, nil
}

// Validate checks the non-negativity invariants and that reserves are only
// held by a pool with outstanding LP supply.
func (p Pool) Validate() error {
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() || p.TotalLpSupply.IsNegative() {
		return errors.Wrap(apperrors.ErrInvalidArgument, "pool reserves and supply must not be negative")
	}
	if p.TotalLpSupply.IsZero() && (!p.ReserveA.IsZero() || !p.ReserveB.IsZero()) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "pool without lp supply must not hold reserves")
	}
	return nil
}

func precisionValidate(what string, amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if !poolmath.WithinPrecision(a) {
			return errors.Wrapf(apperrors.ErrInvalidArgument,
				"%s amount %s has more than %d fractional digits", what, a, poolmath.Precision)
		}
	}
	return nil
}

// IsInitialized reports whether the pool has outstanding LP supply.
func (p Pool) IsInitialized() bool {
	return p.TotalLpSupply.IsPositive()
}

// ExchangeRate returns BETA per ALPHA at spot, zero for an empty pool.
func (p Pool) ExchangeRate() decimal.Decimal {
	return poolmath.ExchangeRate(p.ReserveA, p.ReserveB)
}

// FeePercent returns the swap fee in percent.
func (p Pool) FeePercent() decimal.Decimal {
	return p.FeeRate.Mul(decimal.NewFromInt(100))
}

// Reserves returns the input and output reserves for a swap direction.
func (p Pool) Reserves(d Direction) (decimal.Decimal, decimal.Decimal) {
	if d == BetaToAlpha {
		return p.ReserveB, p.ReserveA
	}
	return p.ReserveA, p.ReserveB
}

func (p Pool) withReserves(d Direction, in, out decimal.Decimal) Pool {
	if d == BetaToAlpha {
		p.ReserveB, p.ReserveA = in, out
	} else {
		p.ReserveA, p.ReserveB = in, out
	}
	return p
}

// Account holds one participant's balances.
type Account struct {
	Address   common.Address
	BalanceA  decimal.Decimal
	BalanceB  decimal.Decimal
	BalanceLp decimal.Decimal
}

// Balance returns the balance held in asset.
func (a Account) Balance(asset Asset) decimal.Decimal {
	switch asset {
	case AssetAlpha:
		return a.BalanceA
	case AssetBeta:
		return a.BalanceB
	case AssetLP:
		return a.BalanceLp
	default:
		return decimal.Zero
	}
}

func (a Account) withBalance(asset Asset, v decimal.Decimal) Account {
	switch asset {
	case AssetAlpha:
		a.BalanceA = v
	case AssetBeta:
		a.BalanceB = v
	case AssetLP:
		a.BalanceLp = v
	}
	return a
}
