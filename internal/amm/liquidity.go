package amm

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Traqian/alpha-beta-swap-vault/internal/apperrors"
	"github.com/Traqian/alpha-beta-swap-vault/internal/poolmath"
)

// AddLiquidityResult is the state after a deposit with the minted shares.
type AddLiquidityResult struct {
	Pool     Pool
	Account  Account
	DepositA decimal.Decimal
	DepositB decimal.Decimal
	Minted   decimal.Decimal
}

// RemoveLiquidityResult is the state after a burn with the redeemed reserves.
type RemoveLiquidityResult struct {
	Pool    Pool
	Account Account
	Burned  decimal.Decimal
	AmountA decimal.Decimal
	AmountB decimal.Decimal
}

// AddLiquidity deposits both assets and mints LP shares to the account.
func AddLiquidity(pool Pool, account Account, depositA, depositB decimal.Decimal) (AddLiquidityResult, error) {
	if depositA.Sign() <= 0 || depositB.Sign() <= 0 {
		return AddLiquidityResult{}, errors.Wrapf(apperrors.ErrZeroOrNegativeAmount,
			"deposit %s ALPHA, %s BETA", depositA, depositB)
	}
	if err := precisionValidate("deposit", depositA, depositB); err != nil {
		return AddLiquidityResult{}, err
	}
	if depositA.GreaterThan(account.BalanceA) {
		return AddLiquidityResult{}, errors.Wrapf(apperrors.ErrInsufficientBalance,
			"deposit %s ALPHA, balance %s", depositA, account.BalanceA)
	}
	if depositB.GreaterThan(account.BalanceB) {
		return AddLiquidityResult{}, errors.Wrapf(apperrors.ErrInsufficientBalance,
			"deposit %s BETA, balance %s", depositB, account.BalanceB)
	}

	minted := poolmath.LPTokensToMint(depositA, depositB, pool.ReserveA, pool.ReserveB, pool.TotalLpSupply)
	if minted.Sign() <= 0 {
		return AddLiquidityResult{}, errors.Wrapf(apperrors.ErrZeroOrNegativeAmount,
			"deposit %s ALPHA, %s BETA mints no lp", depositA, depositB)
	}

	account.BalanceA = account.BalanceA.Sub(depositA)
	account.BalanceB = account.BalanceB.Sub(depositB)
	account.BalanceLp = account.BalanceLp.Add(minted)

	pool.ReserveA = pool.ReserveA.Add(depositA)
	pool.ReserveB = pool.ReserveB.Add(depositB)
	pool.TotalLpSupply = pool.TotalLpSupply.Add(minted)

	return AddLiquidityResult{
		Pool:     pool,
		Account:  account,
		DepositA: depositA,
		DepositB: depositB,
		Minted:   minted,
	}, nil
}

// RemoveLiquidity burns lpAmount shares and returns the proportional reserves.
func RemoveLiquidity(pool Pool, account Account, lpAmount decimal.Decimal) (RemoveLiquidityResult, error) {
	if lpAmount.Sign() <= 0 {
		return RemoveLiquidityResult{}, errors.Wrapf(apperrors.ErrZeroOrNegativeAmount, "burn amount %s", lpAmount)
	}
	if err := precisionValidate("burn", lpAmount); err != nil {
		return RemoveLiquidityResult{}, err
	}
	if !pool.IsInitialized() {
		return RemoveLiquidityResult{}, errors.Wrap(apperrors.ErrUninitializedPool, "burn from pool without lp supply")
	}
	if lpAmount.GreaterThan(account.BalanceLp) {
		return RemoveLiquidityResult{}, errors.Wrapf(apperrors.ErrInsufficientLpBalance,
			"burn %s LP, balance %s", lpAmount, account.BalanceLp)
	}
	// Account balances come from an external source and are not backed by
	// the pool supply, so the burn is also capped by what the pool issued.
	if lpAmount.GreaterThan(pool.TotalLpSupply) {
		return RemoveLiquidityResult{}, errors.Wrapf(apperrors.ErrInsufficientLpBalance,
			"burn %s LP, pool supply %s", lpAmount, pool.TotalLpSupply)
	}

	amountA, amountB := poolmath.RemoveLiquidityAmounts(lpAmount, pool.ReserveA, pool.ReserveB, pool.TotalLpSupply)

	account.BalanceLp = account.BalanceLp.Sub(lpAmount)
	account.BalanceA = account.BalanceA.Add(amountA)
	account.BalanceB = account.BalanceB.Add(amountB)

	pool.ReserveA = pool.ReserveA.Sub(amountA)
	pool.ReserveB = pool.ReserveB.Sub(amountB)
	pool.TotalLpSupply = pool.TotalLpSupply.Sub(lpAmount)

	return RemoveLiquidityResult{
		Pool:    pool,
		Account: account,
		Burned:  lpAmount,
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}
