package amm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Traqian/alpha-beta-swap-vault/internal/apperrors"
)

func TestAddLiquidity(t *testing.T) {
	t.Parallel()

	t.Run("balanced deposit", func(t *testing.T) {
		t.Parallel()

		pool := seededPool(t, "1000", "1000", "1000")
		res, err := AddLiquidity(pool, account("150", "150", "5"), d("100"), d("100"))
		require.NoError(t, err)

		requireDecEqual(t, "100", res.Minted)
		requireDecEqual(t, "1100", res.Pool.ReserveA)
		requireDecEqual(t, "1100", res.Pool.ReserveB)
		requireDecEqual(t, "1100", res.Pool.TotalLpSupply)
		requireDecEqual(t, "50", res.Account.BalanceA)
		requireDecEqual(t, "50", res.Account.BalanceB)
		requireDecEqual(t, "105", res.Account.BalanceLp)
	})

	t.Run("bootstrap", func(t *testing.T) {
		t.Parallel()

		res, err := AddLiquidity(EmptyPool(), account("400", "100", "0"), d("400"), d("100"))
		require.NoError(t, err)

		requireDecEqual(t, "200", res.Minted)
		requireDecEqual(t, "400", res.Pool.ReserveA)
		requireDecEqual(t, "100", res.Pool.ReserveB)
		requireDecEqual(t, "200", res.Pool.TotalLpSupply)
		requireDecEqual(t, "0.25", res.Pool.ExchangeRate())
	})

	t.Run("unbalanced deposit keeps the excess in the pool", func(t *testing.T) {
		t.Parallel()

		pool := seededPool(t, "1000", "1000", "1000")
		res, err := AddLiquidity(pool, account("100", "300", "0"), d("100"), d("300"))
		require.NoError(t, err)

		requireDecEqual(t, "100", res.Minted)
		requireDecEqual(t, "1300", res.Pool.ReserveB)
		requireDecEqual(t, "0", res.Account.BalanceB)
	})
}

func TestAddLiquidity_Errors(t *testing.T) {
	t.Parallel()

	pool := seededPool(t, "1000", "1000", "1000")

	tests := []struct {
		name       string
		acc        Account
		depA, depB string
		wantErr    error
	}{
		{name: "zero alpha", acc: account("100", "100", "0"), depA: "0", depB: "10", wantErr: apperrors.ErrZeroOrNegativeAmount},
		{name: "negative beta", acc: account("100", "100", "0"), depA: "10", depB: "-10", wantErr: apperrors.ErrZeroOrNegativeAmount},
		{name: "alpha balance exceeded", acc: account("9", "100", "0"), depA: "10", depB: "10", wantErr: apperrors.ErrInsufficientBalance},
		{name: "beta balance exceeded", acc: account("100", "9", "0"), depA: "10", depB: "10", wantErr: apperrors.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := AddLiquidity(pool, tt.acc, d(tt.depA), d(tt.depB))
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, AddLiquidityResult{}, res)
		})
	}

	t.Run("dust deposit mints nothing", func(t *testing.T) {
		t.Parallel()

		deep := seededPool(t, "1000", "1000", "1")
		_, err := AddLiquidity(deep, account("1", "1", "0"), d("1e-18"), d("1e-18"))
		require.ErrorIs(t, err, apperrors.ErrZeroOrNegativeAmount)
	})

	t.Run("deposit finer than precision", func(t *testing.T) {
		t.Parallel()

		res, err := AddLiquidity(EmptyPool(), account("2", "2", "0"), d("1.0000000000000000001"), d("1"))
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		require.Equal(t, AddLiquidityResult{}, res)
	})
}

func TestRemoveLiquidity(t *testing.T) {
	t.Parallel()

	pool := seededPool(t, "1100", "1100", "1100")
	res, err := RemoveLiquidity(pool, account("0", "0", "600"), d("550"))
	require.NoError(t, err)

	requireDecEqual(t, "550", res.Burned)
	requireDecEqual(t, "550", res.AmountA)
	requireDecEqual(t, "550", res.AmountB)
	requireDecEqual(t, "550", res.Pool.ReserveA)
	requireDecEqual(t, "550", res.Pool.ReserveB)
	requireDecEqual(t, "550", res.Pool.TotalLpSupply)
	requireDecEqual(t, "550", res.Account.BalanceA)
	requireDecEqual(t, "550", res.Account.BalanceB)
	requireDecEqual(t, "50", res.Account.BalanceLp)
}

func TestRemoveLiquidity_Errors(t *testing.T) {
	t.Parallel()

	pool := seededPool(t, "1000", "1000", "1000")

	tests := []struct {
		name    string
		pool    Pool
		acc     Account
		lp      string
		wantErr error
	}{
		{name: "zero amount", pool: pool, acc: account("0", "0", "10"), lp: "0", wantErr: apperrors.ErrZeroOrNegativeAmount},
		{name: "negative amount", pool: pool, acc: account("0", "0", "10"), lp: "-3", wantErr: apperrors.ErrZeroOrNegativeAmount},
		{name: "finer than precision", pool: pool, acc: account("0", "0", "10"), lp: "1.0000000000000000001", wantErr: apperrors.ErrInvalidArgument},
		{name: "no deposit yet", pool: EmptyPool(), acc: account("0", "0", "10"), lp: "1", wantErr: apperrors.ErrUninitializedPool},
		{name: "lp balance exceeded", pool: pool, acc: account("0", "0", "10"), lp: "10.01", wantErr: apperrors.ErrInsufficientLpBalance},
		{name: "pool supply exceeded", pool: pool, acc: account("0", "0", "5000"), lp: "1000.5", wantErr: apperrors.ErrInsufficientLpBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := RemoveLiquidity(tt.pool, tt.acc, d(tt.lp))
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, RemoveLiquidityResult{}, res)
		})
	}
}

func TestLiquidity_RoundTrip(t *testing.T) {
	t.Parallel()

	pool := seededPool(t, "1000", "2000", "1414.2135")
	acc := account("30", "60", "0")

	added, err := AddLiquidity(pool, acc, d("30"), d("60"))
	require.NoError(t, err)

	removed, err := RemoveLiquidity(added.Pool, added.Account, added.Minted)
	require.NoError(t, err)

	requireDecNear(t, d("30"), removed.AmountA)
	requireDecNear(t, d("60"), removed.AmountB)
	require.True(t, removed.AmountA.LessThanOrEqual(d("30")))
	require.True(t, removed.AmountB.LessThanOrEqual(d("60")))
	require.True(t, removed.Account.BalanceLp.IsZero())
	requireDecNear(t, pool.ReserveA, removed.Pool.ReserveA)
	requireDecNear(t, pool.ReserveB, removed.Pool.ReserveB)
	requireDecEqual(t, pool.TotalLpSupply.String(), removed.Pool.TotalLpSupply)
}

func TestLiquidity_FullRedemption(t *testing.T) {
	t.Parallel()

	pool := seededPool(t, "1000", "1000", "1000")
	lp := account("500", "500", "1000")

	// fees accrue to liquidity providers
	swapped, err := Swap(pool, account("100", "0", "0"), AlphaToBeta, d("100"))
	require.NoError(t, err)
	pool = swapped.Pool

	res, err := RemoveLiquidity(pool, lp, pool.TotalLpSupply)
	require.NoError(t, err)

	requireDecEqual(t, pool.ReserveA.String(), res.AmountA)
	requireDecEqual(t, pool.ReserveB.String(), res.AmountB)
	require.True(t, res.Pool.ReserveA.IsZero())
	require.True(t, res.Pool.ReserveB.IsZero())
	require.True(t, res.Pool.TotalLpSupply.IsZero())
	require.NoError(t, res.Pool.Validate())
	require.False(t, res.Pool.IsInitialized())

	_, err = RemoveLiquidity(res.Pool, res.Account, d("1"))
	require.ErrorIs(t, err, apperrors.ErrUninitializedPool)
}

func TestLiquidity_FullRedemptionAtPrecisionLimit(t *testing.T) {
	t.Parallel()

	_, err := AddLiquidity(EmptyPool(), account("3", "3", "0"), d("1.0000000000000000001"), d("1"))
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	added, err := AddLiquidity(EmptyPool(), account("3", "3", "0"), d("1.000000000000000001"), d("1"))
	require.NoError(t, err)

	removed, err := RemoveLiquidity(added.Pool, added.Account, added.Pool.TotalLpSupply)
	require.NoError(t, err)

	requireDecEqual(t, "1.000000000000000001", removed.AmountA)
	requireDecEqual(t, "1", removed.AmountB)
	require.True(t, removed.Pool.ReserveA.IsZero(), removed.Pool.ReserveA.String())
	require.True(t, removed.Pool.ReserveB.IsZero(), removed.Pool.ReserveB.String())
	require.True(t, removed.Pool.TotalLpSupply.IsZero())
	require.NoError(t, removed.Pool.Validate())
	requireDecEqual(t, "3", removed.Account.BalanceA)
	requireDecEqual(t, "3", removed.Account.BalanceB)
}
