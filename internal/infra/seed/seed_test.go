package seed

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultOptions() WalletOptions {
	return WalletOptions{
		MinBalance:   d("100"),
		MaxBalance:   d("200"),
		MinLpBalance: d("5"),
		MaxLpBalance: d("15"),
		Rand:         rand.New(rand.NewPCG(1, 2)),
	}
}

func requireBetween(t *testing.T, lo, hi, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.GreaterThanOrEqual(lo) && got.LessThanOrEqual(hi), "%s not in [%s, %s]", got, lo, hi)
	require.LessOrEqual(t, -got.Exponent(), int32(balanceDecimals), "%s has too many decimals", got)
}

func TestStaticPoolSource(t *testing.T) {
	t.Parallel()

	t.Run("returns seed", func(t *testing.T) {
		t.Parallel()

		src, err := NewStaticPoolSource(d("1000"), d("1000"), d("1000"), 0)
		require.NoError(t, err)

		pool, err := src.FetchPool(context.Background())
		require.NoError(t, err)
		require.True(t, pool.ReserveA.Equal(d("1000")))
		require.True(t, pool.TotalLpSupply.Equal(d("1000")))
		require.True(t, pool.IsInitialized())
	})

	t.Run("invalid seed", func(t *testing.T) {
		t.Parallel()

		_, err := NewStaticPoolSource(d("1000"), d("1000"), decimal.Zero, 0)
		require.Error(t, err)
	})

	t.Run("cancelled during latency", func(t *testing.T) {
		t.Parallel()

		src, err := NewStaticPoolSource(d("1"), d("1"), d("1"), time.Hour)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err = src.FetchPool(ctx)
		require.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}

func TestWalletSource_Connect(t *testing.T) {
	t.Parallel()

	src, err := NewWalletSource(defaultOptions())
	require.NoError(t, err)

	seen := make(map[common.Address]struct{})
	for i := 0; i < 20; i++ {
		acc, err := src.Connect(context.Background())
		require.NoError(t, err)
		require.NotEqual(t, common.Address{}, acc.Address)

		requireBetween(t, d("100"), d("200"), acc.BalanceA)
		requireBetween(t, d("100"), d("200"), acc.BalanceB)
		requireBetween(t, d("5"), d("15"), acc.BalanceLp)

		seen[acc.Address] = struct{}{}
	}
	require.Len(t, seen, 20)
}

func TestWalletSource_Balances(t *testing.T) {
	t.Parallel()

	addr := common.HexToAddress("0x00000000000000000000000000000000000a11ce")

	t.Run("keeps address", func(t *testing.T) {
		t.Parallel()

		src, err := NewWalletSource(defaultOptions())
		require.NoError(t, err)

		acc, err := src.Balances(context.Background(), addr)
		require.NoError(t, err)
		require.Equal(t, addr, acc.Address)
	})

	t.Run("fixed range is exact", func(t *testing.T) {
		t.Parallel()

		opts := defaultOptions()
		opts.MinBalance, opts.MaxBalance = d("150.5"), d("150.5")
		opts.MinLpBalance, opts.MaxLpBalance = decimal.Zero, decimal.Zero

		src, err := NewWalletSource(opts)
		require.NoError(t, err)

		acc, err := src.Balances(context.Background(), addr)
		require.NoError(t, err)
		require.True(t, acc.BalanceA.Equal(d("150.5")))
		require.True(t, acc.BalanceLp.IsZero())
	})

	t.Run("same seed same balances", func(t *testing.T) {
		t.Parallel()

		first, err := NewWalletSource(defaultOptions())
		require.NoError(t, err)
		second, err := NewWalletSource(defaultOptions())
		require.NoError(t, err)

		a, err := first.Balances(context.Background(), addr)
		require.NoError(t, err)
		b, err := second.Balances(context.Background(), addr)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		opts := defaultOptions()
		opts.Latency = time.Hour
		src, err := NewWalletSource(opts)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = src.Balances(ctx, addr)
		require.True(t, errors.Is(err, context.Canceled))
	})
}

func TestNewWalletSource_InvalidRanges(t *testing.T) {
	t.Parallel()

	opts := defaultOptions()
	opts.MinBalance, opts.MaxBalance = d("200"), d("100")
	_, err := NewWalletSource(opts)
	require.Error(t, err)

	opts = defaultOptions()
	opts.MinLpBalance = d("-1")
	_, err = NewWalletSource(opts)
	require.Error(t, err)
}
