package amm

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireDecEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, d(want).Equal(got), "want %s got %s", want, got)
}

// requireDecNear asserts |want - got| <= 1e-12.
func requireDecNear(t *testing.T, want, got decimal.Decimal) {
	t.Helper()
	require.True(t, want.Sub(got).Abs().LessThanOrEqual(d("1e-12")), "want %s got %s", want, got)
}

func seededPool(t *testing.T, a, b, supply string) Pool {
	t.Helper()
	p, err := NewPool(d(a), d(b), d(supply))
	require.NoError(t, err)
	return p
}

func account(a, b, lp string) Account {
	return Account{
		Address:   common.HexToAddress("0x00000000000000000000000000000000000a11ce"),
		BalanceA:  d(a),
		BalanceB:  d(b),
		BalanceLp: d(lp),
	}
}
