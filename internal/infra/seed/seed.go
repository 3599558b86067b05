// Package seed provides in-process pool and wallet sources that stand in for
// a wallet provider and an indexer.
package seed

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Traqian/alpha-beta-swap-vault/internal/amm"
)

// balanceDecimals is the precision of generated balances.
const balanceDecimals = 2

// StaticPoolSource serves a fixed pool.
type StaticPoolSource struct {
	pool    amm.Pool
	latency time.Duration
}

// NewStaticPoolSource creates a StaticPoolSource for the given seed values.
func NewStaticPoolSource(reserveA, reserveB, totalSupply decimal.Decimal, latency time.Duration) (*StaticPoolSource, error) {
	pool, err := amm.NewPool(reserveA, reserveB, totalSupply)
	if err != nil {
		return nil, errors.Wrap(err, "amm.NewPool")
	}

	return &StaticPoolSource{pool: pool, latency: latency}, nil
}

// FetchPool returns the seed pool after the configured latency.
func (s *StaticPoolSource) FetchPool(ctx context.Context) (amm.Pool, error) {
	if err := wait(ctx, s.latency); err != nil {
		return amm.Pool{}, err
	}
	return s.pool, nil
}

// WalletOptions bounds generated wallet balances.
type WalletOptions struct {
	MinBalance   decimal.Decimal
	MaxBalance   decimal.Decimal
	MinLpBalance decimal.Decimal
	MaxLpBalance decimal.Decimal
	Latency      time.Duration

	// Rand drives balance generation. A randomly seeded source is used when nil.
	Rand *rand.Rand
}

// WalletSource opens wallets with fresh keys and random balances.
type WalletSource struct {
	opts WalletOptions

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewWalletSource creates WalletSource.
func NewWalletSource(opts WalletOptions) (*WalletSource, error) {
	if opts.MinBalance.IsNegative() || opts.MinBalance.GreaterThan(opts.MaxBalance) {
		return nil, errors.Errorf("bad balance range [%s, %s]", opts.MinBalance, opts.MaxBalance)
	}
	if opts.MinLpBalance.IsNegative() || opts.MinLpBalance.GreaterThan(opts.MaxLpBalance) {
		return nil, errors.Errorf("bad lp balance range [%s, %s]", opts.MinLpBalance, opts.MaxLpBalance)
	}

	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &WalletSource{opts: opts, rnd: rnd}, nil
}

// Connect generates a new key pair and returns its address with random balances.
func (s *WalletSource) Connect(ctx context.Context) (amm.Account, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return amm.Account{}, errors.Wrap(err, "crypto.GenerateKey")
	}

	return s.Balances(ctx, crypto.PubkeyToAddress(key.PublicKey))
}

// Balances draws a fresh set of balances for address.
func (s *WalletSource) Balances(ctx context.Context, address common.Address) (amm.Account, error) {
	if err := wait(ctx, s.opts.Latency); err != nil {
		return amm.Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return amm.Account{
		Address:   address,
		BalanceA:  s.between(s.opts.MinBalance, s.opts.MaxBalance),
		BalanceB:  s.between(s.opts.MinBalance, s.opts.MaxBalance),
		BalanceLp: s.between(s.opts.MinLpBalance, s.opts.MaxLpBalance),
	}, nil
}

// between returns a uniform value in [lo, hi] with balanceDecimals digits.
// Must be called with mu held.
func (s *WalletSource) between(lo, hi decimal.Decimal) decimal.Decimal {
	lo = lo.RoundCeil(balanceDecimals)
	hi = hi.RoundFloor(balanceDecimals)
	if !hi.GreaterThan(lo) {
		return lo
	}

	steps := hi.Sub(lo).Shift(balanceDecimals).IntPart()
	return lo.Add(decimal.New(s.rnd.Int64N(steps+1), -balanceDecimals))
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return errors.Wrap(ctx.Err(), "ctx.Err")
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "ctx.Done")
	case <-t.C:
		return nil
	}
}
