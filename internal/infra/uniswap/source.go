package uniswap

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Traqian/alpha-beta-swap-vault/internal/amm"
	"github.com/Traqian/alpha-beta-swap-vault/internal/poolmath"
)

// PoolSource seeds the vault from a live Uniswap V2 pair. token0 is read as
// ALPHA and token1 as BETA. It only reads chain state.
type PoolSource struct {
	client Client
	pair   common.Address

	decimalsA  int32
	decimalsB  int32
	lpDecimals int32
}

// NewPoolSource creates PoolSource. decimals convert raw integer amounts into token units.
func NewPoolSource(client Client, pair common.Address, decimalsA, decimalsB, lpDecimals int32) *PoolSource {
	return &PoolSource{
		client: client,
		pair:   pair,

		decimalsA:  decimalsA,
		decimalsB:  decimalsB,
		lpDecimals: lpDecimals,
	}
}

// FetchPool reads the pair and converts it into a pool.
func (s *PoolSource) FetchPool(ctx context.Context) (amm.Pool, error) {
	r0, r1, supply, err := s.client.GetPairState(ctx, s.pair)
	if err != nil {
		return amm.Pool{}, errors.Wrap(err, "s.client.GetPairState")
	}

	pool, err := amm.NewPool(scale(r0, s.decimalsA), scale(r1, s.decimalsB), scale(supply, s.lpDecimals))
	if err != nil {
		return amm.Pool{}, errors.Wrapf(err, "pair %s", s.pair.Hex())
	}

	return pool, nil
}

// scale converts a raw integer into token units. Tokens with more than
// poolmath.Precision decimals lose their finest digits.
func scale(raw *big.Int, decimals int32) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw, -decimals).Truncate(poolmath.Precision)
}
