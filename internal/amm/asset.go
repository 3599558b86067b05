package amm

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/Traqian/alpha-beta-swap-vault/internal/apperrors"
)

// Asset identifies one of the balances tracked by the pool and accounts.
type Asset string

const (
	AssetAlpha Asset = "ALPHA"
	AssetBeta  Asset = "BETA"
	AssetLP    Asset = "LP"
)

// Token describes a pooled asset for display.
type Token struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Icon   string `json:"icon"`
}

var (
	AlphaToken = Token{Name: "Alpha", Symbol: string(AssetAlpha), Icon: "🔵"}
	BetaToken  = Token{Name: "Beta", Symbol: string(AssetBeta), Icon: "🟣"}
)

// Direction is the side of a swap.
type Direction string

const (
	AlphaToBeta Direction = "ALPHA_TO_BETA"
	BetaToAlpha Direction = "BETA_TO_ALPHA"
)

// ParseDirection parses a direction name, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", errors.Wrapf(apperrors.ErrInvalidArgument, "unknown swap direction %q", s)
	}
	return d, nil
}

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == AlphaToBeta || d == BetaToAlpha
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == AlphaToBeta {
		return BetaToAlpha
	}
	return AlphaToBeta
}

// InputAsset returns the asset paid into the pool.
func (d Direction) InputAsset() Asset {
	if d == BetaToAlpha {
		return AssetBeta
	}
	return AssetAlpha
}

// OutputAsset returns the asset paid out of the pool.
func (d Direction) OutputAsset() Asset {
	if d == BetaToAlpha {
		return AssetAlpha
	}
	return AssetBeta
}
