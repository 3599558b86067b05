package validate

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Traqian/alpha-beta-swap-vault/internal/apperrors"
	"github.com/Traqian/alpha-beta-swap-vault/internal/service/dto"
)

var maxSlippage = decimal.NewFromInt(100)

// QuoteRequestValidate validates a quote request.
func QuoteRequestValidate(req dto.QuoteRequest) error {
	if !req.Direction.Valid() {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "unknown swap direction %q", req.Direction)
	}

	if req.Slippage.IsNegative() || req.Slippage.GreaterThan(maxSlippage) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "slippage must be between 0 and 100")
	}

	return nil
}

// SwapRequestValidate validates a swap request. Amount checks are left to the engine.
func SwapRequestValidate(req dto.SwapRequest) error {
	if err := addressValidate(req.Address); err != nil {
		return err
	}

	if !req.Direction.Valid() {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "unknown swap direction %q", req.Direction)
	}

	if req.MinAmountOut.IsNegative() {
		return errors.Wrap(apperrors.ErrInvalidArgument, "minimum output cannot be negative")
	}

	return nil
}

// AddLiquidityRequestValidate validates a deposit request.
func AddLiquidityRequestValidate(req dto.AddLiquidityRequest) error {
	return addressValidate(req.Address)
}

// RemoveLiquidityRequestValidate validates a burn request.
func RemoveLiquidityRequestValidate(req dto.RemoveLiquidityRequest) error {
	return addressValidate(req.Address)
}

func addressValidate(addr common.Address) error {
	if addr == (common.Address{}) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "address cannot be empty")
	}
	return nil
}
