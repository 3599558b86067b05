package validate

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Traqian/alpha-beta-swap-vault/internal/amm"
	"github.com/Traqian/alpha-beta-swap-vault/internal/apperrors"
	"github.com/Traqian/alpha-beta-swap-vault/internal/numeric"
	"github.com/Traqian/alpha-beta-swap-vault/internal/transport/http/dto"
)

const maxBodyBytes = 1 << 16

type swapBody struct {
	Address      string `json:"address"`
	Direction    string `json:"direction"`
	Amount       string `json:"amount"`
	MinAmountOut string `json:"min_amount_out"`
}

type addLiquidityBody struct {
	Address string `json:"address"`
	AmountA string `json:"amount_a"`
	AmountB string `json:"amount_b"`
}

type removeLiquidityBody struct {
	Address  string `json:"address"`
	LpAmount string `json:"lp_amount"`
}

// QuoteRequestValidate validates /quote request and returns dto.
// A missing slippage falls back to defaultSlippage.
func QuoteRequestValidate(r *http.Request, defaultSlippage decimal.Decimal) (*dto.QuoteRequest, int, error) {
	q := r.URL.Query()

	direction, err := amm.ParseDirection(q.Get("direction"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	amount, err := amountValidate("amount", q.Get("amount"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	slippage := defaultSlippage
	if raw := q.Get("slippage"); raw != "" {
		if slippage, err = amountValidate("slippage", raw); err != nil {
			return nil, http.StatusBadRequest, err
		}
	}

	return &dto.QuoteRequest{
		Direction: direction,
		Amount:    amount,
		Slippage:  slippage,
	}, 0, nil
}

// BalancedRequestValidate validates /liquidity/balanced request and returns dto.
func BalancedRequestValidate(r *http.Request) (*dto.BalancedRequest, int, error) {
	amountA, err := amountValidate("amount_a", r.URL.Query().Get("amount_a"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &dto.BalancedRequest{AmountA: amountA}, 0, nil
}

// AddressValidate validates the {address} path segment.
func AddressValidate(r *http.Request) (common.Address, int, error) {
	addr, err := addressValidate(r.PathValue("address"))
	if err != nil {
		return common.Address{}, http.StatusBadRequest, err
	}

	return addr, 0, nil
}

// SwapRequestValidate validates /swap request and returns dto.
func SwapRequestValidate(r *http.Request) (*dto.SwapRequest, int, error) {
	var body swapBody
	if code, err := decodeBody(r, &body); err != nil {
		return nil, code, err
	}

	addr, err := addressValidate(body.Address)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	direction, err := amm.ParseDirection(body.Direction)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	amount, err := requiredAmountValidate("amount", body.Amount)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	minOut, err := amountValidate("min_amount_out", body.MinAmountOut)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &dto.SwapRequest{
		Address:      addr,
		Direction:    direction,
		Amount:       amount,
		MinAmountOut: minOut,
	}, 0, nil
}

// AddLiquidityRequestValidate validates /liquidity/add request and returns dto.
func AddLiquidityRequestValidate(r *http.Request) (*dto.AddLiquidityRequest, int, error) {
	var body addLiquidityBody
	if code, err := decodeBody(r, &body); err != nil {
		return nil, code, err
	}

	addr, err := addressValidate(body.Address)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	amountA, err := requiredAmountValidate("amount_a", body.AmountA)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	amountB, err := requiredAmountValidate("amount_b", body.AmountB)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &dto.AddLiquidityRequest{
		Address: addr,
		AmountA: amountA,
		AmountB: amountB,
	}, 0, nil
}

// RemoveLiquidityRequestValidate validates /liquidity/remove request and returns dto.
func RemoveLiquidityRequestValidate(r *http.Request) (*dto.RemoveLiquidityRequest, int, error) {
	var body removeLiquidityBody
	if code, err := decodeBody(r, &body); err != nil {
		return nil, code, err
	}

	addr, err := addressValidate(body.Address)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	lpAmount, err := requiredAmountValidate("lp_amount", body.LpAmount)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &dto.RemoveLiquidityRequest{
		Address:  addr,
		LpAmount: lpAmount,
	}, 0, nil
}

func decodeBody(r *http.Request, v any) (int, error) {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return http.StatusUnsupportedMediaType, errors.Errorf("unsupported content type %q", ct)
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return http.StatusBadRequest, errors.Wrap(apperrors.ErrInvalidArgument, "malformed json body")
	}

	return 0, nil
}

func addressValidate(s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, errors.Wrap(apperrors.ErrInvalidArgument, "missing address")
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Wrap(apperrors.ErrInvalidArgument, "bad address format")
	}
	return common.HexToAddress(s), nil
}

func amountValidate(field, s string) (decimal.Decimal, error) {
	d, err := numeric.ParseStrict(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "bad %s", field)
	}
	return d, nil
}

func requiredAmountValidate(field, s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, errors.Wrapf(apperrors.ErrInvalidArgument, "missing %s", field)
	}
	return amountValidate(field, s)
}
