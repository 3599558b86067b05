package http

import (
	"net/http"

	"github.com/Traqian/alpha-beta-swap-vault/internal/service/dto"
	httpdto "github.com/Traqian/alpha-beta-swap-vault/internal/transport/http/dto"
	"github.com/Traqian/alpha-beta-swap-vault/internal/transport/http/validate"
)

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.SwapRequestValidate(r)
	if err != nil {
		s.writeValidationError(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	res, err := s.svc.Swap(ctx, dto.SwapRequest{
		Address:      req.Address,
		Direction:    req.Direction,
		Amount:       req.Amount,
		MinAmountOut: req.MinAmountOut,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, httpdto.NewSwapResponse(req.Direction, res))
}

func (s *Server) handleAddLiquidity(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.AddLiquidityRequestValidate(r)
	if err != nil {
		s.writeValidationError(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	res, err := s.svc.AddLiquidity(ctx, dto.AddLiquidityRequest{
		Address: req.Address,
		AmountA: req.AmountA,
		AmountB: req.AmountB,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, httpdto.NewAddLiquidityResponse(res))
}

func (s *Server) handleRemoveLiquidity(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.RemoveLiquidityRequestValidate(r)
	if err != nil {
		s.writeValidationError(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	res, err := s.svc.RemoveLiquidity(ctx, dto.RemoveLiquidityRequest{
		Address:  req.Address,
		LpAmount: req.LpAmount,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, httpdto.NewRemoveLiquidityResponse(res))
}
