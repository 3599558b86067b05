package http

import (
	"net/http"

	"github.com/Traqian/alpha-beta-swap-vault/internal/service/dto"
	httpdto "github.com/Traqian/alpha-beta-swap-vault/internal/transport/http/dto"
	"github.com/Traqian/alpha-beta-swap-vault/internal/transport/http/validate"
)

func (s *Server) handlePool(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, httpdto.NewPoolResponse(s.svc.Pool(r.Context())))
}

func (s *Server) handleRefreshPool(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	pool, err := s.svc.RefreshPool(ctx)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, httpdto.NewPoolResponse(pool))
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.QuoteRequestValidate(r, s.defaultSlippage)
	if err != nil {
		s.writeValidationError(w, code, err)
		return
	}

	quote, err := s.svc.Quote(r.Context(), dto.QuoteRequest{
		Direction: req.Direction,
		Amount:    req.Amount,
		Slippage:  req.Slippage,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, httpdto.NewQuoteResponse(quote))
}

func (s *Server) handleBalancedDeposit(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.BalancedRequestValidate(r)
	if err != nil {
		s.writeValidationError(w, code, err)
		return
	}

	amountB, err := s.svc.BalancedDeposit(r.Context(), req.AmountA)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, httpdto.BalancedResponse{
		AmountA: httpdto.NewAmount(req.AmountA),
		AmountB: httpdto.NewAmount(amountB),
	})
}
