package http

import (
	"net/http"

	httpdto "github.com/Traqian/alpha-beta-swap-vault/internal/transport/http/dto"
	"github.com/Traqian/alpha-beta-swap-vault/internal/transport/http/validate"
)

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	account, err := s.svc.Connect(ctx)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, httpdto.NewAccountResponse(account))
}

func (s *Server) handleAccount(w http.ResponseWriter, r *http.Request) {
	addr, code, err := validate.AddressValidate(r)
	if err != nil {
		s.writeValidationError(w, code, err)
		return
	}

	account, err := s.svc.Account(r.Context(), addr)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, httpdto.NewAccountResponse(account))
}

func (s *Server) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	addr, code, err := validate.AddressValidate(r)
	if err != nil {
		s.writeValidationError(w, code, err)
		return
	}

	if err := s.svc.Disconnect(r.Context(), addr); err != nil {
		s.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
