package transport

import (
	"fmt"
	"net/http"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
)

func (s *Server) handleCreateDeposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	tx, err := parseHash("tx_hash", req.TransactionHash)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	d, err := s.bridge.CreateDeposit(r.Context(), caller(r), tx, btcutil.Amount(req.AmountSat))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newDepositResponse(d))
}

func (s *Server) handleGetDeposit(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	d, ok := s.bridge.Deposit(id)
	if !ok {
		s.writeError(w, r, fmt.Errorf("deposit %d: %w", id, bridgeerr.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, newDepositResponse(d))
}

func (s *Server) handleConfirmDeposit(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	d, err := s.bridge.ConfirmDeposit(r.Context(), caller(r), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newDepositResponse(d))
}
