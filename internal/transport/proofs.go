package transport

import (
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
)

func (s *Server) handleSubmitProof(w http.ResponseWriter, r *http.Request) {
	var req proofRequest
	if err := s.decodeAs(w, r, &req, bridgeerr.ErrInvalidProof); err != nil {
		s.writeError(w, r, err)
		return
	}
	tx, err := parseHashAs(bridgeerr.ErrInvalidProof, "tx_hash", req.TransactionHash)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	path, err := req.path()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.bridge.SubmitProof(r.Context(), caller(r), tx, req.TargetHeight, path, req.Index); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, _ := s.bridge.Proof(tx)
	writeJSON(w, http.StatusCreated, newProofResponse(p))
}

func (s *Server) handleGetProof(w http.ResponseWriter, r *http.Request) {
	tx, err := hashParam(r, "txid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, ok := s.bridge.Proof(tx)
	if !ok {
		s.writeError(w, r, fmt.Errorf("proof %s: %w", tx, bridgeerr.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, newProofResponse(p))
}

func (s *Server) handleVerifyProof(w http.ResponseWriter, r *http.Request) {
	tx, err := hashParam(r, "txid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.bridge.VerifyProof(r.Context(), caller(r), tx); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, _ := s.bridge.Proof(tx)
	writeJSON(w, http.StatusOK, newProofResponse(p))
}
