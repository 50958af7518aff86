package transport

import (
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"go.uber.org/zap"
)

const defaultHistoryLimit = 500

func (s *Server) handleSubmitClaim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := s.decodeAs(w, r, &req, bridgeerr.ErrInvalidClaim); err != nil {
		s.writeError(w, r, err)
		return
	}
	tx, err := parseHashAs(bridgeerr.ErrInvalidClaim, "tx_hash", req.TransactionHash)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.bridge.SubmitClaim(r.Context(), caller(r), tx, req.ClaimedHeight, req.effects()); err != nil {
		s.writeError(w, r, err)
		return
	}
	c, _ := s.bridge.PendingClaim(tx)
	writeJSON(w, http.StatusAccepted, newClaimResponse(c))
}

func (s *Server) handleListClaims(w http.ResponseWriter, _ *http.Request) {
	pending := s.bridge.PendingClaims()
	out := make([]claimResponse, 0, len(pending))
	for _, c := range pending {
		out = append(out, newClaimResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetClaim(w http.ResponseWriter, r *http.Request) {
	tx, err := hashParam(r, "txid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	c, ok := s.bridge.PendingClaim(tx)
	if !ok {
		s.writeError(w, r, fmt.Errorf("pending claim %s: %w", tx, bridgeerr.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, newClaimResponse(c))
}

func (s *Server) handleFinalizeClaim(w http.ResponseWriter, r *http.Request) {
	tx, err := hashParam(r, "txid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req finalizeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	vt, err := s.bridge.FinalizeClaim(r.Context(), caller(r), tx, req.Confirmations)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newTransactionResponse(vt, nil))
}

func (s *Server) handleRejectClaim(w http.ResponseWriter, r *http.Request) {
	tx, err := hashParam(r, "txid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req rejectRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.bridge.RejectClaim(r.Context(), caller(r), tx, req.Reason); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := hashParam(r, "txid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	vt, ok := s.bridge.VerifiedTransaction(tx)
	if !ok {
		s.writeError(w, r, fmt.Errorf("verified transaction %s: %w", tx, bridgeerr.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, newTransactionResponse(vt, s.bridge.DepositsByTransaction(tx)))
}

func (s *Server) handleDeactivateTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := hashParam(r, "txid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.bridge.DeactivateTransaction(r.Context(), caller(r), tx); err != nil {
		s.writeError(w, r, err)
		return
	}
	vt, _ := s.bridge.VerifiedTransaction(tx)
	writeJSON(w, http.StatusOK, newTransactionResponse(vt, nil))
}

// handleTransactionHistory serves the exported log, which outlives in-memory retention.
func (s *Server) handleTransactionHistory(w http.ResponseWriter, r *http.Request) {
	tx, err := hashParam(r, "txid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	limit, err := queryUint(r, "limit")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if limit == 0 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}
	entries, err := s.history.OperationsByTransaction(r.Context(), tx, limit)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("transaction history: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, newOperationResponses(entries))
}

func (s *Server) handleTransactionRecords(w http.ResponseWriter, r *http.Request) {
	tx, err := hashParam(r, "txid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	ids, err := s.records.RecordsBySource(r.Context(), tx)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("records by source: %w", err))
		return
	}
	out := make([]recordResponse, 0, len(ids))
	for _, id := range ids {
		rec, ok, err := s.records.GetRecord(r.Context(), id)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("get record %s: %w", id, err))
			return
		}
		if !ok {
			s.logger.Warn("indexed record missing", zap.String("record", string(id)))
			continue
		}
		out = append(out, newRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id := model.RecordID(chiParam(r, "id"))
	rec, ok, err := s.records.GetRecord(r.Context(), id)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("get record %s: %w", id, err))
		return
	}
	if !ok {
		s.writeError(w, r, fmt.Errorf("record %s: %w", id, bridgeerr.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, newRecordResponse(rec))
}
