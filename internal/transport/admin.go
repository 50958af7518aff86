package transport

import (
	"net/http"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/goodnatureofminers/blockinsight7000-bridge/pkg/safe"
)

func (s *Server) writePolicy(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, newPolicyResponse(s.bridge.Network(), s.bridge.Policy()))
}

func (s *Server) handleGetPolicy(w http.ResponseWriter, _ *http.Request) {
	s.writePolicy(w)
}

func (s *Server) handleSetPaused(w http.ResponseWriter, r *http.Request) {
	var req pausedRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.bridge.SetPaused(r.Context(), caller(r), *req.Paused); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writePolicy(w)
}

func (s *Server) handleSetMinConfirmations(w http.ResponseWriter, r *http.Request) {
	var req confirmationsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.bridge.SetMinConfirmations(r.Context(), caller(r), req.Value); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writePolicy(w)
}

func (s *Server) handleSetMaxConfirmations(w http.ResponseWriter, r *http.Request) {
	var req confirmationsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.bridge.SetMaxConfirmations(r.Context(), caller(r), req.Value); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writePolicy(w)
}

func (s *Server) handleSetMinDeposit(w http.ResponseWriter, r *http.Request) {
	var req minDepositRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.bridge.SetMinDepositAmount(r.Context(), caller(r), btcutil.Amount(req.AmountSat)); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writePolicy(w)
}

func (s *Server) handleGrantOperator(w http.ResponseWriter, r *http.Request) {
	s.setOperator(w, r, true)
}

func (s *Server) handleRevokeOperator(w http.ResponseWriter, r *http.Request) {
	s.setOperator(w, r, false)
}

func (s *Server) setOperator(w http.ResponseWriter, r *http.Request, enabled bool) {
	who := model.Principal(chiParam(r, "principal"))
	if err := s.bridge.SetOperator(r.Context(), caller(r), who, enabled); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writePolicy(w)
}

func (s *Server) handleTransferOwnership(w http.ResponseWriter, r *http.Request) {
	var req ownerRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.bridge.TransferOwnership(r.Context(), caller(r), model.Principal(req.Owner)); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writePolicy(w)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, newStatsResponse(s.bridge.Stats(), s.bridge.HighestHeight(), s.bridge.LastSeq(), s.bridge.Paused()))
}

func (s *Server) handleOperationLog(w http.ResponseWriter, r *http.Request) {
	after, err := queryUint(r, "after")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	limit, err := queryUint(r, "limit")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	n, err := safe.Int64(limit)
	if err != nil {
		s.writeError(w, r, invalidInput("limit: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, newOperationResponses(s.bridge.OperationLog(after, int(n))))
}
