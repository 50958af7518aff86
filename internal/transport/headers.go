package transport

import (
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
)

func (s *Server) handleSubmitHeader(w http.ResponseWriter, r *http.Request) {
	var req headerRequest
	if err := s.decodeAs(w, r, &req, bridgeerr.ErrInvalidHeader); err != nil {
		s.writeError(w, r, err)
		return
	}
	h, err := req.header()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.bridge.SubmitHeader(r.Context(), caller(r), h); err != nil {
		s.writeError(w, r, err)
		return
	}
	stored, _ := s.bridge.Header(h.Height)
	writeJSON(w, http.StatusCreated, newHeaderResponse(stored))
}

func (s *Server) handleGetHeader(w http.ResponseWriter, r *http.Request) {
	height, err := uintParam(r, "height")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	h, ok := s.bridge.Header(height)
	if !ok {
		s.writeError(w, r, fmt.Errorf("header %d: %w", height, bridgeerr.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, newHeaderResponse(h))
}

func (s *Server) handleVerifyHeader(w http.ResponseWriter, r *http.Request) {
	height, err := uintParam(r, "height")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.bridge.VerifyHeader(r.Context(), caller(r), height); err != nil {
		s.writeError(w, r, err)
		return
	}
	h, _ := s.bridge.Header(height)
	writeJSON(w, http.StatusOK, newHeaderResponse(h))
}
