package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/go-chi/chi/v5"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"go.uber.org/zap"
)

type errorResponse struct {
	Code    string `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch bridgeerr.KindOf(err) {
	case bridgeerr.KindInvalidInput:
		return http.StatusBadRequest
	case bridgeerr.KindNotFound:
		return http.StatusNotFound
	case bridgeerr.KindConflict:
		return http.StatusConflict
	case bridgeerr.KindPolicyViolation:
		if errors.Is(err, bridgeerr.ErrUnauthorized) {
			return http.StatusForbidden
		}
		return http.StatusUnprocessableEntity
	case bridgeerr.KindVerificationFailure:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := errorResponse{
		Code:    bridgeerr.CodeOf(err),
		Kind:    string(bridgeerr.KindOf(err)),
		Message: err.Error(),
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		body.Message = "internal error"
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func invalidInput(format string, args ...any) error {
	return bridgeerr.ErrInvalidInput.WithCause(fmt.Errorf(format, args...))
}

// decode reads a JSON body into dst and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	return s.decodeAs(w, r, dst, bridgeerr.ErrInvalidInput)
}

// decodeAs is decode for endpoints that report malformed bodies with their own code.
func (s *Server) decodeAs(w http.ResponseWriter, r *http.Request, dst any, kind *bridgeerr.Error) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return kind.WithCause(errors.New("empty request body"))
		}
		return kind.WithCause(fmt.Errorf("decode body: %w", err))
	}
	if err := s.validate.Struct(dst); err != nil {
		return kind.WithCause(err)
	}
	return nil
}

func caller(r *http.Request) model.Principal {
	return model.Principal(strings.TrimSpace(r.Header.Get(CallerHeader)))
}

func uintParam(r *http.Request, name string) (uint64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, invalidInput("%s %q is not an unsigned integer", name, raw)
	}
	return v, nil
}

func hashParam(r *http.Request, name string) (chainhash.Hash, error) {
	return parseHash(name, chi.URLParam(r, name))
}

func parseHash(field, raw string) (chainhash.Hash, error) {
	return parseHashAs(bridgeerr.ErrInvalidInput, field, raw)
}

func parseHashAs(kind *bridgeerr.Error, field, raw string) (chainhash.Hash, error) {
	h, err := model.ParseHash(raw)
	if err != nil {
		return chainhash.Hash{}, kind.WithCause(fmt.Errorf("%s: %w", field, err))
	}
	return h, nil
}

func queryUint(r *http.Request, name string) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, invalidInput("query %s %q is not an unsigned integer", name, raw)
	}
	return v, nil
}

func chiParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
