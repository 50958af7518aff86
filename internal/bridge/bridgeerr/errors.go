// Package bridgeerr defines the typed error taxonomy returned by bridge operations.
package bridgeerr

import (
	"errors"
	"fmt"
)

// Kind groups errors by how a caller should react to them.
type Kind string

const (
	KindInvalidInput        Kind = "invalid_input"
	KindNotFound            Kind = "not_found"
	KindConflict            Kind = "conflict"
	KindPolicyViolation     Kind = "policy_violation"
	KindVerificationFailure Kind = "verification_failure"
	KindInternal            Kind = "internal"
)

// Error is a classified bridge error. Errors match their sentinel with errors.Is
// by code, with or without an attached cause.
type Error struct {
	kind    Kind
	code    string
	message string
	cause   error
}

func newError(kind Kind, code, message string) *Error {
	return &Error{kind: kind, code: code, message: message}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Kind returns the error category.
func (e *Error) Kind() Kind { return e.kind }

// Code returns a stable machine-readable identifier.
func (e *Error) Code() string { return e.code }

// Message returns the human-readable description without the cause.
func (e *Error) Message() string { return e.message }

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is matches on code so that copies carrying a cause still compare equal to the sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.code == e.code && t.cause == nil
}

// WithCause returns a copy of the sentinel that carries cause.
func (e *Error) WithCause(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

var (
	ErrInvalidInput   = newError(KindInvalidInput, "INVALID_INPUT", "invalid input")
	ErrInvalidHeader  = newError(KindInvalidInput, "INVALID_HEADER", "invalid block header")
	ErrInvalidProof   = newError(KindInvalidInput, "INVALID_PROOF", "invalid inclusion proof")
	ErrProofTooLong   = newError(KindInvalidInput, "PROOF_TOO_LONG", "merkle path exceeds maximum length")
	ErrInvalidClaim   = newError(KindInvalidInput, "INVALID_CLAIM", "invalid claim")
	ErrTooManyEffects = newError(KindInvalidInput, "TOO_MANY_EFFECTS", "too many claimed effects")

	ErrNotFound      = newError(KindNotFound, "NOT_FOUND", "not found")
	ErrUnknownHeader = newError(KindNotFound, "UNKNOWN_HEADER", "target header is unknown or unverified")

	ErrAlreadyExists      = newError(KindConflict, "ALREADY_EXISTS", "already exists")
	ErrAlreadyVerified    = newError(KindConflict, "ALREADY_VERIFIED", "already verified")
	ErrDuplicateClaim     = newError(KindConflict, "DUPLICATE_CLAIM", "transaction already claimed")
	ErrNotPending         = newError(KindConflict, "NOT_PENDING", "deposit is not pending")
	ErrAlreadyDeactivated = newError(KindConflict, "ALREADY_DEACTIVATED", "transaction already deactivated")

	ErrBridgePaused              = newError(KindPolicyViolation, "BRIDGE_PAUSED", "bridge is paused")
	ErrBelowThreshold            = newError(KindPolicyViolation, "BELOW_THRESHOLD", "amount below minimum deposit")
	ErrInsufficientConfirmations = newError(KindPolicyViolation, "INSUFFICIENT_CONFIRMATIONS", "insufficient confirmations")
	ErrUnauthorized              = newError(KindPolicyViolation, "UNAUTHORIZED", "caller is not authorized")
	ErrProofNotReady             = newError(KindPolicyViolation, "PROOF_NOT_READY", "inclusion proof missing or unverified")
	ErrTransactionNotVerified    = newError(KindPolicyViolation, "TRANSACTION_NOT_VERIFIED", "transaction is not verified")

	ErrProofMismatch      = newError(KindVerificationFailure, "PROOF_MISMATCH", "merkle path does not match header root")
	ErrHeightMismatch     = newError(KindVerificationFailure, "HEIGHT_MISMATCH", "proof height differs from claimed height")
	ErrChainDiscontinuity = newError(KindVerificationFailure, "CHAIN_DISCONTINUITY", "previous block hash does not link to stored header")
	ErrInsufficientWork   = newError(KindVerificationFailure, "INSUFFICIENT_WORK", "block hash above target")
	ErrInvalidTarget      = newError(KindVerificationFailure, "INVALID_TARGET", "difficulty target out of range")
	ErrHeaderHashMismatch = newError(KindVerificationFailure, "HEADER_HASH_MISMATCH", "block hash does not match header fields")
)

// KindOf classifies err. Errors outside the taxonomy are KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// CodeOf returns the code of the outermost bridge error in err's chain.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return "INTERNAL_ERROR"
}

// Retryable reports whether the same call may succeed later without changing its input.
func Retryable(err error) bool {
	switch {
	case errors.Is(err, ErrInsufficientConfirmations),
		errors.Is(err, ErrProofNotReady),
		errors.Is(err, ErrUnknownHeader),
		errors.Is(err, ErrBridgePaused):
		return true
	default:
		return false
	}
}
