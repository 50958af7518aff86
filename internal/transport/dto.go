package transport

import (
	"encoding/hex"
	"fmt"
	"slices"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/records"
)

// Hashes travel in their byte-reversed display form, as block explorers show them.

type headerRequest struct {
	Height            uint64 `json:"height"`
	BlockHash         string `json:"block_hash"`
	PreviousBlockHash string `json:"previous_block_hash"`
	MerkleRoot        string `json:"merkle_root"`
	Version           int32  `json:"version"`
	Timestamp         int64  `json:"timestamp" validate:"gt=0"`
	Bits              uint32 `json:"bits" validate:"required"`
	Nonce             uint32 `json:"nonce"`
}

// header builds the header through model.NewBlockHeader, which owns the hash length
// and height rules.
func (req headerRequest) header() (model.BlockHeader, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"block_hash", req.BlockHash},
		{"previous_block_hash", req.PreviousBlockHash},
		{"merkle_root", req.MerkleRoot},
	}
	raw := make([][]byte, 0, len(fields))
	for _, f := range fields {
		b, err := hex.DecodeString(f.value)
		if err != nil {
			return model.BlockHeader{}, bridgeerr.ErrInvalidHeader.WithCause(fmt.Errorf("%s: %w", f.name, err))
		}
		slices.Reverse(b)
		raw = append(raw, b)
	}
	return model.NewBlockHeader(req.Height, raw[0], raw[1], raw[2], req.Version,
		time.Unix(req.Timestamp, 0).UTC(), req.Bits, req.Nonce)
}

type headerResponse struct {
	Height            uint64     `json:"height"`
	BlockHash         string     `json:"block_hash"`
	PreviousBlockHash string     `json:"previous_block_hash"`
	MerkleRoot        string     `json:"merkle_root"`
	Version           int32      `json:"version"`
	Timestamp         int64      `json:"timestamp"`
	Bits              uint32     `json:"bits"`
	Nonce             uint32     `json:"nonce"`
	Verified          bool       `json:"verified"`
	SubmittedAt       time.Time  `json:"submitted_at"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty"`
}

func newHeaderResponse(h model.BlockHeader) headerResponse {
	return headerResponse{
		Height:            h.Height,
		BlockHash:         h.BlockHash.String(),
		PreviousBlockHash: h.PreviousBlockHash.String(),
		MerkleRoot:        h.MerkleRoot.String(),
		Version:           h.Version,
		Timestamp:         h.Timestamp.Unix(),
		Bits:              h.Bits,
		Nonce:             h.Nonce,
		Verified:          h.Verified,
		SubmittedAt:       h.SubmittedAt,
		VerifiedAt:        optionalTime(h.VerifiedAt),
	}
}

type proofRequest struct {
	TransactionHash string   `json:"tx_hash" validate:"required,len=64,hexadecimal"`
	TargetHeight    uint64   `json:"target_height"`
	MerklePath      []string `json:"merkle_path" validate:"dive,len=64,hexadecimal"`
	Index           uint32   `json:"index"`
}

func (req proofRequest) path() ([]chainhash.Hash, error) {
	path := make([]chainhash.Hash, 0, len(req.MerklePath))
	for i, raw := range req.MerklePath {
		h, err := model.ParseHash(raw)
		if err != nil {
			return nil, bridgeerr.ErrInvalidProof.WithCause(fmt.Errorf("merkle_path[%d]: %w", i, err))
		}
		path = append(path, h)
	}
	return path, nil
}

type proofResponse struct {
	TransactionHash string     `json:"tx_hash"`
	TargetHeight    uint64     `json:"target_height"`
	MerklePath      []string   `json:"merkle_path"`
	Index           uint32     `json:"index"`
	Verified        bool       `json:"verified"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
}

func newProofResponse(p model.InclusionProof) proofResponse {
	path := make([]string, 0, len(p.MerklePath))
	for _, h := range p.MerklePath {
		path = append(path, h.String())
	}
	return proofResponse{
		TransactionHash: p.TransactionHash.String(),
		TargetHeight:    p.TargetHeight,
		MerklePath:      path,
		Index:           p.TransactionIndex,
		Verified:        p.Verified,
		SubmittedAt:     p.SubmittedAt,
		VerifiedAt:      optionalTime(p.VerifiedAt),
	}
}

type effectDTO struct {
	Type    string `json:"type" validate:"required"`
	Payload []byte `json:"payload"`
}

type claimRequest struct {
	TransactionHash string      `json:"tx_hash" validate:"required,len=64,hexadecimal"`
	ClaimedHeight   uint64      `json:"claimed_height"`
	Effects         []effectDTO `json:"effects" validate:"dive"`
}

func (req claimRequest) effects() []model.Effect {
	out := make([]model.Effect, 0, len(req.Effects))
	for _, e := range req.Effects {
		out = append(out, model.Effect{Type: e.Type, Payload: e.Payload})
	}
	return out
}

type claimResponse struct {
	TransactionHash string      `json:"tx_hash"`
	Submitter       string      `json:"submitter"`
	ClaimedHeight   uint64      `json:"claimed_height"`
	SubmittedAt     time.Time   `json:"submitted_at"`
	Effects         []effectDTO `json:"effects"`
}

func newClaimResponse(c model.PendingClaim) claimResponse {
	effects := make([]effectDTO, 0, len(c.ClaimedEffects))
	for _, e := range c.ClaimedEffects {
		effects = append(effects, effectDTO{Type: e.Type, Payload: e.Payload})
	}
	return claimResponse{
		TransactionHash: c.TransactionHash.String(),
		Submitter:       string(c.Submitter),
		ClaimedHeight:   c.ClaimedHeight,
		SubmittedAt:     c.SubmittedAt,
		Effects:         effects,
	}
}

type finalizeRequest struct {
	Confirmations uint32 `json:"confirmations"`
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required,max=512"`
}

type effectResultDTO struct {
	Index    int    `json:"index"`
	RecordID string `json:"record_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

type transactionResponse struct {
	TransactionHash string            `json:"tx_hash"`
	ClaimedHeight   uint64            `json:"claimed_height"`
	Confirmations   uint32            `json:"confirmations"`
	Status          string            `json:"status"`
	VerifiedAt      time.Time         `json:"verified_at"`
	DeactivatedAt   *time.Time        `json:"deactivated_at,omitempty"`
	EffectCount     int               `json:"effect_count"`
	IndexedEffects  int               `json:"indexed_effects"`
	FailedEffects   int               `json:"failed_effects"`
	Effects         []effectResultDTO `json:"effects"`
	Deposits        []depositResponse `json:"deposits,omitempty"`
}

func newTransactionResponse(v model.VerifiedTransaction, deposits []model.DepositRecord) transactionResponse {
	out := transactionResponse{
		TransactionHash: v.TransactionHash.String(),
		ClaimedHeight:   v.ClaimedHeight,
		Confirmations:   v.Confirmations,
		Status:          string(v.Status),
		VerifiedAt:      v.VerifiedAt,
		DeactivatedAt:   v.DeactivatedAt,
		EffectCount:     v.EffectCount,
		IndexedEffects:  v.IndexedEffects,
		FailedEffects:   v.FailedEffects,
		Effects:         make([]effectResultDTO, 0, len(v.Effects)),
	}
	for _, e := range v.Effects {
		out.Effects = append(out.Effects, effectResultDTO{Index: e.Index, RecordID: string(e.RecordID), Error: e.Error})
	}
	for _, d := range deposits {
		out.Deposits = append(out.Deposits, newDepositResponse(d))
	}
	return out
}

type depositRequest struct {
	TransactionHash string `json:"tx_hash" validate:"required,len=64,hexadecimal"`
	AmountSat       int64  `json:"amount_sat" validate:"required,gt=0"`
}

type depositResponse struct {
	ID              uint64     `json:"id"`
	TransactionHash string     `json:"tx_hash"`
	Depositor       string     `json:"depositor"`
	AmountSat       int64      `json:"amount_sat"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
}

func newDepositResponse(d model.DepositRecord) depositResponse {
	return depositResponse{
		ID:              d.ID,
		TransactionHash: d.TransactionHash.String(),
		Depositor:       string(d.Depositor),
		AmountSat:       int64(d.Amount),
		Status:          string(d.Status),
		CreatedAt:       d.CreatedAt,
		ConfirmedAt:     d.ConfirmedAt,
	}
}

type pausedRequest struct {
	Paused *bool `json:"paused" validate:"required"`
}

type confirmationsRequest struct {
	Value uint32 `json:"value" validate:"required"`
}

type minDepositRequest struct {
	AmountSat int64 `json:"amount_sat" validate:"required"`
}

type ownerRequest struct {
	Owner string `json:"owner" validate:"required"`
}

type policyResponse struct {
	Network          string   `json:"network"`
	Owner            string   `json:"owner"`
	Operators        []string `json:"operators"`
	Paused           bool     `json:"paused"`
	MinConfirmations uint32   `json:"min_confirmations"`
	MaxConfirmations uint32   `json:"max_confirmations"`
	MinDepositSat    int64    `json:"min_deposit_sat"`
}

func newPolicyResponse(network model.Network, p model.Policy) policyResponse {
	ops := make([]string, 0, len(p.Operators))
	for _, o := range p.Operators {
		ops = append(ops, string(o))
	}
	return policyResponse{
		Network:          string(network),
		Owner:            string(p.Owner),
		Operators:        ops,
		Paused:           p.Paused,
		MinConfirmations: p.MinConfirmations,
		MaxConfirmations: p.MaxConfirmations,
		MinDepositSat:    int64(p.MinDepositAmount),
	}
}

type statsResponse struct {
	HeadersSubmitted  uint64 `json:"headers_submitted"`
	HeadersVerified   uint64 `json:"headers_verified"`
	ProofsSubmitted   uint64 `json:"proofs_submitted"`
	ProofsVerified    uint64 `json:"proofs_verified"`
	ProofsMismatched  uint64 `json:"proofs_mismatched"`
	ClaimsSubmitted   uint64 `json:"claims_submitted"`
	ClaimsFinalized   uint64 `json:"claims_finalized"`
	ClaimsRejected    uint64 `json:"claims_rejected"`
	EffectsIndexed    uint64 `json:"effects_indexed"`
	EffectsFailed     uint64 `json:"effects_failed"`
	DepositsCreated   uint64 `json:"deposits_created"`
	DepositsConfirmed uint64 `json:"deposits_confirmed"`
	HighestHeight     uint64 `json:"highest_height"`
	LastSeq           uint64 `json:"last_seq"`
	Paused            bool   `json:"paused"`
}

func newStatsResponse(st model.Stats, highest, lastSeq uint64, paused bool) statsResponse {
	return statsResponse{
		HeadersSubmitted:  st.HeadersSubmitted,
		HeadersVerified:   st.HeadersVerified,
		ProofsSubmitted:   st.ProofsSubmitted,
		ProofsVerified:    st.ProofsVerified,
		ProofsMismatched:  st.ProofsMismatched,
		ClaimsSubmitted:   st.ClaimsSubmitted,
		ClaimsFinalized:   st.ClaimsFinalized,
		ClaimsRejected:    st.ClaimsRejected,
		EffectsIndexed:    st.EffectsIndexed,
		EffectsFailed:     st.EffectsFailed,
		DepositsCreated:   st.DepositsCreated,
		DepositsConfirmed: st.DepositsConfirmed,
		HighestHeight:     highest,
		LastSeq:           lastSeq,
		Paused:            paused,
	}
}

type operationResponse struct {
	Seq             uint64    `json:"seq"`
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	Caller          string    `json:"caller,omitempty"`
	TransactionHash string    `json:"tx_hash,omitempty"`
	Height          uint64    `json:"height,omitempty"`
	DepositID       uint64    `json:"deposit_id,omitempty"`
	AmountSat       int64     `json:"amount_sat,omitempty"`
	Detail          string    `json:"detail,omitempty"`
	At              time.Time `json:"at"`
}

func newOperationResponses(entries []model.OperationLogEntry) []operationResponse {
	out := make([]operationResponse, 0, len(entries))
	for _, e := range entries {
		op := operationResponse{
			Seq:       e.Seq,
			ID:        e.ID.String(),
			Kind:      string(e.Kind),
			Caller:    string(e.Caller),
			Height:    e.Height,
			DepositID: e.DepositID,
			AmountSat: int64(e.Amount),
			Detail:    e.Detail,
			At:        e.At,
		}
		if !model.IsZeroHash(e.TransactionHash) {
			op.TransactionHash = e.TransactionHash.String()
		}
		out = append(out, op)
	}
	return out
}

type recordResponse struct {
	records.Record
	SourceTx string `json:"source_tx"`
}

func newRecordResponse(r records.Record) recordResponse {
	return recordResponse{Record: r, SourceTx: r.SourceTx.String()}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
