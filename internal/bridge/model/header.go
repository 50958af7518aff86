package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/bridgeerr"
)

// BlockHeader is a source-chain header keyed by height.
type BlockHeader struct {
	Height            uint64
	BlockHash         chainhash.Hash
	PreviousBlockHash chainhash.Hash
	MerkleRoot        chainhash.Hash
	Version           int32
	Timestamp         time.Time
	// Bits is the compact encoding of the proof-of-work target.
	Bits        uint32
	Nonce       uint32
	Verified    bool
	SubmittedAt time.Time
	VerifiedAt  time.Time
}

// Wire rebuilds the 80-byte serialized header form.
func (h BlockHeader) Wire() wire.BlockHeader {
	return wire.BlockHeader{
		Version:    h.Version,
		PrevBlock:  h.PreviousBlockHash,
		MerkleRoot: h.MerkleRoot,
		Timestamp:  h.Timestamp,
		Bits:       h.Bits,
		Nonce:      h.Nonce,
	}
}

// HeaderFromWire maps a wire header at the given height, taking the hash from the header itself.
func HeaderFromWire(height uint64, wh wire.BlockHeader) BlockHeader {
	return BlockHeader{
		Height:            height,
		BlockHash:         wh.BlockHash(),
		PreviousBlockHash: wh.PrevBlock,
		MerkleRoot:        wh.MerkleRoot,
		Version:           wh.Version,
		Timestamp:         wh.Timestamp,
		Bits:              wh.Bits,
		Nonce:             wh.Nonce,
	}
}

// NewBlockHeader builds a header from raw hash fields, each of which must be 32 bytes.
func NewBlockHeader(height uint64, blockHash, prevBlockHash, merkleRoot []byte, version int32,
	timestamp time.Time, bits, nonce uint32,
) (BlockHeader, error) {
	h := BlockHeader{Height: height, Version: version, Timestamp: timestamp, Bits: bits, Nonce: nonce}
	for _, f := range []struct {
		name string
		src  []byte
		dst  *chainhash.Hash
	}{
		{"block hash", blockHash, &h.BlockHash},
		{"previous block hash", prevBlockHash, &h.PreviousBlockHash},
		{"merkle root", merkleRoot, &h.MerkleRoot},
	} {
		v, err := HashFromBytes(f.src)
		if err != nil {
			return BlockHeader{}, bridgeerr.ErrInvalidHeader.WithCause(fmt.Errorf("%s: %w", f.name, err))
		}
		*f.dst = v
	}
	if height == 0 {
		return BlockHeader{}, bridgeerr.ErrInvalidHeader.WithCause(errors.New("height must be positive"))
	}
	return h, nil
}
