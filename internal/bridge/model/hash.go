package model

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// HashFromBytes copies a raw 32-byte hash in wire byte order.
func HashFromBytes(b []byte) (chainhash.Hash, error) {
	if len(b) != chainhash.HashSize {
		return chainhash.Hash{}, fmt.Errorf("hash length %d, want %d", len(b), chainhash.HashSize)
	}
	var h chainhash.Hash
	copy(h[:], b)
	return h, nil
}

// ParseHash decodes a hash from its byte-reversed hex display form.
func ParseHash(s string) (chainhash.Hash, error) {
	if len(s) != chainhash.MaxHashStringSize {
		return chainhash.Hash{}, fmt.Errorf("hash string length %d, want %d", len(s), chainhash.MaxHashStringSize)
	}
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return *h, nil
}

// IsZeroHash reports whether h is all zero bytes.
func IsZeroHash(h chainhash.Hash) bool {
	return h == chainhash.Hash{}
}
