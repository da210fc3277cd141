package types

import (
	"encoding/hex"
	"fmt"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	"github.com/goccy/go-json"
)

// hashHexLen is the length of a hash in display hex.
const hashHexLen = chainhash.HashSize * 2

// BlockHash identifies a block. It marshals as the daemon's byte-reversed
// display hex.
type BlockHash chainhash.Hash

// TransactionID identifies a transaction, in the same display hex form as
// BlockHash.
type TransactionID chainhash.Hash

// parseDisplayHex decodes a 64-character display hex string into a hash.
func parseDisplayHex(s string) (chainhash.Hash, error) {
	if len(s) != hashHexLen {
		return chainhash.Hash{}, fmt.Errorf("%w: want %d characters, got %d: %w", ErrInvalidHex, hashHexLen, len(s), hex.ErrLength)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	// Display order is the reverse of the internal byte order.
	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}
	h, err := chainhash.NewHash(raw)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return *h, nil
}

func unmarshalHashJSON(data []byte) (chainhash.Hash, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return chainhash.Hash{}, err
	}
	return parseDisplayHex(s)
}

// ParseBlockHash parses a block hash in display hex.
func ParseBlockHash(s string) (BlockHash, error) {
	h, err := parseDisplayHex(s)
	return BlockHash(h), err
}

func (h BlockHash) String() string { return chainhash.Hash(h).String() }

func (h BlockHash) MarshalJSON() ([]byte, error) { return json.Marshal(h.String()) }

func (h *BlockHash) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalHashJSON(data)
	if err != nil {
		return err
	}
	*h = BlockHash(parsed)
	return nil
}

// ParseTransactionID parses a txid in display hex.
func ParseTransactionID(s string) (TransactionID, error) {
	h, err := parseDisplayHex(s)
	return TransactionID(h), err
}

func (id TransactionID) String() string { return chainhash.Hash(id).String() }

func (id TransactionID) MarshalJSON() ([]byte, error) { return json.Marshal(id.String()) }

func (id *TransactionID) UnmarshalJSON(data []byte) error {
	parsed, err := unmarshalHashJSON(data)
	if err != nil {
		return err
	}
	*id = TransactionID(parsed)
	return nil
}
