package types

import (
	"encoding/hex"
	"fmt"

	"github.com/bsv-blockchain/go-sdk/script"
)

// ScriptPubKey is a decoded output script as reported by the daemon.
type ScriptPubKey struct {
	Asm       string   `json:"asm"`
	Hex       string   `json:"hex"`
	ReqSigs   uint32   `json:"reqSigs"`
	Type      string   `json:"type"`
	Addresses []string `json:"addresses"`
}

// LockingScript decodes Hex into a script.
func (s ScriptPubKey) LockingScript() (*script.Script, error) {
	return decodeScript(s.Hex)
}

// PubKeyHash returns the 20-byte hash of a pay-to-pubkey-hash script.
func (s ScriptPubKey) PubKeyHash() ([]byte, error) {
	return pubKeyHash(s.Hex)
}

func decodeScript(scriptHex string) (*script.Script, error) {
	raw, err := hex.DecodeString(scriptHex)
	if err != nil {
		return nil, fmt.Errorf("%w: script: %w", ErrInvalidHex, err)
	}
	return script.NewFromBytes(raw), nil
}

func pubKeyHash(scriptHex string) ([]byte, error) {
	s, err := decodeScript(scriptHex)
	if err != nil {
		return nil, err
	}
	if !s.IsP2PKH() {
		return nil, fmt.Errorf("types: script is not pay-to-pubkey-hash")
	}
	return s.PublicKeyHash()
}
