package types

import "github.com/goccy/go-json"

// Transaction is the gettransaction result for a wallet transaction.
type Transaction struct {
	Amount           float64             `json:"amount"`
	Fee              *float64            `json:"fee,omitempty"`
	RawConfirmations int32               `json:"rawconfirmations"`
	Confirmations    int32               `json:"confirmations"`
	Generated        bool                `json:"generated,omitempty"`
	BlockHash        *BlockHash          `json:"blockhash,omitempty"`
	BlockIndex       *uint32             `json:"blockindex,omitempty"`
	BlockTime        *uint64             `json:"blocktime,omitempty"`
	ExpiryHeight     uint32              `json:"expiryheight"`
	TxID             TransactionID       `json:"txid"`
	WalletConflicts  []TransactionID     `json:"walletconflicts"`
	Time             uint64              `json:"time"`
	TimeReceived     uint64              `json:"timereceived"`
	VJoinSplit       []json.RawMessage   `json:"vjoinsplit"`
	Details          []TransactionDetail `json:"details"`
	Hex              string              `json:"hex"`
}

// Confirmed reports whether the transaction is in a block.
func (t *Transaction) Confirmed() bool {
	return t.BlockHash != nil && t.Confirmations > 0
}

// TransactionDetail is one wallet-relevant movement within a transaction.
type TransactionDetail struct {
	Account  string   `json:"account"`
	Address  string   `json:"address"`
	Category string   `json:"category"`
	Amount   float64  `json:"amount"`
	Vout     uint32   `json:"vout"`
	Fee      *float64 `json:"fee,omitempty"`
	Size     uint32   `json:"size"`
}
