package types

// Snapshot is the getsnapshot result: address balances ordered from the
// largest holder down.
type Snapshot struct {
	StartTime      int64             `json:"start_time"`
	Addresses      []SnapshotAddress `json:"addresses"`
	Total          Amount            `json:"total"`
	Average        Amount            `json:"average"`
	Utxos          uint64            `json:"utxos"`
	TotalAddresses uint64            `json:"total_addresses"`
	StartHeight    uint32            `json:"start_height"`
	EndingHeight   uint32            `json:"ending_height"`
	EndTime        int64             `json:"end_time"`
}

// SnapshotAddress is one holder in a snapshot.
type SnapshotAddress struct {
	Addr   string `json:"addr"`
	Amount Amount `json:"amount"`
}
