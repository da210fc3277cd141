package types

// AddressList is the parameter object of the address index calls.
type AddressList struct {
	Addresses []string `json:"addresses"`
}

// NewAddressList builds an AddressList from addresses.
func NewAddressList(addresses ...string) AddressList {
	if addresses == nil {
		addresses = []string{}
	}
	return AddressList{Addresses: addresses}
}

// AddressBalance is the getaddressbalance result, in satoshis.
type AddressBalance struct {
	Balance  int64 `json:"balance"`
	Received int64 `json:"received"`
}

// AddressDelta is one balance change from getaddressdeltas.
type AddressDelta struct {
	Satoshis   int64         `json:"satoshis"`
	TxID       TransactionID `json:"txid"`
	Index      uint32        `json:"index"`
	BlockIndex uint32        `json:"blockindex"`
	Height     uint32        `json:"height"`
	Address    string        `json:"address"`
}

// AddressDeltas is the getaddressdeltas result.
type AddressDeltas []AddressDelta

// AddressMempoolEntry is one unconfirmed balance change from
// getaddressmempool. PrevTxID and PrevOut are set for spends.
type AddressMempoolEntry struct {
	Address   string         `json:"address"`
	TxID      TransactionID  `json:"txid"`
	Index     uint32         `json:"index"`
	Satoshis  int64          `json:"satoshis"`
	Timestamp int64          `json:"timestamp"`
	PrevTxID  *TransactionID `json:"prevtxid,omitempty"`
	PrevOut   *uint32        `json:"prevout,omitempty"`
}

// AddressMempool is the getaddressmempool result.
type AddressMempool []AddressMempoolEntry

// AddressTxIDs is the getaddresstxids result.
type AddressTxIDs []TransactionID

// AddressUtxo is one unspent output from getaddressutxos.
type AddressUtxo struct {
	Address     string        `json:"address"`
	TxID        TransactionID `json:"txid"`
	OutputIndex uint32        `json:"outputIndex"`
	Script      string        `json:"script"`
	Satoshis    int64         `json:"satoshis"`
	Height      uint32        `json:"height"`
}

// PubKeyHash returns the 20-byte hash locked by a pay-to-pubkey-hash output.
func (u AddressUtxo) PubKeyHash() ([]byte, error) {
	return pubKeyHash(u.Script)
}

// AddressUtxos is the getaddressutxos result.
type AddressUtxos []AddressUtxo

// Total sums the satoshis of all outputs.
func (u AddressUtxos) Total() int64 {
	var total int64
	for _, utxo := range u {
		total += utxo.Satoshis
	}
	return total
}
