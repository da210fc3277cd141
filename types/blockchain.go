package types

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Block is the verbose getblock result.
type Block struct {
	Hash BlockHash `json:"hash"`
	// Confirmations is 0 when unconfirmed, 1 when confirmed but not yet
	// notarized, and higher once notarized.
	Confirmations     uint32          `json:"confirmations"`
	RawConfirmations  uint32          `json:"rawconfirmations"`
	Size              uint32          `json:"size"`
	Height            uint32          `json:"height"`
	Version           uint32          `json:"version"`
	MerkleRoot        string          `json:"merkleroot"`
	SegID             int32           `json:"segid"`
	Tx                []TransactionID `json:"tx"`
	Time              uint64          `json:"time"`
	Nonce             string          `json:"nonce"`
	Solution          string          `json:"solution"`
	Bits              string          `json:"bits"`
	Difficulty        float64         `json:"difficulty"`
	ChainWork         string          `json:"chainwork"`
	Anchor            string          `json:"anchor"`
	ValuePools        []ValuePool     `json:"valuePools"`
	PreviousBlockHash *BlockHash      `json:"previousblockhash,omitempty"`
	NextBlockHash     *BlockHash      `json:"nextblockhash,omitempty"`
}

// BlockHeader is the verbose getblockheader result. The genesis block has
// no previous hash and the tip has no next hash.
type BlockHeader struct {
	Hash              BlockHash  `json:"hash"`
	Confirmations     uint32     `json:"confirmations"`
	Height            uint32     `json:"height"`
	Version           uint32     `json:"version"`
	MerkleRoot        string     `json:"merkleroot"`
	Time              uint32     `json:"time"`
	Nonce             string     `json:"nonce"`
	Solution          string     `json:"solution"`
	Bits              string     `json:"bits"`
	Difficulty        float64    `json:"difficulty"`
	ChainWork         string     `json:"chainwork"`
	SegID             int32      `json:"segid"`
	PreviousBlockHash *BlockHash `json:"previousblockhash,omitempty"`
	NextBlockHash     *BlockHash `json:"nextblockhash,omitempty"`
}

// BlockchainInfo is the getblockchaininfo result.
type BlockchainInfo struct {
	Chain                string             `json:"chain"`
	Blocks               uint32             `json:"blocks"`
	Headers              uint32             `json:"headers"`
	BestBlockHash        BlockHash          `json:"bestblockhash"`
	Difficulty           float64            `json:"difficulty"`
	VerificationProgress float64            `json:"verificationprogress"`
	ChainWork            string             `json:"chainwork"`
	Pruned               bool               `json:"pruned"`
	Commitments          uint32             `json:"commitments"`
	ValuePools           []ValuePool        `json:"valuePools"`
	Softforks            []Softfork         `json:"softforks"`
	Upgrades             map[string]Upgrade `json:"upgrades,omitempty"`
	Consensus            Consensus          `json:"consensus"`
}

// Consensus holds the consensus branch ids for the tip and the next block.
type Consensus struct {
	ChainTip  string `json:"chaintip"`
	NextBlock string `json:"nextblock"`
}

// Upgrade describes a network upgrade keyed by branch id.
type Upgrade struct {
	Name             string `json:"name"`
	ActivationHeight uint32 `json:"activationheight"`
	Status           string `json:"status"`
	Info             string `json:"info"`
}

// Softfork reports BIP9-style deployment progress.
type Softfork struct {
	ID      string     `json:"id"`
	Version uint32     `json:"version"`
	Enforce RuleWindow `json:"enforce"`
	Reject  RuleWindow `json:"reject"`
}

// RuleWindow is the enforce/reject progress of a softfork.
type RuleWindow struct {
	Status   bool   `json:"status"`
	Found    uint32 `json:"found"`
	Required uint32 `json:"required"`
	Window   uint32 `json:"window"`
}

// ValuePool reports the value held in a shielded or transparent pool.
type ValuePool struct {
	ID            string   `json:"id"`
	Monitored     bool     `json:"monitored"`
	ChainValue    float64  `json:"chainValue"`
	ChainValueZat uint64   `json:"chainValueZat"`
	ValueDelta    *float64 `json:"valueDelta,omitempty"` // getblock only
	ValueDeltaZat *int64   `json:"valueDeltaZat,omitempty"`
}

// ChainTipStatus is the validation state of a chain tip.
type ChainTipStatus string

const (
	ChainTipInvalid      ChainTipStatus = "invalid"
	ChainTipHeadersOnly  ChainTipStatus = "headers-only"
	ChainTipValidHeaders ChainTipStatus = "valid-headers"
	ChainTipValidFork    ChainTipStatus = "valid-fork"
	ChainTipActive       ChainTipStatus = "active"
)

func (s *ChainTipStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch status := ChainTipStatus(raw); status {
	case ChainTipInvalid, ChainTipHeadersOnly, ChainTipValidHeaders, ChainTipValidFork, ChainTipActive:
		*s = status
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownChainTipStatus, raw)
	}
}

// ChainTip is one entry of getchaintips.
type ChainTip struct {
	Height    uint64         `json:"height"`
	Hash      BlockHash      `json:"hash"`
	BranchLen uint32         `json:"branchlen"`
	Status    ChainTipStatus `json:"status"`
}

// ChainTips is the getchaintips result.
type ChainTips []ChainTip

// CoinSupply is the coinsupply result.
type CoinSupply struct {
	Result string  `json:"result"`
	Coin   string  `json:"coin"`
	Height uint32  `json:"height"`
	Supply float64 `json:"supply"`
	ZFunds float64 `json:"zfunds"`
	Total  float64 `json:"total"`
}

// MempoolInfo is the getmempoolinfo result.
type MempoolInfo struct {
	Size  uint32 `json:"size"`
	Bytes uint32 `json:"bytes"`
	Usage uint32 `json:"usage"`
}

// RawMempool is the non-verbose getrawmempool result.
type RawMempool []TransactionID

// RawMempoolVerbose is the verbose getrawmempool result keyed by txid.
type RawMempoolVerbose map[string]RawMempoolTransactionInfo

// RawMempoolTransactionInfo describes one mempool transaction.
type RawMempoolTransactionInfo struct {
	Size             uint32   `json:"size"`
	Fee              float64  `json:"fee"`
	Time             uint32   `json:"time"`
	Height           uint32   `json:"height"`
	StartingPriority float64  `json:"startingpriority"`
	CurrentPriority  float64  `json:"currentpriority"`
	Depends          []string `json:"depends"`
}

// TxOut is the gettxout result for an unspent output.
type TxOut struct {
	BestBlock        BlockHash    `json:"bestblock"`
	Confirmations    uint32       `json:"confirmations"`
	RawConfirmations uint32       `json:"rawconfirmations"`
	Value            float64      `json:"value"`
	ScriptPubKey     ScriptPubKey `json:"scriptPubKey"`
	Version          uint32       `json:"version"`
	Coinbase         bool         `json:"coinbase"`
}

// MinerIDs is the getminerids result.
type MinerIDs struct {
	Mined       []MinerID `json:"mined"`
	NumNotaries uint8     `json:"numnotaries"`
}

// MinerID counts the blocks mined by one notary or by external miners. For
// external miners Pubkey is "external miners" and the notary fields are nil.
type MinerID struct {
	NotaryID   *uint8  `json:"notaryid,omitempty"`
	KMDAddress *string `json:"KMDaddress,omitempty"`
	Pubkey     string  `json:"pubkey"`
	Blocks     uint32  `json:"blocks"`
}

// Notaries is the notaries result.
type Notaries struct {
	Notaries    []Notary `json:"notaries"`
	NumNotaries uint8    `json:"numnotaries"`
	Height      uint32   `json:"height"`
	Timestamp   uint64   `json:"timestamp"`
}

// Notary is one member of the notary set.
type Notary struct {
	Pubkey     string `json:"pubkey"`
	BTCAddress string `json:"BTCaddress"`
	KMDAddress string `json:"KMDaddress"`
}
