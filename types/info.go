package types

// Info is the getinfo result.
type Info struct {
	Version             uint32  `json:"version"`
	ProtocolVersion     uint32  `json:"protocolversion"`
	KMDVersion          string  `json:"KMDversion"`
	Notarized           uint32  `json:"notarized"`
	PrevMoMHeight       uint32  `json:"prevMoMheight"`
	NotarizedHash       string  `json:"notarizedhash"`
	NotarizedTxID       string  `json:"notarizedtxid"`
	NotarizedTxIDHeight string  `json:"notarizedtxid_height"`
	NotarizedConfirms   uint32  `json:"notarized_confirms"`
	WalletVersion       uint32  `json:"walletversion"`
	Balance             float64 `json:"balance"`
	Interest            float64 `json:"interest"`
	Blocks              uint32  `json:"blocks"`
	LongestChain        uint32  `json:"longestchain"`
	TimeOffset          int64   `json:"timeoffset"`
	TipTime             uint32  `json:"tiptime"`
	Connections         uint32  `json:"connections"`
	Proxy               string  `json:"proxy"`
	Difficulty          float64 `json:"difficulty"`
	Testnet             bool    `json:"testnet"`
	KeypoolOldest       uint32  `json:"keypoololdest"`
	KeypoolSize         uint32  `json:"keypoolsize"`
	PayTxFee            float64 `json:"paytxfee"`
	RelayFee            float64 `json:"relayfee"`
	Errors              string  `json:"errors"`
	Name                string  `json:"name"`
}
