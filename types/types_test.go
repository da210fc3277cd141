package types

import (
	"encoding/hex"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genesisHash = "027e3758c3a65b12aa1046462b486d0a63bfa1beae327897f56c5cfb7daaae71"

func TestParseBlockHashRoundTrip(t *testing.T) {
	h, err := ParseBlockHash(genesisHash)
	require.NoError(t, err)
	assert.Equal(t, genesisHash, h.String())

	// Internal byte order is reversed.
	assert.Equal(t, byte(0x71), h[0])
	assert.Equal(t, byte(0x02), h[31])
}

func TestParseHashErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short", "abcd"},
		{"non hex", "zz7e3758c3a65b12aa1046462b486d0a63bfa1beae327897f56c5cfb7daaae71"},
		{"too long", genesisHash + "00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTransactionID(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidHex)
		})
	}
}

func TestHashJSON(t *testing.T) {
	var block struct {
		Hash BlockHash       `json:"hash"`
		Tx   []TransactionID `json:"tx"`
		Prev *BlockHash      `json:"previousblockhash"`
	}
	raw := `{"hash":"` + genesisHash + `","tx":["` + genesisHash + `"]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &block))
	assert.Equal(t, genesisHash, block.Hash.String())
	require.Len(t, block.Tx, 1)
	assert.Nil(t, block.Prev)

	out, err := json.Marshal(block.Hash)
	require.NoError(t, err)
	assert.Equal(t, `"`+genesisHash+`"`, string(out))

	err = json.Unmarshal([]byte(`{"hash":"nothex"}`), &block)
	require.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  Amount
	}{
		{"0", 0},
		{"1", 100_000_000},
		{"0.00000001", 1},
		{"12.345", 1_234_500_000},
		{"7.61510954", 761_510_954},
		{".5", 50_000_000},
		{"-2.5", -250_000_000},
		{"1e-05", 1000},
		{" 3.00000000 ", 300_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmountErrors(t *testing.T) {
	inputs := []string{
		"abc", "1.2.3", "1.123456789", "1.-5", "99999999999999999999",
		"", ".", "-", "-.",
		"1e12", "1e15", "-1e15", "92233720368.54775808", "1e400",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseAmount(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}

	_, err := ParseAmount("12x.5")
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr), "integer parse failures carry *strconv.NumError")
}

func TestAmountJSON(t *testing.T) {
	var snap Snapshot
	raw := `{"start_time":1531000000,"addresses":[{"addr":"RGreatHolder","amount":"1500.12345678"},{"addr":"RSmallHolder","amount":0.5}],"total":1500.62345678,"average":750,"utxos":3,"total_addresses":2,"start_height":100,"ending_height":100,"end_time":1531000002}`
	require.NoError(t, json.Unmarshal([]byte(raw), &snap))

	require.Len(t, snap.Addresses, 2)
	assert.Equal(t, Amount(150_012_345_678), snap.Addresses[0].Amount)
	assert.Equal(t, Amount(50_000_000), snap.Addresses[1].Amount)
	assert.Equal(t, Amount(150_062_345_678), snap.Total)
	assert.Equal(t, uint32(100), snap.EndingHeight)

	assert.Equal(t, "1500.12345678", snap.Addresses[0].Amount.String())
	assert.Equal(t, "-0.00000001", Amount(-1).String())
	assert.Equal(t, "-92233720368.54775808", Amount(math.MinInt64).String())
	assert.Equal(t, "92233720368.54775807", Amount(math.MaxInt64).String())
	assert.InDelta(t, 0.5, snap.Addresses[1].Amount.Coins(), 1e-12)

	out, err := json.Marshal(SnapshotAddress{Addr: "R1", Amount: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"addr":"R1","amount":0.00000001}`, string(out))
}

func TestAmountUnmarshalRejectsEmpty(t *testing.T) {
	var addr SnapshotAddress
	err := json.Unmarshal([]byte(`{"addr":"RA","amount":""}`), &addr)
	require.Error(t, err)

	var a Amount
	require.Error(t, a.UnmarshalJSON([]byte(`""`)))
	require.Error(t, a.UnmarshalJSON([]byte(`1e15`)))
	assert.Equal(t, Amount(0), a)

	require.NoError(t, a.UnmarshalJSON([]byte(`"92233720368.54775807"`)))
	assert.Equal(t, Amount(math.MaxInt64), a)
}

func TestChainTipStatus(t *testing.T) {
	var tips ChainTips
	raw := `[{"height":100,"hash":"` + genesisHash + `","branchlen":0,"status":"active"},{"height":90,"hash":"` + genesisHash + `","branchlen":2,"status":"valid-fork"}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &tips))
	require.Len(t, tips, 2)
	assert.Equal(t, ChainTipActive, tips[0].Status)
	assert.Equal(t, ChainTipValidFork, tips[1].Status)

	err := json.Unmarshal([]byte(`[{"height":1,"hash":"`+genesisHash+`","branchlen":0,"status":"orphaned"}]`), &tips)
	require.Error(t, err)
}

func TestInfoDecode(t *testing.T) {
	raw := `{"version":1001550,"protocolversion":170009,"KMDversion":"0.5.0","notarized":1930,"prevMoMheight":1930,"notarizedhash":"00","notarizedtxid":"11","notarizedtxid_height":"mempool","notarized_confirms":0,"walletversion":60000,"balance":12.5,"interest":0,"blocks":1944,"longestchain":1944,"timeoffset":-1,"tiptime":1600000000,"connections":8,"proxy":"","difficulty":1.2345,"testnet":false,"keypoololdest":1590000000,"keypoolsize":101,"paytxfee":0,"relayfee":0.000001,"errors":"","name":"RICK"}`
	var info Info
	require.NoError(t, json.Unmarshal([]byte(raw), &info))
	assert.Equal(t, "0.5.0", info.KMDVersion)
	assert.Equal(t, "mempool", info.NotarizedTxIDHeight)
	assert.Equal(t, int64(-1), info.TimeOffset)
	assert.Equal(t, "RICK", info.Name)
	assert.InDelta(t, 12.5, info.Balance, 1e-9)
}

func TestAddressUtxoPubKeyHash(t *testing.T) {
	pkh := "1f3a8b6c9d0e2f4a5b6c7d8e9f0a1b2c3d4e5f60"
	utxos := AddressUtxos{
		{Address: "RA", Script: "76a914" + pkh + "88ac", Satoshis: 1000},
		{Address: "RA", Script: "76a914" + pkh + "88ac", Satoshis: 2500},
	}
	got, err := utxos[0].PubKeyHash()
	require.NoError(t, err)
	assert.Equal(t, pkh, hex.EncodeToString(got))
	assert.Equal(t, int64(3500), utxos.Total())

	_, err = AddressUtxo{Script: "zz"}.PubKeyHash()
	assert.ErrorIs(t, err, ErrInvalidHex)

	// OP_RETURN is not P2PKH.
	_, err = ScriptPubKey{Hex: "6a0401020304"}.PubKeyHash()
	require.Error(t, err)
}

func TestNewAddressList(t *testing.T) {
	out, err := json.Marshal(NewAddressList())
	require.NoError(t, err)
	assert.JSONEq(t, `{"addresses":[]}`, string(out))

	out, err = json.Marshal(NewAddressList("RA", "RB"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"addresses":["RA","RB"]}`, string(out))
}

func TestTransactionConfirmed(t *testing.T) {
	raw := `{"amount":-1.5,"fee":-0.0001,"rawconfirmations":3,"confirmations":3,"blockhash":"` + genesisHash + `","blockindex":1,"blocktime":1600000000,"expiryheight":0,"txid":"` + genesisHash + `","walletconflicts":[],"time":1600000000,"timereceived":1600000000,"vjoinsplit":[],"details":[{"account":"","address":"RX","category":"send","amount":-1.5,"vout":0,"fee":-0.0001,"size":225}],"hex":"0400008085202f89"}`
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(raw), &tx))
	assert.True(t, tx.Confirmed())
	require.Len(t, tx.Details, 1)
	assert.Equal(t, "send", tx.Details[0].Category)

	var pending Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"confirmations":0,"txid":"`+genesisHash+`"}`), &pending))
	assert.False(t, pending.Confirmed())
}
