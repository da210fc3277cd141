package komodo

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/bitfsorg/komodorpc-go/types"
)

// Compile-time interface check.
var _ Service = (*Client)(nil)

// heightParams sends an optional height argument. The daemon takes heights
// for these calls as strings and uses the tip when none is given.
func heightParams(height string) []any {
	if height == "" {
		return nil
	}
	return []any{height}
}

// GetBestBlockHash returns the hash of the tip of the best chain.
func (c *Client) GetBestBlockHash(ctx context.Context) (types.BlockHash, error) {
	var hash types.BlockHash
	if err := c.send(ctx, "getbestblockhash", &hash); err != nil {
		return types.BlockHash{}, err
	}
	return hash, nil
}

// GetDifficulty returns the proof-of-work difficulty of the tip.
func (c *Client) GetDifficulty(ctx context.Context) (float64, error) {
	var difficulty float64
	if err := c.send(ctx, "getdifficulty", &difficulty); err != nil {
		return 0, err
	}
	return difficulty, nil
}

// GetBlockCount returns the height of the best chain.
func (c *Client) GetBlockCount(ctx context.Context) (uint32, error) {
	var height uint32
	if err := c.send(ctx, "getblockcount", &height); err != nil {
		return 0, err
	}
	return height, nil
}

// GetBlockHash returns the hash of the best-chain block at height.
func (c *Client) GetBlockHash(ctx context.Context, height uint32) (types.BlockHash, error) {
	var hash types.BlockHash
	if err := c.send(ctx, "getblockhash", &hash, height); err != nil {
		return types.BlockHash{}, err
	}
	return hash, nil
}

// GetBlock returns the verbose form of a block.
func (c *Client) GetBlock(ctx context.Context, hash types.BlockHash) (*types.Block, error) {
	var block types.Block
	if err := c.send(ctx, "getblock", &block, hash.String()); err != nil {
		return nil, err
	}
	return &block, nil
}

// GetBlockHeader returns the verbose form of a block header.
func (c *Client) GetBlockHeader(ctx context.Context, hash types.BlockHash) (*types.BlockHeader, error) {
	var header types.BlockHeader
	if err := c.send(ctx, "getblockheader", &header, hash.String(), true); err != nil {
		return nil, err
	}
	return &header, nil
}

// GetBlockchainInfo returns chain, upgrade and value pool state.
func (c *Client) GetBlockchainInfo(ctx context.Context) (*types.BlockchainInfo, error) {
	var info types.BlockchainInfo
	if err := c.send(ctx, "getblockchaininfo", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetChainTips returns every known tip, including forks.
func (c *Client) GetChainTips(ctx context.Context) (types.ChainTips, error) {
	var tips types.ChainTips
	if err := c.send(ctx, "getchaintips", &tips); err != nil {
		return nil, err
	}
	return tips, nil
}

// GetCoinSupply returns the coin supply at height, or at the tip when height
// is empty.
func (c *Client) GetCoinSupply(ctx context.Context, height string) (*types.CoinSupply, error) {
	var supply types.CoinSupply
	if err := c.send(ctx, "coinsupply", &supply, heightParams(height)...); err != nil {
		return nil, err
	}
	return &supply, nil
}

// GetMempoolInfo returns mempool size and memory usage.
func (c *Client) GetMempoolInfo(ctx context.Context) (*types.MempoolInfo, error) {
	var info types.MempoolInfo
	if err := c.send(ctx, "getmempoolinfo", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetRawMempool returns the ids of all mempool transactions.
func (c *Client) GetRawMempool(ctx context.Context) (types.RawMempool, error) {
	var txids types.RawMempool
	if err := c.send(ctx, "getrawmempool", &txids, false); err != nil {
		return nil, err
	}
	return txids, nil
}

// GetRawMempoolVerbose returns every mempool transaction keyed by txid.
func (c *Client) GetRawMempoolVerbose(ctx context.Context) (types.RawMempoolVerbose, error) {
	var pool types.RawMempoolVerbose
	if err := c.send(ctx, "getrawmempool", &pool, true); err != nil {
		return nil, err
	}
	return pool, nil
}

// GetTxOut returns an unspent output, or nil when the output is spent or
// unknown. The daemon answers that case with a null result.
func (c *Client) GetTxOut(ctx context.Context, txid types.TransactionID, vout uint32) (*types.TxOut, error) {
	var out types.TxOut
	err := c.send(ctx, "gettxout", &out, txid.String(), vout)
	if err != nil {
		if isNullReply(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// GetRawTransaction returns the serialized bytes of a transaction. It needs
// -txindex for transactions outside the mempool and the wallet.
func (c *Client) GetRawTransaction(ctx context.Context, txid types.TransactionID) ([]byte, error) {
	var rawHex string
	if err := c.send(ctx, "getrawtransaction", &rawHex, txid.String(), 0); err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		return nil, fmt.Errorf("%w: raw transaction %s: %w", types.ErrInvalidHex, txid, err)
	}
	return raw, nil
}

// GetMinerIDs returns how many of the last 2000 blocks before height each
// notary mined. An empty height uses the tip.
func (c *Client) GetMinerIDs(ctx context.Context, height string) (*types.MinerIDs, error) {
	var ids types.MinerIDs
	if err := c.send(ctx, "getminerids", &ids, heightParams(height)...); err != nil {
		return nil, err
	}
	return &ids, nil
}

// GetNotaries returns the notary set active at height. An empty height uses
// the tip.
func (c *Client) GetNotaries(ctx context.Context, height string) (*types.Notaries, error) {
	var notaries types.Notaries
	if err := c.send(ctx, "notaries", &notaries, heightParams(height)...); err != nil {
		return nil, err
	}
	return &notaries, nil
}
