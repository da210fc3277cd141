package komodo

import (
	"context"

	"github.com/bitfsorg/komodorpc-go/types"
)

// GetNewAddress returns a fresh transparent address from the node's wallet.
func (c *Client) GetNewAddress(ctx context.Context) (string, error) {
	var addr string
	if err := c.send(ctx, "getnewaddress", &addr); err != nil {
		return "", err
	}
	return addr, nil
}

// GetTransaction returns a wallet transaction.
func (c *Client) GetTransaction(ctx context.Context, txid types.TransactionID) (*types.Transaction, error) {
	var tx types.Transaction
	if err := c.send(ctx, "gettransaction", &tx, txid.String()); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DumpPrivKey returns the WIF private key of a wallet address as the daemon
// reports it.
func (c *Client) DumpPrivKey(ctx context.Context, address string) (string, error) {
	var wif string
	if err := c.send(ctx, "dumpprivkey", &wif, address); err != nil {
		return "", err
	}
	return wif, nil
}
