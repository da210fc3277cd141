package komodo

import (
	"context"

	"github.com/bitfsorg/komodorpc-go/types"
)

// The address index calls need the daemon to run with -addressindex.

// GetAddressBalance returns the confirmed balance and total received of the
// addresses, in satoshis.
func (c *Client) GetAddressBalance(ctx context.Context, addresses types.AddressList) (*types.AddressBalance, error) {
	var balance types.AddressBalance
	if err := c.send(ctx, "getaddressbalance", &balance, addresses); err != nil {
		return nil, err
	}
	return &balance, nil
}

// GetAddressDeltas returns every confirmed balance change of the addresses.
func (c *Client) GetAddressDeltas(ctx context.Context, addresses types.AddressList) (types.AddressDeltas, error) {
	var deltas types.AddressDeltas
	if err := c.send(ctx, "getaddressdeltas", &deltas, addresses); err != nil {
		return nil, err
	}
	return deltas, nil
}

// GetAddressMempool returns the unconfirmed balance changes of the addresses.
func (c *Client) GetAddressMempool(ctx context.Context, addresses types.AddressList) (types.AddressMempool, error) {
	var entries types.AddressMempool
	if err := c.send(ctx, "getaddressmempool", &entries, addresses); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetAddressTxIDs returns the ids of all transactions touching the addresses.
func (c *Client) GetAddressTxIDs(ctx context.Context, addresses types.AddressList) (types.AddressTxIDs, error) {
	var txids types.AddressTxIDs
	if err := c.send(ctx, "getaddresstxids", &txids, addresses); err != nil {
		return nil, err
	}
	return txids, nil
}

// GetAddressUtxos returns the unspent outputs of the addresses.
func (c *Client) GetAddressUtxos(ctx context.Context, addresses types.AddressList) (types.AddressUtxos, error) {
	var utxos types.AddressUtxos
	if err := c.send(ctx, "getaddressutxos", &utxos, addresses); err != nil {
		return nil, err
	}
	return utxos, nil
}
