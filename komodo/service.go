package komodo

import (
	"context"

	"github.com/bitfsorg/komodorpc-go/types"
)

// Service is the set of daemon calls applications build on. *Client
// implements it; MockService stands in for it in tests.
type Service interface {
	// GetInfo returns general node, wallet and notarization state.
	GetInfo(ctx context.Context) (*types.Info, error)

	// GetBestBlockHash returns the hash of the tip of the best chain.
	GetBestBlockHash(ctx context.Context) (types.BlockHash, error)

	// GetNewAddress returns a fresh address from the node's wallet.
	GetNewAddress(ctx context.Context) (string, error)

	// GetDifficulty returns the proof-of-work difficulty of the tip.
	GetDifficulty(ctx context.Context) (float64, error)

	// GetTransaction returns a wallet transaction.
	GetTransaction(ctx context.Context, txid types.TransactionID) (*types.Transaction, error)

	// DumpPrivKey returns the WIF private key of a wallet address.
	DumpPrivKey(ctx context.Context, address string) (string, error)

	GetAddressBalance(ctx context.Context, addresses types.AddressList) (*types.AddressBalance, error)
	GetAddressDeltas(ctx context.Context, addresses types.AddressList) (types.AddressDeltas, error)
	GetAddressMempool(ctx context.Context, addresses types.AddressList) (types.AddressMempool, error)
	GetAddressTxIDs(ctx context.Context, addresses types.AddressList) (types.AddressTxIDs, error)
	GetAddressUtxos(ctx context.Context, addresses types.AddressList) (types.AddressUtxos, error)

	// GetSnapshot returns every address balance, largest first.
	GetSnapshot(ctx context.Context) (*types.Snapshot, error)

	// GetSnapshotMax returns the top n address balances.
	GetSnapshotMax(ctx context.Context, n uint32) (*types.Snapshot, error)
}
