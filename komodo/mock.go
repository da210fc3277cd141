package komodo

import (
	"context"

	"github.com/bitfsorg/komodorpc-go/types"
)

// Compile-time interface check.
var _ Service = (*MockService)(nil)

// MockService is a test double for Service.
// All function fields must be set before the corresponding method is called.
type MockService struct {
	GetInfoFn           func(ctx context.Context) (*types.Info, error)
	GetBestBlockHashFn  func(ctx context.Context) (types.BlockHash, error)
	GetNewAddressFn     func(ctx context.Context) (string, error)
	GetDifficultyFn     func(ctx context.Context) (float64, error)
	GetTransactionFn    func(ctx context.Context, txid types.TransactionID) (*types.Transaction, error)
	DumpPrivKeyFn       func(ctx context.Context, address string) (string, error)
	GetAddressBalanceFn func(ctx context.Context, addresses types.AddressList) (*types.AddressBalance, error)
	GetAddressDeltasFn  func(ctx context.Context, addresses types.AddressList) (types.AddressDeltas, error)
	GetAddressMempoolFn func(ctx context.Context, addresses types.AddressList) (types.AddressMempool, error)
	GetAddressTxIDsFn   func(ctx context.Context, addresses types.AddressList) (types.AddressTxIDs, error)
	GetAddressUtxosFn   func(ctx context.Context, addresses types.AddressList) (types.AddressUtxos, error)
	GetSnapshotFn       func(ctx context.Context) (*types.Snapshot, error)
	GetSnapshotMaxFn    func(ctx context.Context, n uint32) (*types.Snapshot, error)
}

func (m *MockService) GetInfo(ctx context.Context) (*types.Info, error) {
	return m.GetInfoFn(ctx)
}
func (m *MockService) GetBestBlockHash(ctx context.Context) (types.BlockHash, error) {
	return m.GetBestBlockHashFn(ctx)
}
func (m *MockService) GetNewAddress(ctx context.Context) (string, error) {
	return m.GetNewAddressFn(ctx)
}
func (m *MockService) GetDifficulty(ctx context.Context) (float64, error) {
	return m.GetDifficultyFn(ctx)
}
func (m *MockService) GetTransaction(ctx context.Context, txid types.TransactionID) (*types.Transaction, error) {
	return m.GetTransactionFn(ctx, txid)
}
func (m *MockService) DumpPrivKey(ctx context.Context, address string) (string, error) {
	return m.DumpPrivKeyFn(ctx, address)
}
func (m *MockService) GetAddressBalance(ctx context.Context, addresses types.AddressList) (*types.AddressBalance, error) {
	return m.GetAddressBalanceFn(ctx, addresses)
}
func (m *MockService) GetAddressDeltas(ctx context.Context, addresses types.AddressList) (types.AddressDeltas, error) {
	return m.GetAddressDeltasFn(ctx, addresses)
}
func (m *MockService) GetAddressMempool(ctx context.Context, addresses types.AddressList) (types.AddressMempool, error) {
	return m.GetAddressMempoolFn(ctx, addresses)
}
func (m *MockService) GetAddressTxIDs(ctx context.Context, addresses types.AddressList) (types.AddressTxIDs, error) {
	return m.GetAddressTxIDsFn(ctx, addresses)
}
func (m *MockService) GetAddressUtxos(ctx context.Context, addresses types.AddressList) (types.AddressUtxos, error) {
	return m.GetAddressUtxosFn(ctx, addresses)
}
func (m *MockService) GetSnapshot(ctx context.Context) (*types.Snapshot, error) {
	return m.GetSnapshotFn(ctx)
}
func (m *MockService) GetSnapshotMax(ctx context.Context, n uint32) (*types.Snapshot, error) {
	return m.GetSnapshotMaxFn(ctx, n)
}
