package komodo

import (
	"context"
	"strconv"

	"github.com/bitfsorg/komodorpc-go/types"
)

// GetSnapshot returns the balance of every address holding coins, largest
// first. It needs -addressindex.
func (c *Client) GetSnapshot(ctx context.Context) (*types.Snapshot, error) {
	var snap types.Snapshot
	if err := c.send(ctx, "getsnapshot", &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetSnapshotMax is GetSnapshot limited to the top n holders. The daemon
// expects n as a decimal string.
func (c *Client) GetSnapshotMax(ctx context.Context, n uint32) (*types.Snapshot, error) {
	var snap types.Snapshot
	if err := c.send(ctx, "getsnapshot", &snap, strconv.FormatUint(uint64(n), 10)); err != nil {
		return nil, err
	}
	return &snap, nil
}
