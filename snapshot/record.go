package snapshot

import (
	"context"
	"fmt"

	"github.com/bitfsorg/komodorpc-go/types"
)

// Source is the part of the daemon client a snapshot is taken from.
// *komodo.Client implements it.
type Source interface {
	GetSnapshot(ctx context.Context) (*types.Snapshot, error)
	GetSnapshotMax(ctx context.Context, n uint32) (*types.Snapshot, error)
}

// Record takes a snapshot of the top holders from src and archives it. A
// top of zero takes every holder. Daemon errors are returned unchanged and
// nothing is archived.
func Record(ctx context.Context, src Source, archive *Archive, top uint32) (*types.Snapshot, error) {
	var (
		snap *types.Snapshot
		err  error
	)
	if top == 0 {
		snap, err = src.GetSnapshot(ctx)
	} else {
		snap, err = src.GetSnapshotMax(ctx, top)
	}
	if err != nil {
		return nil, err
	}
	if err := archive.Put(snap); err != nil {
		return nil, fmt.Errorf("snapshot: archive height %d: %w", snap.EndingHeight, err)
	}
	return snap, nil
}
