package snapshot

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/bitfsorg/komodorpc-go/types"
)

var bucketSnapshots = []byte("snapshots")

// Archive keeps snapshot results in a bbolt database, one per ending height.
type Archive struct {
	db *bbolt.DB
}

// Open opens or creates the archive at dbPath. The parent directory is
// created if it does not exist.
func Open(dbPath string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("snapshot: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("snapshot: create bucket: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error { return a.db.Close() }

// heightKey encodes a block height as a 4-byte big-endian key so that
// cursor order is height order.
func heightKey(h uint32) []byte {
	k := make([]byte, 4)
	binary.BigEndian.PutUint32(k, h)
	return k
}

func encodeGob(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeGob(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Put stores snap under its ending height, replacing any snapshot already
// archived there.
func (a *Archive) Put(snap *types.Snapshot) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	data, err := encodeGob(snap)
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return a.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketSnapshots).Put(heightKey(snap.EndingHeight), data); err != nil {
			return fmt.Errorf("snapshot: put height %d: %w", snap.EndingHeight, err)
		}
		return nil
	})
}

// Get returns the snapshot archived at height.
func (a *Archive) Get(height uint32) (*types.Snapshot, error) {
	var snap types.Snapshot
	err := a.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSnapshots).Get(heightKey(height))
		if data == nil {
			return fmt.Errorf("%w: height %d", ErrNotFound, height)
		}
		if err := decodeGob(data, &snap); err != nil {
			return fmt.Errorf("snapshot: decode height %d: %w", height, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Latest returns the snapshot with the greatest ending height.
func (a *Archive) Latest() (*types.Snapshot, error) {
	var snap types.Snapshot
	err := a.db.View(func(tx *bbolt.Tx) error {
		k, v := tx.Bucket(bucketSnapshots).Cursor().Last()
		if k == nil {
			return ErrNotFound
		}
		if err := decodeGob(v, &snap); err != nil {
			return fmt.Errorf("snapshot: decode latest: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Heights returns the archived ending heights in ascending order.
func (a *Archive) Heights() ([]uint32, error) {
	var heights []uint32
	err := a.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSnapshots).ForEach(func(k, _ []byte) error {
			heights = append(heights, binary.BigEndian.Uint32(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: list heights: %w", err)
	}
	return heights, nil
}

// Delete removes the snapshot archived at height.
func (a *Archive) Delete(height uint32) error {
	return a.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		key := heightKey(height)
		if b.Get(key) == nil {
			return fmt.Errorf("%w: height %d", ErrNotFound, height)
		}
		return b.Delete(key)
	})
}
