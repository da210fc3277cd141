package komodo

import (
	"context"

	"github.com/bitfsorg/komodorpc-go/types"
)

// GetInfo returns general node, wallet and notarization state.
func (c *Client) GetInfo(ctx context.Context) (*types.Info, error) {
	var info types.Info
	if err := c.send(ctx, "getinfo", &info); err != nil {
		return nil, err
	}
	return &info, nil
}
