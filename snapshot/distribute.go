package snapshot

import (
	"math/bits"

	"github.com/bitfsorg/komodorpc-go/types"
)

// Payout is what one holder receives from a distribution, in satoshis.
type Payout struct {
	Address string
	Amount  uint64
}

// Distribute splits total satoshis across the holders of snap in proportion
// to their balances, for airdrops paid against a snapshot. Holders without a
// positive balance are skipped. The last holder gets the remainder so the
// payouts always sum to total.
func Distribute(total uint64, snap *types.Snapshot) ([]Payout, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	if total == 0 {
		return nil, ErrZeroPayment
	}

	holders := make([]types.SnapshotAddress, 0, len(snap.Addresses))
	var shares uint64
	for _, a := range snap.Addresses {
		if a.Amount <= 0 {
			continue
		}
		var carry uint64
		shares, carry = bits.Add64(shares, uint64(a.Amount), 0)
		if carry != 0 {
			return nil, ErrSharesOverflow
		}
		holders = append(holders, a)
	}
	if len(holders) == 0 {
		return nil, ErrNoHolders
	}

	payouts := make([]Payout, len(holders))
	var distributed uint64
	for i, h := range holders {
		payouts[i].Address = h.Addr
		if i == len(holders)-1 {
			payouts[i].Amount = total - distributed
			break
		}
		// total*share/shares never exceeds total, so the quotient fits.
		hi, lo := bits.Mul64(total, uint64(h.Amount))
		amount, _ := bits.Div64(hi, lo, shares)
		payouts[i].Amount = amount
		distributed += amount
	}
	return payouts, nil
}
