package keeper

import (
	"math/bits"

	"rpschain/x/rps/types"
)

// Checked pool and fee arithmetic. Every operation that could wrap aborts the
// whole transition with ErrNumericOverflow; no partial state or fund movement
// survives a failed settlement.

func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, types.ErrNumericOverflow
	}
	return sum, nil
}

func checkedMul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, types.ErrNumericOverflow
	}
	return lo, nil
}

func checkedSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, types.ErrNumericOverflow
	}
	return diff, nil
}

// settlementPlan is the fully computed fund movement for one settle call.
// Amounts are derived before any coin moves.
type settlementPlan struct {
	pool uint64
	fee  uint64
	// per-slot split of each escrow ref: toOwnerOrWinner goes to the payout
	// target of that ref, toTreasury covers the ref's share of the fee.
	firstToTarget    uint64
	firstToTreasury  uint64
	secondToTarget   uint64
	secondToTreasury uint64
}

// planSettlement computes pool, fee and the per-escrow split for an outcome.
// The fee is charged on the full pool, half against each escrow; on an odd fee
// the first escrow carries the extra unit so the treasury receives exactly fee.
func planSettlement(stake uint64, s types.Settings, outcome string) (settlementPlan, error) {
	pool, err := checkedAdd(stake, stake)
	if err != nil {
		return settlementPlan{}, err
	}

	var fee uint64
	if outcome != types.OutcomeDraw || s.FeeOnDraw {
		raw, err := checkedMul(pool, s.FeeRate)
		if err != nil {
			return settlementPlan{}, err
		}
		fee = raw / types.FeeDenominator
	}

	feeFirst := fee/2 + fee%2
	feeSecond := fee / 2

	firstToTarget, err := checkedSub(stake, feeFirst)
	if err != nil {
		return settlementPlan{}, err
	}
	secondToTarget, err := checkedSub(stake, feeSecond)
	if err != nil {
		return settlementPlan{}, err
	}

	return settlementPlan{
		pool:             pool,
		fee:              fee,
		firstToTarget:    firstToTarget,
		firstToTreasury:  feeFirst,
		secondToTarget:   secondToTarget,
		secondToTreasury: feeSecond,
	}, nil
}

// amountWon is the winner's credited total, or zero on a draw.
func (p settlementPlan) amountWon(outcome string) uint64 {
	if outcome == types.OutcomeDraw {
		return 0
	}
	return p.firstToTarget + p.secondToTarget
}
