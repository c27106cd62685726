package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rpschain/x/rps/types"
)

// SettleGame computes the outcome of a match and pays out the pool. It is
// permissionless: anyone may settle once at least one reveal exists and the
// timeout rules allow it. All amounts are computed before any coin moves so a
// failed check aborts the transition with nothing spent.
func (k msgServer) SettleGame(ctx context.Context, msg *types.MsgSettleGame) (*types.MsgSettleGameResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Signer); err != nil {
		return nil, errorsmod.Wrap(err, "invalid signer address")
	}

	game, err := k.GetGame(ctx, msg.Creator, msg.GameId)
	if err != nil {
		return nil, err
	}
	if game.State != types.GameStateAwaitingReveals {
		return nil, types.ErrInvalidGameState
	}

	settings, err := k.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	now := blockNow(ctx)
	outcome, err := game.DecideOutcome(now, settings.ForfeitTimeout)
	if err != nil {
		return nil, err
	}

	plan, err := planSettlement(game.StakeAmount, settings, outcome)
	if err != nil {
		return nil, err
	}

	// Payout target per escrow: on a draw each side reclaims its own stake
	// share, otherwise both shares go to the winner.
	firstTarget := game.First.Address
	secondTarget := game.Second.Address
	switch outcome {
	case types.OutcomeFirstPlayerWon:
		secondTarget = game.First.Address
	case types.OutcomeSecondPlayerWon:
		firstTarget = game.Second.Address
	}

	if err := k.SplitRelease(ctx, game.First.Escrow, firstTarget, plan.firstToTarget, settings.Treasury, plan.firstToTreasury); err != nil {
		return nil, err
	}
	if err := k.SplitRelease(ctx, game.Second.Escrow, secondTarget, plan.secondToTarget, settings.Treasury, plan.secondToTreasury); err != nil {
		return nil, err
	}

	amountWon := plan.amountWon(outcome)
	game.First.Escrow = nil
	game.Second.Escrow = nil
	game.State = types.GameStateSettled
	game.Outcome = outcome
	game.AmountWon = amountWon
	game.SettledAt = now
	if err := k.SetGame(ctx, game); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventGameSettled,
			sdk.NewAttribute(types.AttrCreator, msg.Creator),
			sdk.NewAttribute(types.AttrGameID, msg.GameId),
			sdk.NewAttribute(types.AttrOutcome, outcome),
			sdk.NewAttribute(types.AttrPool, strconv.FormatUint(plan.pool, 10)),
			sdk.NewAttribute(types.AttrFee, strconv.FormatUint(plan.fee, 10)),
			sdk.NewAttribute(types.AttrAmountWon, strconv.FormatUint(amountWon, 10)),
		),
	)

	return &types.MsgSettleGameResponse{Outcome: outcome, AmountWon: amountWon}, nil
}
