package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"rpschain/x/rps/types"
)

// CancelGame closes a match no second player has joined, refunding the
// creator's stake in full. Only the first player may cancel.
//
// Once a second player has joined, the sole-player roster check fails with
// ErrAccountIsNotAPlayerInTheGame. The label does not reflect the root cause
// ("already joined") but it is the externally observed code and is kept for
// compatibility.
func (k msgServer) CancelGame(ctx context.Context, msg *types.MsgCancelGame) (*types.MsgCancelGameResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidRequest, "empty request")
	}
	if _, err := k.addressCodec.StringToBytes(msg.Player); err != nil {
		return nil, errorsmod.Wrap(err, "invalid player address")
	}

	game, err := k.GetGame(ctx, msg.Creator, msg.GameId)
	if err != nil {
		return nil, err
	}
	if game.IsTerminal() {
		return nil, types.ErrInvalidGameState
	}
	if game.Second != nil {
		return nil, types.ErrAccountIsNotAPlayerInTheGame
	}
	if msg.Player != game.First.Address {
		return nil, types.ErrInvalidPlayer
	}

	if err := k.ReleaseTo(ctx, game.First.Escrow, game.First.Address); err != nil {
		return nil, err
	}

	game.First.Escrow = nil
	game.State = types.GameStateCancelled
	game.SettledAt = blockNow(ctx)
	if err := k.SetGame(ctx, game); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventGameCancelled,
			sdk.NewAttribute(types.AttrCreator, msg.Creator),
			sdk.NewAttribute(types.AttrGameID, msg.GameId),
			sdk.NewAttribute(types.AttrState, game.State),
		),
	)

	return &types.MsgCancelGameResponse{}, nil
}
